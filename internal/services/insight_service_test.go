package services

import (
	"context"
	"errors"
	"testing"

	"finpredictor/internal/ai"
	"finpredictor/internal/models"
	"finpredictor/internal/testutil"
)

// mockProvider implements ai.Provider with a function field.
type mockProvider struct {
	name string
	fn   func(req models.PredictionRequest) ([]models.Insight, error)
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) Insights(_ context.Context, req models.PredictionRequest) ([]models.Insight, error) {
	return m.fn(req)
}

var _ ai.Provider = (*mockProvider)(nil)

func TestPredict_MergesInProviderOrder(t *testing.T) {
	svc := NewInsightService(
		ai.NewLlamaClient("https://mock-llama.local", "meta-llama-4", "demo"),
		ai.NewCerebrasClient("https://mock-cerebras.local", "demo"),
	)

	resp, err := svc.Predict(context.Background(), models.PredictionRequest{UserID: "u1"})
	testutil.AssertNoError(t, err)

	want := []string{"Market Outlook", "SIP Adjustment", "Risk Alignment", "Optimization"}
	if len(resp.Recommendations) != len(want) {
		t.Fatalf("expected %d recommendations, got %d", len(want), len(resp.Recommendations))
	}
	for i, title := range want {
		if resp.Recommendations[i].Title != title {
			t.Errorf("recommendation %d: expected %q, got %q", i, title, resp.Recommendations[i].Title)
		}
	}
	if resp.Note == "" {
		t.Error("expected a note")
	}
}

func TestPredict_SkipsFailingProvider(t *testing.T) {
	svc := NewInsightService(
		&mockProvider{name: "broken", fn: func(models.PredictionRequest) ([]models.Insight, error) {
			return nil, errors.New("upstream down")
		}},
		&mockProvider{name: "ok", fn: func(req models.PredictionRequest) ([]models.Insight, error) {
			return []models.Insight{{Title: "Hello", Detail: req.UserID}}, nil
		}},
	)

	resp, err := svc.Predict(context.Background(), models.PredictionRequest{UserID: "u9"})
	testutil.AssertNoError(t, err)
	if len(resp.Recommendations) != 1 || resp.Recommendations[0].Detail != "u9" {
		t.Errorf("unexpected recommendations: %+v", resp.Recommendations)
	}
}

func TestPredict_NoProviders(t *testing.T) {
	resp, err := NewInsightService().Predict(context.Background(), models.PredictionRequest{UserID: "u1"})
	testutil.AssertNoError(t, err)
	if resp.Recommendations == nil || len(resp.Recommendations) != 0 {
		t.Errorf("expected empty recommendations, got %v", resp.Recommendations)
	}
}
