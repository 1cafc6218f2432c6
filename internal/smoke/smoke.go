// Package smoke exercises a running deployment end to end: the gateway
// health check, signup and login on the users service, then portfolio,
// goals and prediction calls routed through the gateway.
package smoke

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Step is the outcome of one smoke call. Exactly one of Result and Error is set.
type Step struct {
	Name   string          `json:"name"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// Report is the ordered list of steps run.
type Report struct {
	Steps []Step `json:"steps"`
}

// Failed reports whether any step failed.
func (r Report) Failed() bool {
	for _, s := range r.Steps {
		if s.Error != "" {
			return true
		}
	}
	return false
}

// Options configures a smoke run.
type Options struct {
	GatewayURL string
	UsersURL   string
	Email      string
	Password   string
}

// Runner performs smoke runs.
type Runner struct {
	client *http.Client
	opts   Options
}

// NewRunner creates a Runner.
func NewRunner(client *http.Client, opts Options) *Runner {
	if opts.Email == "" {
		opts.Email = "demo@example.com"
	}
	if opts.Password == "" {
		opts.Password = "pass"
	}
	return &Runner{client: client, opts: opts}
}

type identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Run executes every step and returns the report. A failed step never stops
// later steps; the user-scoped steps are skipped only when no user id could
// be obtained.
func (r *Runner) Run(ctx context.Context) Report {
	var rep Report
	gateway := strings.TrimRight(r.opts.GatewayURL, "/")
	users := strings.TrimRight(r.opts.UsersURL, "/")

	rep.add("gateway_health", r.do(ctx, http.MethodGet, gateway+"/", nil))

	credentials := map[string]string{"email": r.opts.Email, "password": r.opts.Password}
	var userID string

	signup := r.do(ctx, http.MethodPost, users+"/signup", map[string]interface{}{
		"name":         "Demo",
		"age":          25,
		"dob":          "2000-01-01",
		"email":        r.opts.Email,
		"password":     r.opts.Password,
		"risk_profile": "moderate",
	})
	rep.add("signup", summarize(signup, &userID))
	rep.add("users_login", summarize(r.do(ctx, http.MethodPost, users+"/login", credentials), &userID))
	rep.add("gateway_login", summarize(r.do(ctx, http.MethodPost, gateway+"/api/users/login", credentials), &userID))

	if userID == "" {
		return rep
	}
	rep.add("portfolio", r.do(ctx, http.MethodGet, gateway+"/api/portfolio/"+userID, nil))
	rep.add("goals", r.do(ctx, http.MethodGet, gateway+"/api/goals/"+userID, nil))
	rep.add("ai_predict", r.do(ctx, http.MethodPost, gateway+"/api/ai/predict", map[string]string{"user_id": userID}))
	return rep
}

type outcome struct {
	body json.RawMessage
	err  error
}

func (rep *Report) add(name string, o outcome) {
	step := Step{Name: name}
	if o.err != nil {
		step.Error = o.err.Error()
	} else {
		step.Result = o.body
	}
	rep.Steps = append(rep.Steps, step)
}

// summarize reduces a user response to its id and email, recording the id
// when none is known yet.
func summarize(o outcome, userID *string) outcome {
	if o.err != nil {
		return o
	}
	var id identity
	if err := json.Unmarshal(o.body, &id); err != nil {
		return outcome{err: fmt.Errorf("decoding user: %w", err)}
	}
	if *userID == "" {
		*userID = id.ID
	}
	b, err := json.Marshal(id)
	if err != nil {
		return outcome{err: err}
	}
	return outcome{body: b}
}

func (r *Runner) do(ctx context.Context, method, url string, payload interface{}) outcome {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return outcome{err: err}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return outcome{err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return outcome{err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return outcome{err: err}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return outcome{err: fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))}
	}
	if !json.Valid(b) {
		return outcome{err: fmt.Errorf("invalid JSON response: %q", b)}
	}
	return outcome{body: b}
}
