// Package client provides an HTTP client for the portfolio service.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// AssetPrice is the part of a portfolio asset that valuation needs.
type AssetPrice struct {
	ID           string  `json:"id"`
	CurrentPrice float64 `json:"current_price"`
}

// PortfolioClient communicates with the portfolio service.
type PortfolioClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewPortfolioClient creates a new portfolio service client. The HTTP
// client's timeout bounds every call. Redirects are not followed.
func NewPortfolioClient(baseURL string, httpClient *http.Client) *PortfolioClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	hc := *httpClient
	hc.CheckRedirect = func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }

	return &PortfolioClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &hc,
	}
}

// GetAssets fetches the assets held by a user.
func (c *PortfolioClient) GetAssets(ctx context.Context, userID string) ([]AssetPrice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+url.PathEscape(userID), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching portfolio: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching portfolio: unexpected status %d", resp.StatusCode)
	}

	var result struct {
		Assets []AssetPrice `json:"assets"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding portfolio response: %w", err)
	}
	return result.Assets, nil
}
