package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/claude/paceline/internal/models"
	"github.com/google/uuid"
)

// HTTPClient implements DataSource by calling the Paceline REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// plans live on the remote server.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, params url.Values, body any, wantStatus int) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("httpclient: marshal body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != wantStatus {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, respBody)
	}

	return respBody, nil
}

// planEnvelope mirrors the server's create/preview response shape.
type planEnvelope struct {
	Plan     *models.PlanDocument `json:"plan"`
	Warnings []string             `json:"warnings"`
}

func (c *HTTPClient) CreatePlan(ctx context.Context, intake *models.Intake) (*models.PlanDocument, []string, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/v1/plans", nil, intake, http.StatusCreated)
	if err != nil {
		return nil, nil, err
	}

	var env planEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, nil, fmt.Errorf("httpclient: decode plan: %w", err)
	}
	return env.Plan, env.Warnings, nil
}

func (c *HTTPClient) PreviewPlan(ctx context.Context, intake *models.Intake) (*models.PlanDocument, []string, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/v1/preview", nil, intake, http.StatusOK)
	if err != nil {
		return nil, nil, err
	}

	var env planEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, nil, fmt.Errorf("httpclient: decode plan: %w", err)
	}
	return env.Plan, env.Warnings, nil
}

func (c *HTTPClient) GetPlan(ctx context.Context, id uuid.UUID) (*models.PlanDocument, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/v1/plans/"+id.String(), nil, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var doc models.PlanDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("httpclient: decode plan: %w", err)
	}
	return &doc, nil
}

func (c *HTTPClient) ListPlans(ctx context.Context, limit int) ([]models.PlanSummary, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	body, err := c.do(ctx, http.MethodGet, "/api/v1/plans", params, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var summaries []models.PlanSummary
	if err := json.Unmarshal(body, &summaries); err != nil {
		return nil, fmt.Errorf("httpclient: decode plan list: %w", err)
	}
	return summaries, nil
}
