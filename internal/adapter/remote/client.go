// Package remote is the client side of the campaign API.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"jobboard-ads/internal/config/configs"
	"jobboard-ads/internal/core/domain"
	"jobboard-ads/internal/core/port"
)

var _ port.CampaignRemote = (*Client)(nil)

// Client calls the campaign API with a bearer credential. Network failures
// and non-2xx answers other than 404 come back as
// *domain.RemoteUnavailableError so callers can keep their local copy.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a client from configuration.
func New(cfg configs.Remote) *Client {
	return NewWithHTTPClient(cfg.BaseURL, cfg.Token, &http.Client{Timeout: cfg.Timeout})
}

// NewWithHTTPClient creates a client that sends requests through hc.
func NewWithHTTPClient(baseURL, token string, hc *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    hc,
	}
}

// Create sends POST /campaigns with the launched campaign.
func (c *Client) Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	var out domain.Campaign
	err := c.do(ctx, "create", http.MethodPost, "/campaigns", port.NewCreateCampaignReq(campaign), &out)
	return out, err
}

// UpdateStatus sends PUT /campaigns/{id}/status.
func (c *Client) UpdateStatus(ctx context.Context, id string, req port.UpdateStatusReq) (domain.Campaign, error) {
	var out domain.Campaign
	err := c.do(ctx, "update_status", http.MethodPut, "/campaigns/"+url.PathEscape(id)+"/status", req, &out)
	return out, err
}

// FetchOne sends GET /campaigns/{id}.
func (c *Client) FetchOne(ctx context.Context, id string) (domain.Campaign, error) {
	var out domain.Campaign
	err := c.do(ctx, "fetch_one", http.MethodGet, "/campaigns/"+url.PathEscape(id), nil, &out)
	return out, err
}

// FetchMine sends GET /campaigns/mine.
func (c *Client) FetchMine(ctx context.Context) ([]domain.Campaign, error) {
	var out []domain.Campaign
	if err := c.do(ctx, "fetch_mine", http.MethodGet, "/campaigns/mine", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	if c.token == "" {
		return domain.ErrUnauthenticated
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.RemoteUnavailableError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(op, resp)
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.RemoteUnavailableError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func statusError(op string, resp *http.Response) error {
	var body errorBody
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body)
	msg := body.Error
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	var cause error
	switch resp.StatusCode {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusUnauthorized:
		cause = fmt.Errorf("%w: %s", domain.ErrUnauthenticated, msg)
	case http.StatusForbidden:
		cause = fmt.Errorf("%w: %s", domain.ErrForbidden, msg)
	default:
		cause = errors.New(msg)
	}
	return &domain.RemoteUnavailableError{Op: op, Err: fmt.Errorf("status %d: %w", resp.StatusCode, cause)}
}
