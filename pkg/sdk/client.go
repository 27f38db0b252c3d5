package conductor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client is the conductor-search API client.
type Client struct {
	baseURL string
	hc      *http.Client
	token   string
	obs     *observer
}

// New creates a Client for the search API at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("conductor: base URL required")
	}

	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      hc,
		token:   cfg.token,
		obs:     obs,
	}, nil
}

// get performs a GET request and decodes the response body into out.
// Error envelopes and non-2xx statuses become an *APIError.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("conductor: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("conductor: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope struct {
			ErrMsg string `json:"errMsg"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		msg := envelope.ErrMsg
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("conductor: decode %s response: %w", path, err)
	}
	return nil
}

// resultsEnvelope mirrors the API success envelope.
type resultsEnvelope[T any] struct {
	Err        bool   `json:"err"`
	ErrMsg     string `json:"errMsg"`
	NumResults int    `json:"numResults"`
	Results    []T    `json:"results"`
}

func getResults[T any](
	ctx context.Context, c *Client, path string, params url.Values,
) (Results[T], error) {
	var envelope resultsEnvelope[T]
	if err := c.get(ctx, path, params, &envelope); err != nil {
		return Results[T]{}, err
	}
	return Results[T]{
		NumResults: envelope.NumResults,
		Items:      envelope.Results,
	}, nil
}

func setNonEmpty(v url.Values, key, val string) {
	if val != "" {
		v.Set(key, val)
	}
}

func setPositive(v url.Values, key string, val int) {
	if val > 0 {
		v.Set(key, strconv.Itoa(val))
	}
}
