package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/everify/everify-go/internal/apierrors"
	"github.com/everify/everify-go/internal/log"
)

const (
	// DefaultTimeout is the fixed per-request timeout.
	DefaultTimeout = 5 * time.Second

	// ClientHeader carries the SDK identifier on every request.
	ClientHeader = "X-Everify-Client"

	// maxErrorBodySize bounds how much of a failure response is read.
	maxErrorBodySize = 64 << 10
)

// Config holds the transport configuration.
type Config struct {
	BaseURL string
	APIKey  string
	// ClientID is sent in the X-Everify-Client header, e.g. everify-go@1.0.0.
	ClientID string
	// HTTPClient is copied and its Timeout forced to DefaultTimeout.
	HTTPClient *http.Client
	Logger     log.Logger
}

// Client is the HTTP transport bound to one base URL and API key.
type Client struct {
	baseURL    string
	apiKey     string
	clientID   string
	httpClient *http.Client
	logger     log.Logger
}

// NewClient creates a new transport from cfg.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, apierrors.ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	httpClient := &http.Client{}
	if cfg.HTTPClient != nil {
		c := *cfg.HTTPClient
		httpClient = &c
	}
	httpClient.Timeout = DefaultTimeout

	logger := cfg.Logger
	if logger == nil {
		logger = log.Noop
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		clientID:   cfg.ClientID,
		httpClient: httpClient,
		logger:     logger.WithValues(log.Kv{"svc": "everify.api"}),
	}, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs a JSON request against path (relative to the base URL)
// and decodes a successful response into result. Exactly one request is
// made; failures are never retried.
func (c *Client) Do(ctx context.Context, method, path string, body, result any) error {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return fmt.Errorf("build request URL: %w", err)
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.clientID != "" {
		req.Header.Set(ClientHeader, c.clientID)
	}

	logger := c.logger.WithCtxValues(ctx).WithValues(log.Kv{"method": method, "path": path})

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debugf("request failed after %s: %v", time.Since(start), err)
		return &apierrors.NetworkError{Err: err, URL: endpoint}
	}
	defer resp.Body.Close()

	logger.WithValues(log.Kv{"status": resp.StatusCode}).Debugf("request completed in %s", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseErrorResponse(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return &apierrors.ResponseError{
				StatusCode:  resp.StatusCode,
				ContentType: resp.Header.Get("Content-Type"),
				Err:         fmt.Errorf("decode response: %w", err),
			}
		}
	}

	return nil
}

// parseErrorResponse maps a failure response to an error. Only JSON
// bodies are read as {name, message, ...} payloads; anything else keeps
// the status and raw body for diagnostics.
func parseErrorResponse(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return &apierrors.NetworkError{Err: fmt.Errorf("read error response: %w", err), URL: resp.Request.URL.String()}
	}

	contentType := resp.Header.Get("Content-Type")
	if !isJSON(contentType) {
		return &apierrors.ResponseError{
			StatusCode:  resp.StatusCode,
			ContentType: contentType,
			Body:        string(body),
		}
	}

	apiErr, err := apierrors.FromPayload(resp.StatusCode, body)
	if err != nil {
		return &apierrors.ResponseError{
			StatusCode:  resp.StatusCode,
			ContentType: contentType,
			Body:        string(body),
		}
	}
	return apiErr
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
