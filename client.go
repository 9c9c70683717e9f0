package everify

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/everify/everify-go/internal/api"
	"github.com/everify/everify-go/internal/log"
)

// Client is the Everify client for starting and checking phone
// verifications. It is safe for concurrent use.
type Client struct {
	apiClient      *api.Client
	sandbox        atomic.Bool
	normalizePhone bool
	logger         Logger
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	return api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		APIKey:     apiKey,
		ClientID:   ClientID(),
		HTTPClient: cfg.httpClient,
		Logger:     cfg.logger,
	})
}

// New creates a new Everify client with the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL: defaultBaseURL,
		logger:  NoopLogger,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = NoopLogger
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	c := &Client{
		apiClient:      apiClient,
		normalizePhone: cfg.normalizePhone,
		logger:         cfg.logger.WithValues(log.Kv{"svc": "everify.Client"}),
	}
	c.sandbox.Store(cfg.sandbox)

	return c, nil
}

// SetSandbox sets the sandbox default used by later StartVerification
// calls that do not pass WithSandboxOverride.
func (c *Client) SetSandbox(on bool) {
	c.sandbox.Store(on)
}

// SandboxEnabled reports the current sandbox default.
func (c *Client) SandboxEnabled() bool {
	return c.sandbox.Load()
}

// StartVerification sends a one-time code to phoneNumber and returns the
// pending verification.
func (c *Client) StartVerification(ctx context.Context, phoneNumber string, opts ...StartOption) (*StartVerificationResult, error) {
	cfg := &startConfig{
		method: MethodSMS,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if !cfg.method.supported() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, cfg.method)
	}

	phoneNumber, err := c.phone(phoneNumber)
	if err != nil {
		return nil, err
	}

	sandbox := c.sandbox.Load()
	if cfg.sandbox != nil {
		sandbox = *cfg.sandbox
	}

	req := &api.StartVerificationRequest{
		PhoneNumber: phoneNumber,
		Method:      string(cfg.method),
		Locale:      cfg.locale,
		Sandbox:     sandbox,
	}

	c.logger.WithValues(log.Kv{"method": req.Method, "sandbox": sandbox}).Debugf("starting verification")

	resp, err := c.apiClient.StartVerification(ctx, req)
	if err != nil {
		return nil, wrapError(err)
	}

	return newStartVerificationResult(resp), nil
}

// CheckVerification checks code against the active verification for
// phoneNumber. An incorrect code is not a failure: the result status
// stays StatusPending.
func (c *Client) CheckVerification(ctx context.Context, phoneNumber, code string) (*CheckVerificationResult, error) {
	phoneNumber, err := c.phone(phoneNumber)
	if err != nil {
		return nil, err
	}

	c.logger.Debugf("checking verification")

	resp, err := c.apiClient.CheckVerification(ctx, &api.CheckVerificationRequest{
		PhoneNumber: phoneNumber,
		Code:        code,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	return &CheckVerificationResult{Status: Status(resp.Status)}, nil
}

func (c *Client) phone(phoneNumber string) (string, error) {
	if !c.normalizePhone {
		return phoneNumber, nil
	}
	normalized, err := NormalizePhone(phoneNumber)
	if err != nil {
		return "", fmt.Errorf("%w: %q", err, phoneNumber)
	}
	return normalized, nil
}
