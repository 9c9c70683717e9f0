package api

import (
	"context"
	"net/http"
)

// Endpoint paths, relative to the base URL.
const (
	PathStartVerification = "verifications/start"
	PathCheckVerification = "verifications/check"
)

// StartVerification starts a verification attempt for a phone number.
func (c *Client) StartVerification(ctx context.Context, req *StartVerificationRequest) (*StartVerificationResponse, error) {
	var result StartVerificationResponse
	if err := c.Do(ctx, http.MethodPost, PathStartVerification, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CheckVerification checks a code against the active verification.
func (c *Client) CheckVerification(ctx context.Context, req *CheckVerificationRequest) (*CheckVerificationResponse, error) {
	var result CheckVerificationResponse
	if err := c.Do(ctx, http.MethodPost, PathCheckVerification, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
