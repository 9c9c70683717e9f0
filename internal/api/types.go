package api

import "time"

// StartVerificationRequest represents the POST verifications/start request.
type StartVerificationRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Method      string `json:"method"`
	Locale      string `json:"locale,omitempty"`
	Sandbox     bool   `json:"sandbox"`
}

// StartVerificationResponse represents the POST verifications/start response.
type StartVerificationResponse struct {
	ID          string    `json:"id"`
	PhoneNumber string    `json:"phoneNumber"`
	Locale      string    `json:"locale"`
	Sandbox     bool      `json:"sandbox,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Status      string    `json:"status"`
}

// CheckVerificationRequest represents the POST verifications/check request.
type CheckVerificationRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Code        string `json:"code"`
}

// CheckVerificationResponse represents the POST verifications/check response.
type CheckVerificationResponse struct {
	Status string `json:"status"`
}
