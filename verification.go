package everify

import (
	"time"

	"github.com/everify/everify-go/internal/api"
)

// Status is the state of a verification attempt.
type Status string

const (
	// StatusPending means the code has not been matched yet.
	StatusPending Status = "PENDING"
	// StatusSuccess means the phone number has been verified.
	StatusSuccess Status = "SUCCESS"
)

// StartVerificationResult is the verification attempt created by
// StartVerification. Its Status is always StatusPending.
type StartVerificationResult struct {
	ID          string
	PhoneNumber string
	Locale      string
	Sandbox     bool
	CreatedAt   time.Time
	ExpiresAt   time.Time
	Status      Status
}

// CheckVerificationResult is the outcome of CheckVerification.
type CheckVerificationResult struct {
	Status Status
}

// Verified reports whether the code was accepted.
func (r *CheckVerificationResult) Verified() bool {
	return r.Status == StatusSuccess
}

func newStartVerificationResult(resp *api.StartVerificationResponse) *StartVerificationResult {
	return &StartVerificationResult{
		ID:          resp.ID,
		PhoneNumber: resp.PhoneNumber,
		Locale:      resp.Locale,
		Sandbox:     resp.Sandbox,
		CreatedAt:   resp.CreatedAt,
		ExpiresAt:   resp.ExpiresAt,
		Status:      Status(resp.Status),
	}
}
