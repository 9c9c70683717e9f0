//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	everify "github.com/everify/everify-go"
)

var (
	apiKey      string
	baseURL     string
	phoneNumber string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	apiKey = os.Getenv("EVERIFY_API_KEY")
	baseURL = os.Getenv("EVERIFY_BASE_URL")
	phoneNumber = os.Getenv("EVERIFY_TEST_PHONE_NUMBER")

	if apiKey == "" {
		os.Stderr.WriteString("Skipping integration tests: EVERIFY_API_KEY not set\n")
		os.Exit(0)
	}

	if phoneNumber == "" {
		phoneNumber = "+14155552671"
	}

	os.Stderr.WriteString("Running integration tests...\n")
	if baseURL != "" {
		os.Stderr.WriteString("API URL: " + baseURL + "\n")
	}

	os.Exit(m.Run())
}

func newClient(t *testing.T, opts ...everify.Option) *everify.Client {
	t.Helper()

	// Integration tests never send real messages.
	opts = append([]everify.Option{everify.WithSandbox(true)}, opts...)
	if baseURL != "" {
		opts = append(opts, everify.WithBaseURL(baseURL))
	}

	client, err := everify.New(apiKey, opts...)
	require.NoError(t, err)
	return client
}

func TestIntegration_StartAndCheckVerification(t *testing.T) {
	client := newClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	verification, err := client.StartVerification(ctx, phoneNumber, everify.WithLocale("en"))
	require.NoError(t, err)

	t.Logf("Started verification: %s", verification.ID)

	assert.NotEmpty(t, verification.ID)
	assert.Equal(t, everify.StatusPending, verification.Status)
	assert.True(t, verification.ExpiresAt.After(verification.CreatedAt))

	// A wrong code leaves the verification pending.
	result, err := client.CheckVerification(ctx, phoneNumber, "000000")
	require.NoError(t, err)
	assert.Equal(t, everify.StatusPending, result.Status)
}

func TestIntegration_InvalidBody(t *testing.T) {
	client := newClient(t)

	_, err := client.StartVerification(context.Background(), "")
	require.Error(t, err)

	var everifyErr *everify.Error
	require.True(t, errors.As(err, &everifyErr))
	assert.Equal(t, everify.KindInvalidBody, everifyErr.Kind)
	assert.NotEmpty(t, everifyErr.Message)
}

func TestIntegration_InvalidAPIKey(t *testing.T) {
	opts := []everify.Option{everify.WithSandbox(true)}
	if baseURL != "" {
		opts = append(opts, everify.WithBaseURL(baseURL))
	}
	client, err := everify.New("invalid-api-key", opts...)
	require.NoError(t, err)

	_, err = client.StartVerification(context.Background(), phoneNumber)
	assert.ErrorIs(t, err, everify.ErrNoProjectFound)
}

func TestIntegration_NoActiveVerification(t *testing.T) {
	client := newClient(t)

	// A valid number that is never used for StartVerification.
	_, err := client.CheckVerification(context.Background(), "+442079460958", "000000")
	assert.ErrorIs(t, err, everify.ErrNoCurrentlyActiveVerification)
}
