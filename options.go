package everify

import "net/http"

// Method is a code delivery method.
type Method string

const (
	// MethodSMS delivers the code by text message.
	MethodSMS Method = "SMS"
)

func (m Method) supported() bool {
	return m == MethodSMS
}

const defaultBaseURL = "https://everify.dev/api"

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL        string
	httpClient     *http.Client
	sandbox        bool
	logger         Logger
	normalizePhone bool
}

// startConfig holds per-call configuration for StartVerification.
type startConfig struct {
	method  Method
	locale  string
	sandbox *bool
}

// Option configures the client.
type Option func(*clientConfig)

// StartOption configures a StartVerification call.
type StartOption func(*startConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. The client is copied and its
// timeout replaced with the fixed request timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithSandbox sets the initial sandbox default. It can be changed later
// with Client.SetSandbox.
func WithSandbox(on bool) Option {
	return func(c *clientConfig) {
		c.sandbox = on
	}
}

// WithLogger sets the logger used by the client.
// Default: NoopLogger
func WithLogger(logger Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithPhoneNormalization makes the client parse phone numbers and send
// them in E.164 format. Numbers that fail to parse are rejected with
// ErrInvalidPhoneNumber before any request is made.
func WithPhoneNormalization() Option {
	return func(c *clientConfig) {
		c.normalizePhone = true
	}
}

// WithMethod sets the code delivery method. StartVerification rejects
// methods other than MethodSMS with ErrUnsupportedMethod.
// Default: MethodSMS
func WithMethod(method Method) StartOption {
	return func(c *startConfig) {
		c.method = method
	}
}

// WithLocale sets the locale of the message sent to the phone.
func WithLocale(locale string) StartOption {
	return func(c *startConfig) {
		c.locale = locale
	}
}

// WithSandboxOverride sets the sandbox flag for a single call, ignoring
// the client's stored default.
func WithSandboxOverride(on bool) StartOption {
	return func(c *startConfig) {
		c.sandbox = &on
	}
}
