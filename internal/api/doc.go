// Package api provides HTTP client functionality for communicating with the
// Everify API. It handles authentication, request/response serialization and
// the mapping of failure responses to typed errors.
//
// # Client Creation
//
// [NewClient] takes a [Config] with the base URL, API key and client
// identifier. The API key is sent as a bearer token in the Authorization
// header on every request, and the client identifier in the
// X-Everify-Client header.
//
// # Timeouts and Retries
//
// Every request has a fixed [DefaultTimeout] of 5 seconds. Requests are
// never retried: each call makes exactly one network attempt.
//
// # Error Handling
//
// Failure responses (status >= 400) are mapped as follows:
//
//   - JSON bodies of the form {"name": ..., "message": ...} become an
//     [apierrors.APIError]. Extra keys are kept in its Fields map.
//   - Any other body, or a JSON body without a name, becomes an
//     [apierrors.ResponseError] carrying the status and raw body.
//
// Network failures (timeouts, refused or reset connections) are returned
// as [apierrors.NetworkError].
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
