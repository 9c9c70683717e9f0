// Package everify provides a Go client SDK for Everify, a phone number
// verification service.
//
// A verification is started for a phone number, which sends it a one-time
// code by SMS. The code the user types back is then checked against the
// active verification.
//
// Basic usage:
//
//	client, err := everify.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Send a code
//	_, err = client.StartVerification(ctx, "+15551234567", everify.WithLocale("en"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Check the code the user entered
//	result, err := client.CheckVerification(ctx, "+15551234567", code)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Verified:", result.Verified())
//
// # Sandbox Mode
//
// In sandbox mode the service uses a test delivery path instead of sending
// real messages. The client keeps a sandbox default, set with [WithSandbox]
// or [Client.SetSandbox]; a single call can override it with
// [WithSandboxOverride].
//
// # Errors
//
// Every failed API call returns an [*Error]. Errors declared by the API
// carry the server's name as their [ErrorKind] and can be matched with
// errors.Is:
//
//	if errors.Is(err, everify.ErrNoCurrentlyActiveVerification) {
//	    // Start a new verification
//	}
//
// Network failures and failure responses that are not API error payloads
// have kind [KindTransport] and match [ErrTransport].
//
// Arguments rejected locally, before any request is sent, return the plain
// sentinels [ErrMissingAPIKey], [ErrInvalidPhoneNumber] and
// [ErrUnsupportedMethod] instead.
//
// Requests time out after 5 seconds and are never retried.
package everify
