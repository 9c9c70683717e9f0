package everify

// Version is the SDK version reported to the server.
const Version = "1.0.0"

// ClientName identifies this SDK in the X-Everify-Client header.
const ClientName = "everify-go"

// ClientID returns the value sent in the X-Everify-Client header.
func ClientID() string {
	return ClientName + "@" + Version
}
