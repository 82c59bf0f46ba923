package email

// Provider is the outbound mail collaborator. The registration flow only
// depends on SendVerification, so the confirmation round trip can be
// completed later without touching the services.
type Provider interface {
	// Send sends a prepared email message.
	Send(email *Email) error

	// SendVerification sends the address-confirmation mail for a token.
	SendVerification(to string, token string) error

	// Validate checks the provider configuration.
	Validate() error
}
