package email

// Email represents an outbound mail message.
type Email struct {
	From    string
	To      []string
	Subject string
	Body    string
	HTML    bool
}

// SMTPConfig holds the SMTP connection settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	// VerifyURL is the base URL embedded in verification links.
	VerifyURL string
}
