package app

import "classifieds_backend/internal/email"

// MockEmailProvider is wired when SMTP is disabled. Registration does not
// depend on delivery, so dropping the mail is safe.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Email) error                    { return nil }
func (m *MockEmailProvider) SendVerification(to string, token string) error { return nil }
func (m *MockEmailProvider) Validate() error                                { return nil }
