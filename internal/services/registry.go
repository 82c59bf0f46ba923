package services

import "classifieds_backend/internal/email"

// ServiceContainer bundles the service layer for injection into handlers.
type ServiceContainer struct {
	AuthService    AuthService
	AdService      AdService
	MessageService MessageService
	EmailProvider  email.Provider
}
