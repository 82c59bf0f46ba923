package handlers

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	ReferenceHandler *ReferenceHandler
	AuthHandler      *AuthHandler
	AdHandler        *AdHandler
	MessageHandler   *MessageHandler
}
