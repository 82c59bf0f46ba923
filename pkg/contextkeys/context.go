package contextkeys

// Custom key type to avoid collisions with other context users.
type contextKey string

// RequestIDContextKey stores the per-request id set by the middleware.
const RequestIDContextKey = contextKey("request_id")
