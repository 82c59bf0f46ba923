package dto

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Age      *int   `json:"age,omitempty" validate:"omitempty,min=18"`
	Location string `json:"location" validate:"required,location"`
}

type RegisterResponse struct {
	Message  string `json:"message"`
	UserID   string `json:"user_id"`
	Verified bool   `json:"verified"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns a bare identity payload. No session or token is
// issued.
type LoginResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}
