package apperrors

import (
	"net/http"
)

// Predefined errors for the classifieds domain. Services return these
// directly; factories below exist for the cases that carry a cause.

// --- Auth & users ---

// ErrEmailAlreadyExists - the registration email is already taken. Responds
// 400 rather than 409 to keep the published endpoint contract.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already registered",
	http.StatusBadRequest,
)

// ErrInvalidCredentials - unknown email or wrong password. The two cases are
// deliberately indistinguishable to the caller.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

// ErrUserNotVerified - the account exists but its email was never confirmed.
var ErrUserNotVerified = New(
	CodeNotVerified,
	"auth",
	"Email not verified",
	http.StatusUnauthorized,
)

// ErrUserNotFound - a referenced user id does not resolve.
var ErrUserNotFound = New(
	CodeNotFound,
	"users",
	"User not found",
	http.StatusNotFound,
)

// --- Reference data ---

// ErrInvalidLocation - location outside the fixed Limpopo set.
var ErrInvalidLocation = New(
	CodeValidationFailed,
	"validation",
	"Invalid location",
	http.StatusBadRequest,
)

// ErrInvalidCategory - category outside the fixed ad category set.
var ErrInvalidCategory = New(
	CodeValidationFailed,
	"validation",
	"Invalid category",
	http.StatusBadRequest,
)

// --- Ads ---

// ErrAdNotFound - no active ad with the requested id.
var ErrAdNotFound = New(
	CodeNotFound,
	"ads",
	"Ad not found",
	http.StatusNotFound,
)

// --- Uploads ---

// ErrFileTooLarge - the image exceeds the configured size limit.
var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

// ErrInvalidFileType - the image MIME type is not allowed.
var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

// --- Factories ---

// ErrConflict wraps a storage-level conflict, e.g. a duplicate-key error
// from a concurrent insert racing past the existence check.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusBadRequest)
}

// ErrStorage wraps a blob storage failure.
func ErrStorage(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "storage", "Storage operation failed", http.StatusInternalServerError)
}
