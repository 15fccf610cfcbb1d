package autherrors

import (
	"net/http"

	"github.com/Vectus-Drive/backend/internal/shared/apperror"
)

var (
	// Unknown username on login. Deliberately 403, distinguishable from a
	// bad password on a known account.
	ErrUnknownUsername = apperror.New(
		apperror.CodeForbidden,
		"Login failed",
		http.StatusForbidden,
	)

	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid username or password",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Token is invalid or expired",
		http.StatusUnauthorized,
	)

	ErrTokenRevoked = apperror.New(
		apperror.CodeUnauthorized,
		"Token has been revoked",
		http.StatusUnauthorized,
	)

	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User does not exist",
		http.StatusNotFound,
	)

	// Duplicate username/email/nic on registration. The API contract maps
	// this to 403, not 409.
	ErrAccountAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"An account with this username, email or NIC already exists",
		http.StatusForbidden,
	)

	// Raised by the registration pre-check so the caller learns which field
	// collided. The unique index still backstops the race.
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"An account with this email already exists",
		http.StatusForbidden,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Role must be one of customer, employee or admin",
		http.StatusBadRequest,
	)
)
