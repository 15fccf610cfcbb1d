package customererrors

import (
	"net/http"

	"github.com/Vectus-Drive/backend/internal/shared/apperror"
)

var (
	ErrCustomerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Customer does not exist",
		http.StatusNotFound,
	)
	// Duplicate registration maps to 403, matching the auth surface.
	ErrCustomerAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Customer with the same email or NIC already exists",
		http.StatusForbidden,
	)
)
