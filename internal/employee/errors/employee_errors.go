package employeeerrors

import (
	"net/http"

	"github.com/Vectus-Drive/backend/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee does not exist",
		http.StatusNotFound,
	)
	// Duplicate registration maps to 403, matching the auth surface.
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email or NIC already exists",
		http.StatusForbidden,
	)
)
