package carerrors

import (
	"net/http"

	"github.com/Vectus-Drive/backend/internal/shared/apperror"
)

var (
	ErrCarNotFound = apperror.New(
		apperror.CodeNotFound,
		"Car does not exist",
		http.StatusNotFound,
	)
	ErrCarAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Car with the same license number already exists",
		http.StatusConflict,
	)
)
