package carserviceerrors

import (
	"net/http"

	"github.com/Vectus-Drive/backend/internal/shared/apperror"
)

var (
	ErrServiceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Service record does not exist",
		http.StatusNotFound,
	)
)
