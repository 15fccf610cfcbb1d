package bookingerrors

import (
	"net/http"

	"github.com/Vectus-Drive/backend/internal/shared/apperror"
)

var (
	ErrBookingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Booking does not exist",
		http.StatusNotFound,
	)
)
