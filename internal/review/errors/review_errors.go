package reviewerrors

import (
	"net/http"

	"github.com/Vectus-Drive/backend/internal/shared/apperror"
)

var (
	ErrReviewNotFound = apperror.New(
		apperror.CodeNotFound,
		"Review does not exist",
		http.StatusNotFound,
	)
)
