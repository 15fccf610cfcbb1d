package transactionerrors

import (
	"net/http"

	"github.com/Vectus-Drive/backend/internal/shared/apperror"
)

var (
	ErrTransactionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Transaction does not exist",
		http.StatusNotFound,
	)
)
