package tokenerrors

import (
	"net/http"

	"github.com/Vectus-Drive/backend/internal/shared/apperror"
)

var (
	// ErrTokenNotFound means no ledger entry exists for a (jti, user) pair.
	// Callers must treat this as an authentication failure, never as
	// "not revoked": an unknown jti is a forged or stale token.
	ErrTokenNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Token is not recognized",
		http.StatusUnauthorized,
	)

	ErrDuplicateJTI = apperror.New(
		apperror.CodeConflict,
		"Token has already been recorded",
		http.StatusConflict,
	)
)
