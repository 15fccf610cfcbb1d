package otperrors

import (
	"net/http"

	"github.com/Vectus-Drive/backend/internal/shared/apperror"
)

var (
	ErrDeliveryFailed = apperror.New(
		apperror.CodeDeliveryFailed,
		"Could not deliver the verification code",
		http.StatusInternalServerError,
	)

	ErrCodeNotFound = apperror.New(
		apperror.CodeNotFound,
		"No verification code is pending for this address",
		http.StatusNotFound,
	)

	ErrTooManyAttempts = apperror.New(
		apperror.CodeForbidden,
		"Too many failed attempts, request a new code",
		http.StatusForbidden,
	)

	ErrResendThrottled = apperror.New(
		apperror.CodeForbidden,
		"A code was sent recently, wait before requesting another",
		http.StatusForbidden,
	)
)
