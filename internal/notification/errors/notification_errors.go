package notificationerrors

import (
	"net/http"

	"github.com/Vectus-Drive/backend/internal/shared/apperror"
)

var (
	ErrNotificationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Notification does not exist",
		http.StatusNotFound,
	)
	ErrRecipientNotFound = apperror.New(
		apperror.CodeNotFound,
		"Notification recipient does not exist",
		http.StatusNotFound,
	)
	ErrNotificationAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Notification with the same id already exists",
		http.StatusConflict,
	)
)
