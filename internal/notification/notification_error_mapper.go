package notification

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	notificationerrors "github.com/Vectus-Drive/backend/internal/notification/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notificationerrors.ErrNotificationNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return notificationerrors.ErrNotificationAlreadyExists
		case "23503":
			return notificationerrors.ErrRecipientNotFound
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		return notificationerrors.ErrNotificationAlreadyExists
	}
	if strings.Contains(errMsg, "violates foreign key constraint") {
		return notificationerrors.ErrRecipientNotFound
	}

	return err
}
