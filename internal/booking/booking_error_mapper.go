package booking

import (
	"errors"

	"gorm.io/gorm"

	bookingerrors "github.com/Vectus-Drive/backend/internal/booking/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return bookingerrors.ErrBookingNotFound
	}

	return err
}
