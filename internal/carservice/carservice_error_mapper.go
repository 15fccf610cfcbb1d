package carservice

import (
	"errors"

	"gorm.io/gorm"

	carserviceerrors "github.com/Vectus-Drive/backend/internal/carservice/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return carserviceerrors.ErrServiceNotFound
	}

	return err
}
