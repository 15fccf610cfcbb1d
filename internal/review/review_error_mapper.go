package review

import (
	"errors"

	"gorm.io/gorm"

	reviewerrors "github.com/Vectus-Drive/backend/internal/review/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return reviewerrors.ErrReviewNotFound
	}

	return err
}
