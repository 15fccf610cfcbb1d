package transaction

import (
	"errors"

	"gorm.io/gorm"

	transactionerrors "github.com/Vectus-Drive/backend/internal/transaction/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return transactionerrors.ErrTransactionNotFound
	}

	return err
}
