package customer

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	customererrors "github.com/Vectus-Drive/backend/internal/customer/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return customererrors.ErrCustomerNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_customer_nic", "uq_customer_email":
				return customererrors.ErrCustomerAlreadyExists
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") &&
		(strings.Contains(errMsg, "uq_customer_nic") || strings.Contains(errMsg, "uq_customer_email")) {
		return customererrors.ErrCustomerAlreadyExists
	}

	return err
}
