package auth

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	autherrors "github.com/Vectus-Drive/backend/internal/auth/errors"
)

// uniqueness over users.username, customers/employees nic+email all collapse
// to the same registration conflict.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return autherrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return autherrors.ErrAccountAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		return autherrors.ErrAccountAlreadyExists
	}

	return err
}
