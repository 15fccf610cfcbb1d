package token

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	tokenerrors "github.com/Vectus-Drive/backend/internal/token/errors"
)

//go:generate mockgen -source=token_repo.go -destination=mock/token_repo_mock.go -package=mock

// Repository is the persisted ledger of issued refresh tokens. Entry life
// cycle is Issued -> Revoked, terminal; nothing is ever deleted here except
// through cascading user deletion.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Record(ctx context.Context, jti, userID string, expiresAt time.Time) error
	Revoke(ctx context.Context, jti, userID string) error
	IsRevoked(ctx context.Context, jti, userID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Record(ctx context.Context, jti, userID string, expiresAt time.Time) error {
	rec := Record{
		JTI:       jti,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return mapLedgerError(err)
	}
	return nil
}

// Revoke stamps revoked_at once. Revoking an already-revoked entry is a
// no-op success; an entry that does not exist at all is an error.
func (r *repository) Revoke(ctx context.Context, jti, userID string) error {
	now := time.Now().UTC()

	res := r.db.WithContext(ctx).
		Model(&Record{}).
		Where("jti = ? AND user_id = ?", jti, userID).
		Where("revoked_at IS NULL").
		Update("revoked_at", now)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// Nothing updated: either already revoked (fine) or unknown (fatal).
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&Record{}).
		Where("jti = ? AND user_id = ?", jti, userID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return tokenerrors.ErrTokenNotFound
	}
	return nil
}

func (r *repository) IsRevoked(ctx context.Context, jti, userID string) (bool, error) {
	var rec Record
	err := r.db.WithContext(ctx).
		Where("jti = ? AND user_id = ?", jti, userID).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, tokenerrors.ErrTokenNotFound
	}
	if err != nil {
		return false, err
	}
	return rec.RevokedAt != nil, nil
}

func mapLedgerError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_token_jti" {
			return tokenerrors.ErrDuplicateJTI
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_token_jti") {
		return tokenerrors.ErrDuplicateJTI
	}

	return err
}
