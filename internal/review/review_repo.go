package review

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=review_repo.go -destination=mock/review_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, rv *Review) error
	FindAll(ctx context.Context) ([]Review, error)
	FindByID(ctx context.Context, id string) (*Review, error)
	Update(ctx context.Context, rv *Review) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, rv *Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Review, error) {
	var reviews []Review
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Review, error) {
	var rv Review
	err := r.db.WithContext(ctx).First(&rv, "review_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *repository) Update(ctx context.Context, rv *Review) error {
	return r.db.WithContext(ctx).Save(rv).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Review{}, "review_id = ?", id).Error
}
