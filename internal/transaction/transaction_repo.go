package transaction

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=transaction_repo.go -destination=mock/transaction_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, t *Transaction) error
	FindAll(ctx context.Context) ([]Transaction, error)
	FindByID(ctx context.Context, id string) (*Transaction, error)
	Update(ctx context.Context, t *Transaction) error
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

func (r *repository) Create(ctx context.Context, t *Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Transaction, error) {
	var transactions []Transaction
	err := r.db.WithContext(ctx).Order("date DESC").Find(&transactions).Error
	return transactions, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Transaction, error) {
	var t Transaction
	err := r.db.WithContext(ctx).First(&t, "transaction_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Update(ctx context.Context, t *Transaction) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Transaction{}, "transaction_id = ?", id).Error
}
