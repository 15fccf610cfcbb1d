package customer

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=customer_repo.go -destination=mock/customer_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, c *Customer) error
	FindAll(ctx context.Context) ([]Customer, error)
	FindByID(ctx context.Context, id string) (*Customer, error)
	FindByEmail(ctx context.Context, email string) (*Customer, error)
	Update(ctx context.Context, c *Customer) error
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

func (r *repository) Create(ctx context.Context, c *Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Customer, error) {
	var customers []Customer
	err := r.db.WithContext(ctx).Find(&customers).Error
	return customers, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Customer, error) {
	var c Customer
	err := r.db.WithContext(ctx).First(&c, "customer_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Customer, error) {
	var c Customer
	err := r.db.WithContext(ctx).First(&c, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(ctx context.Context, c *Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Customer{}, "customer_id = ?", id).Error
}
