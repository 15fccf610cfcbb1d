package car

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=car_repo.go -destination=mock/car_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, c *Car) error
	FindAll(ctx context.Context) ([]Car, error)
	FindByID(ctx context.Context, id string) (*Car, error)
	FindOptions(ctx context.Context) ([]Car, error)
	Update(ctx context.Context, c *Car) error
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

func (r *repository) Create(ctx context.Context, c *Car) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Car, error) {
	var cars []Car
	err := r.db.WithContext(ctx).Find(&cars).Error
	return cars, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Car, error) {
	var c Car
	err := r.db.WithContext(ctx).First(&c, "car_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindOptions loads only the columns the options cache serves.
func (r *repository) FindOptions(ctx context.Context) ([]Car, error) {
	var cars []Car
	err := r.db.WithContext(ctx).
		Select("car_id", "license_no", "make", "model", "price_per_day").
		Where("availability_status = ?", true).
		Order("make, model").
		Find(&cars).Error
	return cars, err
}

func (r *repository) Update(ctx context.Context, c *Car) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Car{}, "car_id = ?", id).Error
}
