package booking

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=booking_repo.go -destination=mock/booking_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, b *Booking) error
	FindAll(ctx context.Context) ([]Booking, error)
	FindByID(ctx context.Context, id string) (*Booking, error)
	Update(ctx context.Context, b *Booking) error
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

func (r *repository) Create(ctx context.Context, b *Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).Order("booked_at DESC").Find(&bookings).Error
	return bookings, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Booking, error) {
	var b Booking
	err := r.db.WithContext(ctx).First(&b, "booking_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) Update(ctx context.Context, b *Booking) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Booking{}, "booking_id = ?", id).Error
}
