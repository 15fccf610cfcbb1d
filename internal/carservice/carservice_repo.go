package carservice

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=carservice_repo.go -destination=mock/carservice_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, s *ServiceRecord) error
	FindAll(ctx context.Context) ([]ServiceRecord, error)
	FindByID(ctx context.Context, id string) (*ServiceRecord, error)
	Update(ctx context.Context, s *ServiceRecord) error
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

func (r *repository) Create(ctx context.Context, s *ServiceRecord) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindAll(ctx context.Context) ([]ServiceRecord, error) {
	var records []ServiceRecord
	err := r.db.WithContext(ctx).Order("service_date DESC").Find(&records).Error
	return records, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*ServiceRecord, error) {
	var s ServiceRecord
	err := r.db.WithContext(ctx).First(&s, "service_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Update(ctx context.Context, s *ServiceRecord) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&ServiceRecord{}, "service_id = ?", id).Error
}
