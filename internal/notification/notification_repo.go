package notification

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_repo.go -destination=mock/notification_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, n *Notification) error
	FindAll(ctx context.Context) ([]Notification, error)
	FindAllByUser(ctx context.Context, uid string) ([]Notification, error)
	FindByID(ctx context.Context, id string) (*Notification, error)
	Update(ctx context.Context, n *Notification) error
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

func (r *repository) Create(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Notification, error) {
	var notifications []Notification
	err := r.db.WithContext(ctx).Find(&notifications).Error
	return notifications, err
}

func (r *repository) FindAllByUser(ctx context.Context, uid string) ([]Notification, error) {
	var notifications []Notification
	err := r.db.WithContext(ctx).Where("u_id = ?", uid).Find(&notifications).Error
	return notifications, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Notification, error) {
	var n Notification
	err := r.db.WithContext(ctx).First(&n, "notification_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *repository) Update(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Notification{}, "notification_id = ?", id).Error
}
