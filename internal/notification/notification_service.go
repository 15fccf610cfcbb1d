package notification

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateNotificationRequest) (NotificationResponse, error)
	GetAll(ctx context.Context, uid string) ([]NotificationResponse, error)
	GetByID(ctx context.Context, id string) (NotificationResponse, error)
	Update(ctx context.Context, id string, req UpdateNotificationRequest) (NotificationResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateNotificationRequest) (NotificationResponse, error) {
	n := &Notification{
		NotificationID: req.NotificationID,
		UID:            req.UID,
		Text:           req.Text,
	}
	if n.NotificationID == "" {
		n.NotificationID = uuid.New().String()
	}

	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error("create notification failed",
			zap.String("u_id", req.UID),
			zap.Error(err),
		)
		return NotificationResponse{}, mapRepositoryError(err)
	}

	return toResponse(n), nil
}

// GetAll filters by recipient when uid is non-empty.
func (s *service) GetAll(ctx context.Context, uid string) ([]NotificationResponse, error) {
	var (
		notifications []Notification
		err           error
	)
	if uid != "" {
		notifications, err = s.repo.FindAllByUser(ctx, uid)
	} else {
		notifications, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		s.logger.Error("list notifications failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]NotificationResponse, 0, len(notifications))
	for i := range notifications {
		resp = append(resp, toResponse(&notifications[i]))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (NotificationResponse, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return NotificationResponse{}, mapRepositoryError(err)
	}
	return toResponse(n), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateNotificationRequest) (NotificationResponse, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return NotificationResponse{}, mapRepositoryError(err)
	}

	n.Text = req.Text

	if err := s.repo.Update(ctx, n); err != nil {
		s.logger.Error("update notification failed", zap.String("notification_id", id), zap.Error(err))
		return NotificationResponse{}, mapRepositoryError(err)
	}

	return toResponse(n), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	return nil
}
