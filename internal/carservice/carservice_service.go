package carservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Vectus-Drive/backend/internal/car"
	carerrors "github.com/Vectus-Drive/backend/internal/car/errors"
)

//go:generate mockgen -source=carservice_service.go -destination=mock/carservice_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateServiceRequest) (ServiceResponse, error)
	GetAll(ctx context.Context) ([]ServiceResponse, error)
	GetByID(ctx context.Context, id string) (ServiceResponse, error)
	Update(ctx context.Context, id string, req UpdateServiceRequest) (ServiceResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	cars   car.Repository
	logger *zap.Logger
}

func NewService(repo Repository, cars car.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("carservice.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("carservice.service")
	}
	return &service{repo: repo, cars: cars, logger: l}
}

// Create rejects records pointing at cars that do not exist.
func (s *service) Create(ctx context.Context, req CreateServiceRequest) (ServiceResponse, error) {
	if _, err := s.cars.FindByID(ctx, req.CarID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ServiceResponse{}, carerrors.ErrCarNotFound
		}
		return ServiceResponse{}, mapRepositoryError(err)
	}

	record := &ServiceRecord{
		ServiceID:         uuid.New().String(),
		CarID:             req.CarID,
		TransactionAmount: req.TransactionAmount,
		ServiceDate:       time.Now().UTC(),
		Details:           req.Details,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		s.logger.Error("create service record failed",
			zap.String("car_id", req.CarID),
			zap.Error(err),
		)
		return ServiceResponse{}, mapRepositoryError(err)
	}

	return toResponse(record), nil
}

func (s *service) GetAll(ctx context.Context) ([]ServiceResponse, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list service records failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]ServiceResponse, 0, len(records))
	for i := range records {
		resp = append(resp, toResponse(&records[i]))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ServiceResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ServiceResponse{}, mapRepositoryError(err)
	}
	return toResponse(record), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateServiceRequest) (ServiceResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ServiceResponse{}, mapRepositoryError(err)
	}

	record.TransactionAmount = req.TransactionAmount
	record.Details = req.Details

	if err := s.repo.Update(ctx, record); err != nil {
		s.logger.Error("update service record failed", zap.String("service_id", id), zap.Error(err))
		return ServiceResponse{}, mapRepositoryError(err)
	}

	return toResponse(record), nil
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
