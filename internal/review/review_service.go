package review

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Vectus-Drive/backend/internal/customer"
	customererrors "github.com/Vectus-Drive/backend/internal/customer/errors"
)

//go:generate mockgen -source=review_service.go -destination=mock/review_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateReviewRequest) (ReviewResponse, error)
	GetAll(ctx context.Context) ([]ReviewResponse, error)
	GetByID(ctx context.Context, id string) (ReviewResponse, error)
	Update(ctx context.Context, id string, req UpdateReviewRequest) (ReviewResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	customers customer.Repository
	logger    *zap.Logger
}

func NewService(repo Repository, customers customer.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("review.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("review.service")
	}
	return &service{repo: repo, customers: customers, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateReviewRequest) (ReviewResponse, error) {
	if _, err := s.customers.FindByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReviewResponse{}, customererrors.ErrCustomerNotFound
		}
		return ReviewResponse{}, mapRepositoryError(err)
	}

	rv := &Review{
		ReviewID:    uuid.New().String(),
		CustomerID:  req.CustomerID,
		Stars:       req.Stars,
		Topic:       req.Topic,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, rv); err != nil {
		s.logger.Error("create review failed",
			zap.String("customer_id", req.CustomerID),
			zap.Error(err),
		)
		return ReviewResponse{}, mapRepositoryError(err)
	}

	return toResponse(rv), nil
}

func (s *service) GetAll(ctx context.Context) ([]ReviewResponse, error) {
	reviews, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list reviews failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		resp = append(resp, toResponse(&reviews[i]))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ReviewResponse, error) {
	rv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ReviewResponse{}, mapRepositoryError(err)
	}
	return toResponse(rv), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateReviewRequest) (ReviewResponse, error) {
	rv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ReviewResponse{}, mapRepositoryError(err)
	}

	rv.Stars = req.Stars
	rv.Topic = req.Topic
	rv.Description = req.Description

	if err := s.repo.Update(ctx, rv); err != nil {
		s.logger.Error("update review failed", zap.String("review_id", id), zap.Error(err))
		return ReviewResponse{}, mapRepositoryError(err)
	}

	return toResponse(rv), nil
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
