package customer

import (
	"context"

	"go.uber.org/zap"

	"github.com/Vectus-Drive/backend/internal/shared/contextutil"
)

//go:generate mockgen -source=customer_service.go -destination=mock/customer_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]CustomerResponse, error)
	GetByID(ctx context.Context, id string) (CustomerResponse, error)
	Update(ctx context.Context, id string, req UpdateCustomerRequest) (CustomerResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("customer.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("customer.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]CustomerResponse, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list customers failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, mapRepositoryError(err)
	}

	resp := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		resp = append(resp, toResponse(&customers[i]))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CustomerResponse{}, mapRepositoryError(err)
	}
	return toResponse(c), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCustomerRequest) (CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CustomerResponse{}, mapRepositoryError(err)
	}

	c.Name = req.Name
	c.NIC = req.NIC
	c.Email = req.Email
	c.Image = req.Image
	c.Address = req.Address
	c.TelephoneNo = req.TelephoneNo

	if err := s.repo.Update(ctx, c); err != nil {
		s.logger.Error("update customer failed",
			zap.String("customer_id", id),
			zap.Error(err),
		)
		return CustomerResponse{}, mapRepositoryError(err)
	}

	return toResponse(c), nil
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
