package employee

import (
	"context"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		resp = append(resp, toResponse(&employees[i]))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return toResponse(e), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	e.Name = req.Name
	e.NIC = req.NIC
	e.Email = req.Email
	e.Image = req.Image
	e.Address = req.Address
	e.TelephoneNo = req.TelephoneNo

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("update employee failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return toResponse(e), nil
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
