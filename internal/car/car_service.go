package car

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	CarOptionsKey = "cars:options"

	optionsCacheTTL = 30 * time.Minute
)

//go:generate mockgen -source=car_service.go -destination=mock/car_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateCarRequest) (CarResponse, error)
	GetAll(ctx context.Context) ([]CarResponse, error)
	GetByID(ctx context.Context, id string) (CarResponse, error)
	GetOptions(ctx context.Context) ([]CarOption, error)
	Update(ctx context.Context, id string, req UpdateCarRequest) (CarResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("car.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("car.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateCarRequest) (CarResponse, error) {
	c := &Car{
		CarID:              uuid.New().String(),
		LicenseNo:          req.LicenseNo,
		Make:               req.Make,
		Model:              req.Model,
		Image:              req.Image,
		Seats:              req.Seats,
		Fuel:               defaultString(req.Fuel, "diesel"),
		Transmission:       defaultString(req.Transmission, "automatic"),
		Features:           req.Features,
		Doors:              req.Doors,
		Description:        req.Description,
		PricePerDay:        req.PricePerDay,
		AvailabilityStatus: true,
		Condition:          req.Condition,
	}
	if req.AvailabilityStatus != nil {
		c.AvailabilityStatus = *req.AvailabilityStatus
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return CarResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptions(ctx)
	return toResponse(c), nil
}

func (s *service) GetAll(ctx context.Context) ([]CarResponse, error) {
	cars, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list cars failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]CarResponse, 0, len(cars))
	for i := range cars {
		resp = append(resp, toResponse(&cars[i]))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (CarResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CarResponse{}, mapRepositoryError(err)
	}
	return toResponse(c), nil
}

// GetOptions serves the available fleet from Redis when possible. A cache
// miss is filled through singleflight so concurrent misses issue one query.
func (s *service) GetOptions(ctx context.Context) ([]CarOption, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, CarOptionsKey).Result()
		if err == nil {
			var resp []CarOption
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(CarOptionsKey, func() (interface{}, error) {
		cars, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, err
		}

		resp := make([]CarOption, 0, len(cars))
		for i := range cars {
			resp = append(resp, toOption(&cars[i]))
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, CarOptionsKey, jsonData, optionsCacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return v.([]CarOption), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCarRequest) (CarResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CarResponse{}, mapRepositoryError(err)
	}

	c.LicenseNo = req.LicenseNo
	c.Make = req.Make
	c.Model = req.Model
	c.Image = req.Image
	c.Seats = req.Seats
	c.Fuel = defaultString(req.Fuel, c.Fuel)
	c.Transmission = defaultString(req.Transmission, c.Transmission)
	c.Features = req.Features
	c.Doors = req.Doors
	c.Description = req.Description
	c.PricePerDay = req.PricePerDay
	if req.AvailabilityStatus != nil {
		c.AvailabilityStatus = *req.AvailabilityStatus
	}
	c.Condition = req.Condition

	if err := s.repo.Update(ctx, c); err != nil {
		s.logger.Error("update car failed", zap.String("car_id", id), zap.Error(err))
		return CarResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptions(ctx)
	return toResponse(c), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.invalidateOptions(ctx)
	return nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, CarOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate car options cache",
			zap.String("key", CarOptionsKey),
			zap.Error(err),
		)
	}
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
