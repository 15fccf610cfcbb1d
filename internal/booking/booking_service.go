package booking

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Vectus-Drive/backend/internal/car"
	carerrors "github.com/Vectus-Drive/backend/internal/car/errors"
	"github.com/Vectus-Drive/backend/internal/customer"
	customererrors "github.com/Vectus-Drive/backend/internal/customer/errors"
	"github.com/Vectus-Drive/backend/internal/events"
	"github.com/Vectus-Drive/backend/internal/messaging/kafka"
	"github.com/Vectus-Drive/backend/internal/shared/contextutil"
)

//go:generate mockgen -source=booking_service.go -destination=mock/booking_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateBookingRequest) (BookingResponse, error)
	GetAll(ctx context.Context) ([]BookingResponse, error)
	GetByID(ctx context.Context, id string) (BookingResponse, error)
	Update(ctx context.Context, id string, req UpdateBookingRequest) (BookingResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db        *gorm.DB
	repo      Repository
	customers customer.Repository
	cars      car.Repository
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	customers customer.Repository,
	cars car.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("booking.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("booking.service")
	}
	return &service{db: db, repo: repo, customers: customers, cars: cars, outbox: outbox, logger: l}
}

// Create verifies both referenced aggregates before inserting. The booking
// row and its lifecycle event commit in one transaction.
func (s *service) Create(ctx context.Context, req CreateBookingRequest) (BookingResponse, error) {
	if _, err := s.customers.FindByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BookingResponse{}, customererrors.ErrCustomerNotFound
		}
		return BookingResponse{}, mapRepositoryError(err)
	}
	if _, err := s.cars.FindByID(ctx, req.CarID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BookingResponse{}, carerrors.ErrCarNotFound
		}
		return BookingResponse{}, mapRepositoryError(err)
	}

	b := &Booking{
		BookingID:  uuid.New().String(),
		CustomerID: req.CustomerID,
		CarID:      req.CarID,
		BookedAt:   time.Now().UTC(),
		TimePeriod: req.TimePeriod,
		Status:     "pending",
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return BookingResponse{}, tx.Error
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, b); err != nil {
		return BookingResponse{}, mapRepositoryError(err)
	}

	event := events.BookingCreatedEvent{
		EventType:  "booking_created",
		BookingID:  b.BookingID,
		CustomerID: b.CustomerID,
		CarID:      b.CarID,
		TimePeriod: b.TimePeriod,
		OccurredAt: b.BookedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return BookingResponse{}, err
	}

	outboxEvent := &kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "booking",
		AggregateID:   b.BookingID,
		EventType:     event.EventType,
		Topic:         events.BookingCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		s.logger.Error("enqueue booking_created event failed",
			zap.String("booking_id", b.BookingID),
			zap.Error(err),
		)
		return BookingResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return BookingResponse{}, err
	}

	return toResponse(b), nil
}

func (s *service) GetAll(ctx context.Context) ([]BookingResponse, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list bookings failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, toResponse(&bookings[i]))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (BookingResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return BookingResponse{}, mapRepositoryError(err)
	}
	return toResponse(b), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateBookingRequest) (BookingResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return BookingResponse{}, mapRepositoryError(err)
	}

	b.TimePeriod = req.TimePeriod
	b.Status = req.Status
	b.ReturnedAt = req.ReturnedAt
	b.Fine = req.Fine

	if err := s.repo.Update(ctx, b); err != nil {
		s.logger.Error("update booking failed", zap.String("booking_id", id), zap.Error(err))
		return BookingResponse{}, mapRepositoryError(err)
	}

	return toResponse(b), nil
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
