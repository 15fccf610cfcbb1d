package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Vectus-Drive/backend/internal/booking"
	bookingerrors "github.com/Vectus-Drive/backend/internal/booking/errors"
)

//go:generate mockgen -source=transaction_service.go -destination=mock/transaction_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateTransactionRequest) (TransactionResponse, error)
	GetAll(ctx context.Context) ([]TransactionResponse, error)
	GetByID(ctx context.Context, id string) (TransactionResponse, error)
	Update(ctx context.Context, id string, req UpdateTransactionRequest) (TransactionResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	bookings booking.Repository
	logger   *zap.Logger
}

func NewService(repo Repository, bookings booking.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("transaction.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("transaction.service")
	}
	return &service{repo: repo, bookings: bookings, logger: l}
}

// Create resolves the referenced booking and copies its customer and car
// onto the transaction row.
func (s *service) Create(ctx context.Context, req CreateTransactionRequest) (TransactionResponse, error) {
	b, err := s.bookings.FindByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TransactionResponse{}, bookingerrors.ErrBookingNotFound
		}
		return TransactionResponse{}, mapRepositoryError(err)
	}

	t := &Transaction{
		TransactionID:     uuid.New().String(),
		TransactionAmount: req.TransactionAmount,
		Date:              time.Now().UTC(),
		CustomerID:        b.CustomerID,
		CarID:             b.CarID,
		BookingID:         &b.BookingID,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error("create transaction failed",
			zap.String("booking_id", req.BookingID),
			zap.Error(err),
		)
		return TransactionResponse{}, mapRepositoryError(err)
	}

	return toResponse(t), nil
}

func (s *service) GetAll(ctx context.Context) ([]TransactionResponse, error) {
	transactions, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list transactions failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		resp = append(resp, toResponse(&transactions[i]))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (TransactionResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TransactionResponse{}, mapRepositoryError(err)
	}
	return toResponse(t), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateTransactionRequest) (TransactionResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TransactionResponse{}, mapRepositoryError(err)
	}

	t.TransactionAmount = req.TransactionAmount

	if err := s.repo.Update(ctx, t); err != nil {
		s.logger.Error("update transaction failed", zap.String("transaction_id", id), zap.Error(err))
		return TransactionResponse{}, mapRepositoryError(err)
	}

	return toResponse(t), nil
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
