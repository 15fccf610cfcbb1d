package booking_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Vectus-Drive/backend/internal/booking"
	bookingerrors "github.com/Vectus-Drive/backend/internal/booking/errors"
	"github.com/Vectus-Drive/backend/internal/car"
	carerrors "github.com/Vectus-Drive/backend/internal/car/errors"
	"github.com/Vectus-Drive/backend/internal/customer"
	customererrors "github.com/Vectus-Drive/backend/internal/customer/errors"
	"github.com/Vectus-Drive/backend/internal/events"
	"github.com/Vectus-Drive/backend/internal/messaging/kafka"
)

type fakeBookingRepo struct {
	createFn   func(ctx context.Context, b *booking.Booking) error
	findAllFn  func(ctx context.Context) ([]booking.Booking, error)
	findByIDFn func(ctx context.Context, id string) (*booking.Booking, error)
	updateFn   func(ctx context.Context, b *booking.Booking) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeBookingRepo) WithTx(tx *gorm.DB) booking.Repository { return f }
func (f *fakeBookingRepo) Create(ctx context.Context, b *booking.Booking) error {
	if f.createFn != nil {
		return f.createFn(ctx, b)
	}
	return nil
}
func (f *fakeBookingRepo) FindAll(ctx context.Context) ([]booking.Booking, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}
func (f *fakeBookingRepo) FindByID(ctx context.Context, id string) (*booking.Booking, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeBookingRepo) Update(ctx context.Context, b *booking.Booking) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, b)
	}
	return nil
}
func (f *fakeBookingRepo) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeCustomerRepo struct {
	findByIDFn func(ctx context.Context, id string) (*customer.Customer, error)
}

func (f *fakeCustomerRepo) WithTx(tx *gorm.DB) customer.Repository        { return f }
func (f *fakeCustomerRepo) Create(ctx context.Context, c *customer.Customer) error { return nil }
func (f *fakeCustomerRepo) FindAll(ctx context.Context) ([]customer.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeCustomerRepo) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeCustomerRepo) Update(ctx context.Context, c *customer.Customer) error { return nil }
func (f *fakeCustomerRepo) Delete(ctx context.Context, id string) error            { return nil }

type fakeFleetRepo struct {
	findByIDFn func(ctx context.Context, id string) (*car.Car, error)
}

func (f *fakeFleetRepo) WithTx(tx *gorm.DB) car.Repository          { return f }
func (f *fakeFleetRepo) Create(ctx context.Context, c *car.Car) error { return nil }
func (f *fakeFleetRepo) FindAll(ctx context.Context) ([]car.Car, error) {
	return nil, nil
}
func (f *fakeFleetRepo) FindByID(ctx context.Context, id string) (*car.Car, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeFleetRepo) FindOptions(ctx context.Context) ([]car.Car, error) { return nil, nil }
func (f *fakeFleetRepo) Update(ctx context.Context, c *car.Car) error       { return nil }
func (f *fakeFleetRepo) Delete(ctx context.Context, id string) error        { return nil }

type fakeOutboxRepo struct {
	createFn func(ctx context.Context, event *kafka.OutboxEvent) error
}

func (f *fakeOutboxRepo) WithTx(tx *gorm.DB) kafka.OutboxRepository { return f }
func (f *fakeOutboxRepo) Create(ctx context.Context, event *kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}
func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error            { return nil }
func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Discard,
	})
	assert.NoError(t, err)

	return gormDB, mock
}

func foundCustomer(id string) *customer.Customer {
	return &customer.Customer{CustomerID: id}
}

func foundCar(id string) *car.Car {
	return &car.Car{CarID: id, AvailabilityStatus: true}
}

func TestBookingService_Create(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New().String()
	carID := uuid.New().String()

	t.Run("commits booking and lifecycle event together", func(t *testing.T) {
		gormDB, sqlMock := newMockGorm(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		var queued *kafka.OutboxEvent
		repo := &fakeBookingRepo{}
		outbox := &fakeOutboxRepo{
			createFn: func(ctx context.Context, event *kafka.OutboxEvent) error {
				queued = event
				return nil
			},
		}
		svc := booking.NewService(gormDB, repo,
			&fakeCustomerRepo{findByIDFn: func(ctx context.Context, id string) (*customer.Customer, error) {
				assert.Equal(t, customerID, id)
				return foundCustomer(id), nil
			}},
			&fakeFleetRepo{findByIDFn: func(ctx context.Context, id string) (*car.Car, error) {
				assert.Equal(t, carID, id)
				return foundCar(id), nil
			}},
			outbox,
		)

		resp, err := svc.Create(ctx, booking.CreateBookingRequest{
			CustomerID: customerID,
			CarID:      carID,
			TimePeriod: 4,
		})

		assert.NoError(t, err)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, 4, resp.TimePeriod)

		if assert.NotNil(t, queued) {
			assert.Equal(t, events.BookingCreatedTopic, queued.Topic)
			assert.Equal(t, "booking", queued.AggregateType)
			assert.Equal(t, resp.BookingID, queued.AggregateID)
			assert.Equal(t, kafka.OutboxStatusPending, queued.Status)

			var payload events.BookingCreatedEvent
			assert.NoError(t, json.Unmarshal(queued.Payload, &payload))
			assert.Equal(t, resp.BookingID, payload.BookingID)
			assert.Equal(t, customerID, payload.CustomerID)
			assert.Equal(t, carID, payload.CarID)
		}
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown customer", func(t *testing.T) {
		gormDB, _ := newMockGorm(t)
		svc := booking.NewService(gormDB, &fakeBookingRepo{},
			&fakeCustomerRepo{findByIDFn: func(ctx context.Context, id string) (*customer.Customer, error) {
				return nil, gorm.ErrRecordNotFound
			}},
			&fakeFleetRepo{},
			&fakeOutboxRepo{},
		)

		_, err := svc.Create(ctx, booking.CreateBookingRequest{
			CustomerID: customerID,
			CarID:      carID,
			TimePeriod: 1,
		})
		assert.ErrorIs(t, err, customererrors.ErrCustomerNotFound)
	})

	t.Run("unknown car", func(t *testing.T) {
		gormDB, _ := newMockGorm(t)
		svc := booking.NewService(gormDB, &fakeBookingRepo{},
			&fakeCustomerRepo{findByIDFn: func(ctx context.Context, id string) (*customer.Customer, error) {
				return foundCustomer(id), nil
			}},
			&fakeFleetRepo{findByIDFn: func(ctx context.Context, id string) (*car.Car, error) {
				return nil, gorm.ErrRecordNotFound
			}},
			&fakeOutboxRepo{},
		)

		_, err := svc.Create(ctx, booking.CreateBookingRequest{
			CustomerID: customerID,
			CarID:      carID,
			TimePeriod: 1,
		})
		assert.ErrorIs(t, err, carerrors.ErrCarNotFound)
	})

	t.Run("outbox failure rolls the booking back", func(t *testing.T) {
		gormDB, sqlMock := newMockGorm(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		queueErr := errors.New("outbox insert failed")
		svc := booking.NewService(gormDB, &fakeBookingRepo{},
			&fakeCustomerRepo{findByIDFn: func(ctx context.Context, id string) (*customer.Customer, error) {
				return foundCustomer(id), nil
			}},
			&fakeFleetRepo{findByIDFn: func(ctx context.Context, id string) (*car.Car, error) {
				return foundCar(id), nil
			}},
			&fakeOutboxRepo{createFn: func(ctx context.Context, event *kafka.OutboxEvent) error {
				return queueErr
			}},
		)

		_, err := svc.Create(ctx, booking.CreateBookingRequest{
			CustomerID: customerID,
			CarID:      carID,
			TimePeriod: 2,
		})
		assert.ErrorIs(t, err, queueErr)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestBookingService_GetByID_NotFound(t *testing.T) {
	gormDB, _ := newMockGorm(t)
	svc := booking.NewService(gormDB, &fakeBookingRepo{}, &fakeCustomerRepo{}, &fakeFleetRepo{}, &fakeOutboxRepo{})

	_, err := svc.GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, bookingerrors.ErrBookingNotFound)
}

func TestBookingService_Update(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New().String()
	returned := time.Now().UTC()

	var saved *booking.Booking
	repo := &fakeBookingRepo{
		findByIDFn: func(ctx context.Context, id string) (*booking.Booking, error) {
			return &booking.Booking{
				BookingID:  id,
				CustomerID: uuid.New().String(),
				CarID:      uuid.New().String(),
				BookedAt:   time.Now().UTC(),
				TimePeriod: 3,
				Status:     "active",
			}, nil
		},
		updateFn: func(ctx context.Context, b *booking.Booking) error {
			saved = b
			return nil
		},
	}

	gormDB, _ := newMockGorm(t)
	svc := booking.NewService(gormDB, repo, &fakeCustomerRepo{}, &fakeFleetRepo{}, &fakeOutboxRepo{})

	resp, err := svc.Update(ctx, bookingID, booking.UpdateBookingRequest{
		TimePeriod: 5,
		Status:     "completed",
		ReturnedAt: &returned,
		Fine:       120.5,
	})

	assert.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, 120.5, resp.Fine)
	if assert.NotNil(t, saved) {
		assert.Equal(t, 5, saved.TimePeriod)
		assert.Equal(t, &returned, saved.ReturnedAt)
	}
}
