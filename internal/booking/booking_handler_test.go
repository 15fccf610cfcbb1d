package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Vectus-Drive/backend/internal/booking"
	carerrors "github.com/Vectus-Drive/backend/internal/car/errors"
	"github.com/Vectus-Drive/backend/internal/middleware"
)

type fakeService struct {
	createFn  func(ctx context.Context, req booking.CreateBookingRequest) (booking.BookingResponse, error)
	getAllFn  func(ctx context.Context) ([]booking.BookingResponse, error)
	getByIDFn func(ctx context.Context, id string) (booking.BookingResponse, error)
	updateFn  func(ctx context.Context, id string, req booking.UpdateBookingRequest) (booking.BookingResponse, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (f *fakeService) Create(ctx context.Context, req booking.CreateBookingRequest) (booking.BookingResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeService) GetAll(ctx context.Context) ([]booking.BookingResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeService) GetByID(ctx context.Context, id string) (booking.BookingResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeService) Update(ctx context.Context, id string, req booking.UpdateBookingRequest) (booking.BookingResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func testResponse(customerID, carID string) booking.BookingResponse {
	return booking.BookingResponse{
		BookingID:  uuid.New().String(),
		CustomerID: customerID,
		CarID:      carID,
		BookedAt:   time.Now(),
		TimePeriod: 3,
		Status:     "pending",
	}
}

func TestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	customerID := uuid.New().String()
	carID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc := &fakeService{
			createFn: func(ctx context.Context, req booking.CreateBookingRequest) (booking.BookingResponse, error) {
				assert.Equal(t, customerID, req.CustomerID)
				assert.Equal(t, carID, req.CarID)
				return testResponse(req.CustomerID, req.CarID), nil
			},
		}
		h := booking.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := fmt.Sprintf(`{"customer_id":%q,"car_id":%q,"time_period":3}`, customerID, carID)
		c.Request = httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "\"status\":\"success\"")
	})

	t.Run("stores the response for replay and releases the lock", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		svc := &fakeService{
			createFn: func(ctx context.Context, req booking.CreateBookingRequest) (booking.BookingResponse, error) {
				return testResponse(req.CustomerID, req.CarID), nil
			},
		}
		h := booking.NewHandlerWithRedis(svc, rdb)

		cacheKey := "idemp:/bookings:" + customerID + ":key-1"
		lockKey := cacheKey + ":lock"
		mock.Regexp().ExpectSet(cacheKey, `.*`, 24*time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set(middleware.IdempotencyCacheKey, cacheKey)
		c.Set(middleware.IdempotencyLockKey, lockKey)
		body := fmt.Sprintf(`{"customer_id":%q,"car_id":%q,"time_period":3}`, customerID, carID)
		c.Request = httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing car_id", func(t *testing.T) {
		h := booking.NewHandler(&fakeService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := fmt.Sprintf(`{"customer_id":%q,"time_period":3}`, customerID)
		c.Request = httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid input")
	})

	t.Run("unknown car", func(t *testing.T) {
		svc := &fakeService{
			createFn: func(ctx context.Context, req booking.CreateBookingRequest) (booking.BookingResponse, error) {
				return booking.BookingResponse{}, carerrors.ErrCarNotFound
			},
		}
		h := booking.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := fmt.Sprintf(`{"customer_id":%q,"car_id":%q,"time_period":3}`, customerID, carID)
		c.Request = httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		h.Create(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "\"status\":\"error\"")
	})
}

func TestHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		getAllFn: func(ctx context.Context) ([]booking.BookingResponse, error) {
			return []booking.BookingResponse{
				testResponse(uuid.New().String(), uuid.New().String()),
				testResponse(uuid.New().String(), uuid.New().String()),
			}, nil
		},
	}
	h := booking.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/bookings", nil)
	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2 bookings found")
}

func TestHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	bookingID := uuid.New().String()

	svc := &fakeService{
		deleteFn: func(ctx context.Context, id string) error {
			assert.Equal(t, bookingID, id)
			return nil
		},
	}
	h := booking.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: bookingID}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/bookings/"+bookingID, nil)
	h.Delete(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
}
