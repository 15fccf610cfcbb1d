package car_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Vectus-Drive/backend/internal/car"
	carerrors "github.com/Vectus-Drive/backend/internal/car/errors"
)

type fakeCarRepo struct {
	cars        map[string]*car.Car
	findOptions int
}

func newFakeCarRepo(cars ...*car.Car) *fakeCarRepo {
	repo := &fakeCarRepo{cars: map[string]*car.Car{}}
	for _, c := range cars {
		repo.cars[c.CarID] = c
	}
	return repo
}

func (f *fakeCarRepo) WithTx(tx *gorm.DB) car.Repository { return f }
func (f *fakeCarRepo) Create(ctx context.Context, c *car.Car) error {
	f.cars[c.CarID] = c
	return nil
}
func (f *fakeCarRepo) FindAll(ctx context.Context) ([]car.Car, error) {
	out := make([]car.Car, 0, len(f.cars))
	for _, c := range f.cars {
		out = append(out, *c)
	}
	return out, nil
}
func (f *fakeCarRepo) FindByID(ctx context.Context, id string) (*car.Car, error) {
	c, ok := f.cars[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}
func (f *fakeCarRepo) FindOptions(ctx context.Context) ([]car.Car, error) {
	f.findOptions++
	out := make([]car.Car, 0, len(f.cars))
	for _, c := range f.cars {
		if c.AvailabilityStatus {
			out = append(out, *c)
		}
	}
	return out, nil
}
func (f *fakeCarRepo) Update(ctx context.Context, c *car.Car) error {
	f.cars[c.CarID] = c
	return nil
}
func (f *fakeCarRepo) Delete(ctx context.Context, id string) error {
	delete(f.cars, id)
	return nil
}

func testCar(id string) *car.Car {
	return &car.Car{
		CarID:              id,
		LicenseNo:          "ABC-" + id[:4],
		Make:               "Toyota",
		Model:              "Corolla",
		Seats:              5,
		Fuel:               "petrol",
		Transmission:       "automatic",
		Doors:              4,
		PricePerDay:        55,
		AvailabilityStatus: true,
		Condition:          "good",
	}
}

func TestCarService_GetOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the repository", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		repo := newFakeCarRepo()
		svc := car.NewService(repo, rdb)

		cached := []car.CarOption{{
			CarID:       "11111111-2222-3333-4444-555555555555",
			LicenseNo:   "ABC-1111",
			Make:        "Toyota",
			Model:       "Corolla",
			PricePerDay: 55,
		}}
		payload, err := json.Marshal(cached)
		assert.NoError(t, err)
		mock.ExpectGet(car.CarOptionsKey).SetVal(string(payload))

		opts, err := svc.GetOptions(ctx)
		assert.NoError(t, err)
		assert.Equal(t, cached, opts)
		assert.Zero(t, repo.findOptions)
	})

	t.Run("cache miss queries once and fills the cache", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		repo := newFakeCarRepo(testCar("11111111-2222-3333-4444-555555555555"))
		svc := car.NewService(repo, rdb)

		mock.ExpectGet(car.CarOptionsKey).RedisNil()
		mock.Regexp().ExpectSet(car.CarOptionsKey, `.*`, 30*time.Minute).SetVal("OK")

		opts, err := svc.GetOptions(ctx)
		assert.NoError(t, err)
		assert.Len(t, opts, 1)
		assert.Equal(t, 1, repo.findOptions)
	})
}

func TestCarService_CreateInvalidatesOptionsCache(t *testing.T) {
	ctx := context.Background()
	rdb, mock := redismock.NewClientMock()
	repo := newFakeCarRepo()
	svc := car.NewService(repo, rdb)

	mock.ExpectDel(car.CarOptionsKey).SetVal(1)

	resp, err := svc.Create(ctx, car.CreateCarRequest{
		LicenseNo:   "XYZ-9999",
		Make:        "Honda",
		Model:       "Civic",
		Seats:       5,
		Doors:       4,
		PricePerDay: 60,
		Condition:   "excellent",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.CarID)
	// Unset fuel and transmission take the fleet defaults.
	assert.Equal(t, "diesel", resp.Fuel)
	assert.Equal(t, "automatic", resp.Transmission)
	assert.True(t, resp.AvailabilityStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	rdb, _ := redismock.NewClientMock()
	svc := car.NewService(newFakeCarRepo(), rdb)

	_, err := svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, carerrors.ErrCarNotFound)
}
