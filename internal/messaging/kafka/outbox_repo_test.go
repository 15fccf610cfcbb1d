package kafka_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Vectus-Drive/backend/internal/messaging/kafka"
)

func setupOutboxRepo(t *testing.T) (kafka.OutboxRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger:                 logger.Discard,
		SkipDefaultTransaction: true,
	})
	assert.NoError(t, err)

	return kafka.NewOutboxRepository(gormDB), mock
}

func validEvent() *kafka.OutboxEvent {
	return &kafka.OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "booking",
		AggregateID:   uuid.New().String(),
		EventType:     "booking_created",
		Topic:         "rental.booking.lifecycle.v1",
		Payload:       []byte(`{"booking_id":"b1"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestValidateOutboxEvent(t *testing.T) {
	assert.NoError(t, kafka.ValidateOutboxEvent(validEvent()))

	missingID := validEvent()
	missingID.ID = ""
	assert.Error(t, kafka.ValidateOutboxEvent(missingID))

	missingTopic := validEvent()
	missingTopic.Topic = ""
	assert.Error(t, kafka.ValidateOutboxEvent(missingTopic))

	emptyPayload := validEvent()
	emptyPayload.Payload = nil
	assert.Error(t, kafka.ValidateOutboxEvent(emptyPayload))

	badStatus := validEvent()
	badStatus.Status = "queued"
	assert.Error(t, kafka.ValidateOutboxEvent(badStatus))
}

func TestOutboxRepository_Create_RejectsInvalidEvent(t *testing.T) {
	repo, mock := setupOutboxRepo(t)

	event := validEvent()
	event.Status = "queued"

	err := repo.Create(context.Background(), event)
	assert.Error(t, err)
	// Validation fails before any SQL runs.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSent(t *testing.T) {
	repo, mock := setupOutboxRepo(t)
	id := uuid.New().String()

	mock.ExpectExec(`UPDATE "outbox_events"`).
		WithArgs("", kafka.OutboxStatusSent, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkSent(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	repo, mock := setupOutboxRepo(t)
	id := uuid.New().String()

	mock.ExpectExec(`UPDATE "outbox_events"`).
		WithArgs("broker unreachable", kafka.OutboxStatusFailed, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkFailed(context.Background(), id, "broker unreachable"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	repo, mock := setupOutboxRepo(t)

	rows := sqlmock.NewRows([]string{"id", "topic", "status", "payload"}).
		AddRow(uuid.New().String(), "rental.booking.lifecycle.v1", kafka.OutboxStatusPending, []byte(`{}`)).
		AddRow(uuid.New().String(), "rental.booking.lifecycle.v1", kafka.OutboxStatusFailed, []byte(`{}`))

	mock.ExpectQuery(`SELECT \* FROM "outbox_events"`).
		WillReturnRows(rows)

	events, err := repo.ListPending(context.Background(), 50)
	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
