package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Vectus-Drive/backend/internal/events"
	"github.com/Vectus-Drive/backend/internal/notification"
	notificationerrors "github.com/Vectus-Drive/backend/internal/notification/errors"
)

// ConsumeBookingLifecycle reads booking_created events and writes a
// confirmation notification for the booking's customer. The notification id
// is derived from the booking id, so a redelivered event hits the primary
// key and is skipped.
func ConsumeBookingLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	notificationService notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.booking_lifecycle")
	log.Info("booking lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("booking lifecycle consumer stopped")
				return
			}
			log.Error("fetch booking lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.BookingCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode booking_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		notificationID := uuid.NewSHA1(uuid.NameSpaceOID, []byte("booking_created:"+event.BookingID)).String()
		_, err = notificationService.Create(ctx, notification.CreateNotificationRequest{
			NotificationID: notificationID,
			UID:            event.CustomerID,
			Text: fmt.Sprintf(
				"Your booking %s has been received and is pending confirmation (%d days).",
				event.BookingID, event.TimePeriod,
			),
		})
		if err != nil {
			if errors.Is(err, notificationerrors.ErrNotificationAlreadyExists) {
				log.Warn("notification already exists for event, skipping",
					zap.String("booking_id", event.BookingID),
					zap.String("customer_id", event.CustomerID),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("create booking notification failed",
				zap.String("booking_id", event.BookingID),
				zap.String("customer_id", event.CustomerID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit booking lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("booking notification created from booking_created event",
			zap.String("booking_id", event.BookingID),
			zap.String("customer_id", event.CustomerID),
		)
	}
}
