package events

import "time"

const BookingCreatedTopic = "rental.booking.lifecycle.v1"

type BookingCreatedEvent struct {
	EventType  string    `json:"event_type"`
	BookingID  string    `json:"booking_id"`
	CustomerID string    `json:"customer_id"`
	CarID      string    `json:"car_id"`
	TimePeriod int       `json:"time_period"`
	OccurredAt time.Time `json:"occurred_at"`
}
