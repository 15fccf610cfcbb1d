package booking

import "time"

type CreateBookingRequest struct {
	CustomerID string `json:"customer_id" binding:"required,uuid"`
	CarID      string `json:"car_id" binding:"required,uuid"`
	TimePeriod int    `json:"time_period" binding:"required,gt=0"`
}

type UpdateBookingRequest struct {
	TimePeriod int        `json:"time_period" binding:"required,gt=0"`
	Status     string     `json:"status" binding:"required,oneof=pending active completed cancelled"`
	ReturnedAt *time.Time `json:"returned_at"`
	Fine       float64    `json:"fine" binding:"gte=0"`
}

type BookingResponse struct {
	BookingID  string     `json:"booking_id" validate:"required,uuid"`
	CustomerID string     `json:"customer_id" validate:"required,uuid"`
	CarID      string     `json:"car_id" validate:"required,uuid"`
	BookedAt   time.Time  `json:"booked_at"`
	TimePeriod int        `json:"time_period" validate:"gt=0"`
	ReturnedAt *time.Time `json:"returned_at"`
	Status     string     `json:"status" validate:"required,oneof=pending active completed cancelled"`
	Fine       float64    `json:"fine" validate:"gte=0"`
}

func toResponse(b *Booking) BookingResponse {
	return BookingResponse{
		BookingID:  b.BookingID,
		CustomerID: b.CustomerID,
		CarID:      b.CarID,
		BookedAt:   b.BookedAt,
		TimePeriod: b.TimePeriod,
		ReturnedAt: b.ReturnedAt,
		Status:     b.Status,
		Fine:       b.Fine,
	}
}
