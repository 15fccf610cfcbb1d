package booking

import "time"

// Booking links a customer to a car for a rental period measured in days.
type Booking struct {
	BookingID  string     `gorm:"column:booking_id;type:varchar(36);primaryKey"`
	CustomerID string     `gorm:"column:customer_id;type:varchar(36);not null"`
	CarID      string     `gorm:"column:car_id;type:varchar(36);not null"`
	BookedAt   time.Time  `gorm:"column:booked_at;autoCreateTime"`
	TimePeriod int        `gorm:"column:time_period;not null"`
	ReturnedAt *time.Time `gorm:"column:returned_at"`
	Status     string     `gorm:"type:varchar(20);not null;default:pending"`
	Fine       float64    `gorm:"default:0"`
}

func (Booking) TableName() string { return "bookings" }
