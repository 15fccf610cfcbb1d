package transaction

import "time"

// Transaction is a payment taken against a booking. Customer and car are
// denormalized from the booking at creation so the row survives a booking
// deletion (FK is SET NULL).
type Transaction struct {
	TransactionID     string    `gorm:"column:transaction_id;type:varchar(36);primaryKey"`
	TransactionAmount float64   `gorm:"column:transaction_amount;not null"`
	Date              time.Time `gorm:"autoCreateTime"`
	CustomerID        string    `gorm:"column:customer_id;type:varchar(36);not null"`
	CarID             string    `gorm:"column:car_id;type:varchar(36);not null"`
	BookingID         *string   `gorm:"column:booking_id;type:varchar(36)"`
}

func (Transaction) TableName() string { return "transactions" }
