package transaction

import "time"

type CreateTransactionRequest struct {
	BookingID         string  `json:"booking_id" binding:"required,uuid"`
	TransactionAmount float64 `json:"transaction_amount" binding:"required,gt=0"`
}

type UpdateTransactionRequest struct {
	TransactionAmount float64 `json:"transaction_amount" binding:"required,gt=0"`
}

type TransactionResponse struct {
	TransactionID     string    `json:"transaction_id" validate:"required,uuid"`
	TransactionAmount float64   `json:"transaction_amount" validate:"gt=0"`
	Date              time.Time `json:"date"`
	CustomerID        string    `json:"customer_id" validate:"required,uuid"`
	CarID             string    `json:"car_id" validate:"required,uuid"`
	BookingID         *string   `json:"booking_id"`
}

func toResponse(t *Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:     t.TransactionID,
		TransactionAmount: t.TransactionAmount,
		Date:              t.Date,
		CustomerID:        t.CustomerID,
		CarID:             t.CarID,
		BookingID:         t.BookingID,
	}
}
