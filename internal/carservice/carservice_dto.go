package carservice

import "time"

type CreateServiceRequest struct {
	CarID             string  `json:"car_id" binding:"required,uuid"`
	TransactionAmount float64 `json:"transaction_amount" binding:"required,gt=0"`
	Details           string  `json:"details" binding:"required"`
}

type UpdateServiceRequest struct {
	TransactionAmount float64 `json:"transaction_amount" binding:"required,gt=0"`
	Details           string  `json:"details" binding:"required"`
}

type ServiceResponse struct {
	ServiceID         string    `json:"service_id" validate:"required,uuid"`
	CarID             string    `json:"car_id" validate:"required,uuid"`
	TransactionAmount float64   `json:"transaction_amount" validate:"gt=0"`
	ServiceDate       time.Time `json:"service_date"`
	Details           string    `json:"details" validate:"required"`
}

func toResponse(s *ServiceRecord) ServiceResponse {
	return ServiceResponse{
		ServiceID:         s.ServiceID,
		CarID:             s.CarID,
		TransactionAmount: s.TransactionAmount,
		ServiceDate:       s.ServiceDate,
		Details:           s.Details,
	}
}
