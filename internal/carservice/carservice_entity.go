package carservice

import "time"

// ServiceRecord is a maintenance entry for a car.
type ServiceRecord struct {
	ServiceID         string    `gorm:"column:service_id;type:varchar(36);primaryKey"`
	CarID             string    `gorm:"column:car_id;type:varchar(36);not null"`
	TransactionAmount float64   `gorm:"column:transaction_amount;not null"`
	ServiceDate       time.Time `gorm:"column:service_date;autoCreateTime"`
	Details           string    `gorm:"type:text;not null"`
}

func (ServiceRecord) TableName() string { return "services" }
