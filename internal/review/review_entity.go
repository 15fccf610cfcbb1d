package review

import "time"

type Review struct {
	ReviewID    string    `gorm:"column:review_id;type:varchar(36);primaryKey"`
	CustomerID  string    `gorm:"column:customer_id;type:varchar(36);not null"`
	Stars       int       `gorm:"not null"`
	Topic       string    `gorm:"type:varchar(100)"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Review) TableName() string { return "reviews" }
