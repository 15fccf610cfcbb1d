package notification

type Notification struct {
	NotificationID string `gorm:"column:notification_id;type:varchar(36);primaryKey"`
	UID            string `gorm:"column:u_id;type:varchar(36);not null"`
	Text           string `gorm:"type:text;not null"`
}

func (Notification) TableName() string { return "notifications" }
