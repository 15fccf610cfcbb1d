package auth

import "github.com/Vectus-Drive/backend/internal/domain"

// User is the identity record. At most one Customer or Employee profile
// hangs off it (keyed by UID); deleting a user cascades to its profile and
// notifications.
type User struct {
	UID      string      `gorm:"column:u_id;type:varchar(36);primaryKey"`
	Username string      `gorm:"type:varchar(80);uniqueIndex:uq_user_username;not null"`
	Password string      `gorm:"type:varchar(255);not null"`
	Role     domain.Role `gorm:"type:varchar(20);not null;default:'customer'"`
}

func (User) TableName() string { return "users" }
