package token

import "time"

// Record is one ledger entry for an issued refresh token. Entries are
// append-only; the only mutation ever applied is setting RevokedAt.
type Record struct {
	ID        uint       `gorm:"primaryKey"`
	JTI       string     `gorm:"column:jti;type:varchar(255);uniqueIndex:uq_token_jti;not null"`
	UserID    string     `gorm:"type:varchar(36);not null;index"`
	ExpiresAt time.Time  `gorm:"not null"`
	RevokedAt *time.Time `gorm:""`
}

func (Record) TableName() string { return "token_blocklist" }
