package car

// Car is a fleet vehicle. Features is stored as a jsonb column.
type Car struct {
	CarID              string   `gorm:"column:car_id;type:varchar(36);primaryKey"`
	LicenseNo          string   `gorm:"column:license_no;type:varchar(20);uniqueIndex:uq_car_license_no;not null"`
	Make               string   `gorm:"type:varchar(100);not null"`
	Model              string   `gorm:"type:varchar(50);not null"`
	Image              string   `gorm:"type:varchar(255)"`
	Seats              int      `gorm:"not null"`
	Fuel               string   `gorm:"type:varchar(20);not null;default:diesel"`
	Transmission       string   `gorm:"type:varchar(20);not null;default:automatic"`
	Features           []string `gorm:"type:jsonb;serializer:json"`
	Doors              int      `gorm:"not null"`
	Description        string   `gorm:"type:text"`
	PricePerDay        float64  `gorm:"column:price_per_day;not null"`
	AvailabilityStatus bool     `gorm:"column:availability_status;default:true"`
	Condition          string   `gorm:"type:varchar(50);not null"`
}

func (Car) TableName() string { return "cars" }
