package customer

// Customer is the profile attached 1:1 to a user account with the customer
// role. Its primary key is the owning user's id.
type Customer struct {
	CustomerID  string `gorm:"column:customer_id;type:varchar(36);primaryKey"`
	Name        string `gorm:"type:varchar(100);not null"`
	NIC         string `gorm:"column:nic;type:varchar(20);uniqueIndex:uq_customer_nic;not null"`
	Email       string `gorm:"type:varchar(120);uniqueIndex:uq_customer_email;not null"`
	Image       string `gorm:"type:varchar(255)"`
	Address     string `gorm:"type:varchar(255)"`
	TelephoneNo string `gorm:"column:telephone_no;type:varchar(15)"`
}

func (Customer) TableName() string { return "customers" }
