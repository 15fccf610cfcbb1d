package auth

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=80"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=customer employee admin"`

	// Profile fields for the role-specific record. Unused for admin.
	Name        string `json:"name" binding:"required_unless=Role admin"`
	NIC         string `json:"nic" binding:"required_unless=Role admin"`
	Email       string `json:"email" binding:"required_unless=Role admin,omitempty,email"`
	Image       string `json:"image"`
	Address     string `json:"address"`
	TelephoneNo string `json:"telephone_no"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateAccountRequest struct {
	Username string `json:"username" binding:"omitempty,min=3,max=80"`
	// Always treated as plaintext and re-hashed before storage.
	Password string `json:"password" binding:"omitempty,min=6"`
}

// AccountResponse never carries the password or its hash.
type AccountResponse struct {
	UID      string `json:"u_id" validate:"required,uuid"`
	Username string `json:"username" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=customer employee admin"`
}
