package employee

type UpdateEmployeeRequest struct {
	Name        string `json:"name" binding:"required"`
	NIC         string `json:"nic" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Image       string `json:"image"`
	Address     string `json:"address"`
	TelephoneNo string `json:"telephone_no"`
}

type EmployeeResponse struct {
	EmployeeID  string `json:"employee_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required"`
	NIC         string `json:"nic" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Image       string `json:"image"`
	Address     string `json:"address"`
	TelephoneNo string `json:"telephone_no"`
}

func toResponse(e *Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:  e.EmployeeID,
		Name:        e.Name,
		NIC:         e.NIC,
		Email:       e.Email,
		Image:       e.Image,
		Address:     e.Address,
		TelephoneNo: e.TelephoneNo,
	}
}
