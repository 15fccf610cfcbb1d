package customer

type UpdateCustomerRequest struct {
	Name        string `json:"name" binding:"required"`
	NIC         string `json:"nic" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Image       string `json:"image"`
	Address     string `json:"address"`
	TelephoneNo string `json:"telephone_no"`
}

type CustomerResponse struct {
	CustomerID  string `json:"customer_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required"`
	NIC         string `json:"nic" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Image       string `json:"image"`
	Address     string `json:"address"`
	TelephoneNo string `json:"telephone_no"`
}

func toResponse(c *Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:  c.CustomerID,
		Name:        c.Name,
		NIC:         c.NIC,
		Email:       c.Email,
		Image:       c.Image,
		Address:     c.Address,
		TelephoneNo: c.TelephoneNo,
	}
}
