package car

type CreateCarRequest struct {
	LicenseNo          string   `json:"license_no" binding:"required"`
	Make               string   `json:"make" binding:"required"`
	Model              string   `json:"model" binding:"required"`
	Image              string   `json:"image"`
	Seats              int      `json:"seats" binding:"required,gt=0"`
	Fuel               string   `json:"fuel" binding:"omitempty,oneof=diesel petrol hybrid electric"`
	Transmission       string   `json:"transmission" binding:"omitempty,oneof=automatic manual"`
	Features           []string `json:"features"`
	Doors              int      `json:"doors" binding:"required,gt=0"`
	Description        string   `json:"description"`
	PricePerDay        float64  `json:"price_per_day" binding:"required,gt=0"`
	AvailabilityStatus *bool    `json:"availability_status"`
	Condition          string   `json:"condition" binding:"required"`
}

type UpdateCarRequest struct {
	LicenseNo          string   `json:"license_no" binding:"required"`
	Make               string   `json:"make" binding:"required"`
	Model              string   `json:"model" binding:"required"`
	Image              string   `json:"image"`
	Seats              int      `json:"seats" binding:"required,gt=0"`
	Fuel               string   `json:"fuel" binding:"omitempty,oneof=diesel petrol hybrid electric"`
	Transmission       string   `json:"transmission" binding:"omitempty,oneof=automatic manual"`
	Features           []string `json:"features"`
	Doors              int      `json:"doors" binding:"required,gt=0"`
	Description        string   `json:"description"`
	PricePerDay        float64  `json:"price_per_day" binding:"required,gt=0"`
	AvailabilityStatus *bool    `json:"availability_status"`
	Condition          string   `json:"condition" binding:"required"`
}

type CarResponse struct {
	CarID              string   `json:"car_id" validate:"required,uuid"`
	LicenseNo          string   `json:"license_no" validate:"required"`
	Make               string   `json:"make" validate:"required"`
	Model              string   `json:"model" validate:"required"`
	Image              string   `json:"image"`
	Seats              int      `json:"seats" validate:"gt=0"`
	Fuel               string   `json:"fuel" validate:"required"`
	Transmission       string   `json:"transmission" validate:"required"`
	Features           []string `json:"features"`
	Doors              int      `json:"doors" validate:"gt=0"`
	Description        string   `json:"description"`
	PricePerDay        float64  `json:"price_per_day" validate:"gt=0"`
	AvailabilityStatus bool     `json:"availability_status"`
	Condition          string   `json:"condition" validate:"required"`
}

// CarOption is the trimmed shape used by dropdowns on booking forms.
type CarOption struct {
	CarID       string  `json:"car_id" validate:"required,uuid"`
	LicenseNo   string  `json:"license_no" validate:"required"`
	Make        string  `json:"make" validate:"required"`
	Model       string  `json:"model" validate:"required"`
	PricePerDay float64 `json:"price_per_day"`
}

func toResponse(c *Car) CarResponse {
	return CarResponse{
		CarID:              c.CarID,
		LicenseNo:          c.LicenseNo,
		Make:               c.Make,
		Model:              c.Model,
		Image:              c.Image,
		Seats:              c.Seats,
		Fuel:               c.Fuel,
		Transmission:       c.Transmission,
		Features:           c.Features,
		Doors:              c.Doors,
		Description:        c.Description,
		PricePerDay:        c.PricePerDay,
		AvailabilityStatus: c.AvailabilityStatus,
		Condition:          c.Condition,
	}
}

func toOption(c *Car) CarOption {
	return CarOption{
		CarID:       c.CarID,
		LicenseNo:   c.LicenseNo,
		Make:        c.Make,
		Model:       c.Model,
		PricePerDay: c.PricePerDay,
	}
}
