package employee

type CreateEmployeeRequest struct {
	Name      string   `json:"name" binding:"required"`
	PinCode   string   `json:"pin_code" binding:"required"`
	HourlyPay *float64 `json:"hourly_pay"`
}

// UpdateEmployeeRequest replaces the editable fields wholesale, PUT style:
// an omitted or null hourly_pay clears the stored rate. Clients that want
// to keep it must send the current value back.
type UpdateEmployeeRequest struct {
	Name      string   `json:"name" binding:"required"`
	HourlyPay *float64 `json:"hourly_pay"`
}

type UpdatePINRequest struct {
	PinCode string `json:"pin_code" binding:"required"`
}

type EmployeeResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Role      string   `json:"role"`
	PinCode   string   `json:"pin_code"`
	IsActive  bool     `json:"is_active"`
	HourlyPay *float64 `json:"hourly_pay,omitempty"`
	// OnShift marks an open entry for the admin console's live view.
	OnShift bool `json:"on_shift"`
}
