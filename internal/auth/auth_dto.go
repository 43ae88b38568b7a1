package auth

type LoginRequest struct {
	PinCode string `json:"pin_code" binding:"required,numeric,min=4,max=8"`
}

type LoginResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}
