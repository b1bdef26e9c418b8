package request

type CreateBookingRequest struct {
	Date          string `json:"date" binding:"required"`
	Start         string `json:"start" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	Barber        string `json:"barber" binding:"required"`
	Service       string `json:"service" binding:"required"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}
