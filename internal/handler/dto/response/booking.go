package response

import "barberbook/internal/usecase/queries"

type BookingResponse struct {
	Booking *queries.BookingView `json:"booking"`
}

type BookingListResponse struct {
	Bookings []*queries.BookingView `json:"bookings"`
}

type CheckoutResponse struct {
	InvoiceID     string               `json:"invoice_id"`
	GrossMinor    int64                `json:"gross_minor"`
	DiscountMinor int64                `json:"discount_minor"`
	FinalMinor    int64                `json:"final_minor"`
	Booking       *queries.BookingView `json:"booking"`
}

type DiscountPolicyResponse struct {
	Policy string `json:"policy"`
	Locked bool   `json:"locked"`
}
