package request

type ExtraItemRequest struct {
	Label       string `json:"label" binding:"required"`
	AmountMinor int64  `json:"amount_minor" binding:"required"`
}

type CheckoutRequest struct {
	PaymentMethod   string             `json:"payment_method" binding:"required"`
	UpgradeTo       *string            `json:"upgrade_to,omitempty"`
	AddOns          []string           `json:"add_ons,omitempty"`
	ExtraItems      []ExtraItemRequest `json:"extra_items,omitempty"`
	DiscountMinor   int64              `json:"discount_minor,omitempty"`
	DiscountPercent float64            `json:"discount_percent,omitempty"`
}

// WalkInCheckoutRequest records and settles an off-schedule customer in one
// call.
type WalkInCheckoutRequest struct {
	CustomerName  string          `json:"customer_name" binding:"required"`
	CustomerPhone string          `json:"customer_phone" binding:"required"`
	Barber        string          `json:"barber" binding:"required"`
	Service       string          `json:"service" binding:"required"`
	Checkout      CheckoutRequest `json:"checkout" binding:"required"`
}
