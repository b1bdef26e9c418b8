package request

type ExpenseRequest struct {
	Item        string `json:"item" binding:"required"`
	Note        string `json:"note,omitempty"`
	AmountMinor int64  `json:"amount_minor" binding:"required,gt=0"`
}

type ProductSaleRequest struct {
	Product     string `json:"product" binding:"required"`
	Note        string `json:"note,omitempty"`
	AmountMinor int64  `json:"amount_minor" binding:"required,gt=0"`
}

type DiscountPolicyRequest struct {
	Locked *bool `json:"locked" binding:"required"`
}
