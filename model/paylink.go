package model

type PaymentLinkLineItem struct {
	Description string `json:"description" validate:"required,max=200"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
}

type CreatePaymentLinkRequest struct {
	PractitionerId int64                 `json:"practitioner_id" validate:"required"`
	CustomerEmail  string                `json:"customer_email" validate:"required,email"`
	LineItems      []PaymentLinkLineItem `json:"line_items" validate:"required,min=1,dive"`
	ExpiresInHours int                   `json:"expires_in_hours" validate:"min=0"`
}

type CreatePaymentLinkResponse struct {
	Id          int64  `json:"id"`
	ShareCode   string `json:"share_code"`
	TotalAmount int64  `json:"total_amount"`
}

type PayPaymentLinkRequest struct {
	PaymentToken string `json:"payment_token" validate:"required"`
}

type ExpirePaymentLinksResponse struct {
	Expired int `json:"expired"`
}

type PaymentLinkViewResponse struct {
	Status      string                `json:"status"`
	LineItems   []PaymentLinkLineItem `json:"line_items"`
	TotalAmount int64                 `json:"total_amount"`
	ExpiresAt   string                `json:"expires_at,omitempty"`
}
