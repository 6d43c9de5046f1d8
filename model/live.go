package model

type CreateSessionRequest struct {
	PractitionerId    int64  `json:"practitioner_id" validate:"required"`
	Title             string `json:"title" validate:"required,max=150"`
	PriceAmount       int64  `json:"price_amount" validate:"required,min=1"`
	AllowCustomAmount bool   `json:"allow_custom_amount"`
}

type CreateSessionResponse struct {
	Id        int64  `json:"id"`
	ShareCode string `json:"share_code"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=setup live paused ended"`
}

type JoinQueueRequest struct {
	Name               string `json:"name" validate:"required,max=100"`
	Email              string `json:"email" validate:"required,email"`
	Question           string `json:"question" validate:"max=500"`
	PaymentMethodToken string `json:"payment_method_token" validate:"required"`
	CustomAmount       int64  `json:"custom_amount" validate:"min=0"`
}

type JoinQueueResponse struct {
	Id           int64 `json:"id"`
	Position     int64 `json:"position"`
	ChargeAmount int64 `json:"charge_amount"`
}

type CompleteReadingRequest struct {
	SummaryNote string `json:"summary_note" validate:"required,max=2000"`
	SummaryCta  string `json:"summary_cta" validate:"max=500"`
}

type StartReadingResponse struct {
	EntryId      int64  `json:"entry_id"`
	CustomerName string `json:"customer_name"`
	Question     string `json:"question,omitempty"`
}

type QueueEntryResponse struct {
	Id           int64  `json:"id"`
	CustomerName string `json:"customer_name"`
	Position     int64  `json:"position"`
}

type CurrentReadingResponse struct {
	CustomerName string `json:"customer_name"`
}

type SessionQueueResponse struct {
	Title   string                  `json:"title"`
	Status  string                  `json:"status"`
	Current *CurrentReadingResponse `json:"current,omitempty"`
	Waiting []QueueEntryResponse    `json:"waiting"`
}

type AdvanceQueueEventMessage struct {
	SessionID int64 `json:"session_id"`
}
