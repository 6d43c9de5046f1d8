package model

type CreateExpoRequest struct {
	PractitionerId int64  `json:"practitioner_id" validate:"required"`
	Name           string `json:"name" validate:"required,max=150"`
}

type CreateExpoResponse struct {
	Id        int64  `json:"id"`
	ShareCode string `json:"share_code"`
}

type CreateItemRequest struct {
	Name           string `json:"name" validate:"required,max=150"`
	PriceAmount    int64  `json:"price_amount" validate:"required,min=1"`
	TrackInventory bool   `json:"track_inventory"`
	QuantityTotal  int32  `json:"quantity_total" validate:"min=0,required_if=TrackInventory true"`
}

type CreateItemResponse struct {
	Id int64 `json:"id"`
}

type ToggleItemResponse struct {
	Id        int64  `json:"id"`
	Enabled   bool   `json:"enabled"`
	Remaining *int32 `json:"remaining,omitempty"`
}

type CatalogItemResponse struct {
	Id          int64  `json:"id"`
	Name        string `json:"name"`
	PriceAmount int64  `json:"price_amount"`
	Purchasable bool   `json:"purchasable"`
	Remaining   *int32 `json:"remaining,omitempty"`
}

type ExpoCatalogResponse struct {
	Name   string                `json:"name"`
	Status string                `json:"status"`
	Items  []CatalogItemResponse `json:"items"`
}

type RecordSaleRequest struct {
	ItemId        int64  `json:"item_id" validate:"required"`
	Quantity      int32  `json:"quantity" validate:"required,min=1"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=card cash other"`
}

type RecordSaleResponse struct {
	Id        int64  `json:"id"`
	Amount    int64  `json:"amount"`
	Remaining *int32 `json:"remaining,omitempty"`
}

type CheckoutRequest struct {
	ItemId    int64  `json:"item_id" validate:"required"`
	Quantity  int32  `json:"quantity" validate:"required,min=1"`
	Name      string `json:"name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	CardToken string `json:"card_token" validate:"required"`
}

type CheckoutResponse struct {
	SaleId int64 `json:"sale_id"`
	Amount int64 `json:"amount"`
}

type ExpoStatsResponse struct {
	SalesCount int64 `json:"sales_count"`
	Revenue    int64 `json:"revenue"`
	ItemsSold  int64 `json:"items_sold"`
}

type SaleRecordedEventMessage struct {
	SaleID   int64  `json:"sale_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	ItemName string `json:"item_name"`
	Quantity int32  `json:"quantity"`
	Amount   int64  `json:"amount"`
}
