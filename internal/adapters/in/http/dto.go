package http

import "time"

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the payload for registering a new order. Numeric
// fields arrive as text from the storefront form; malformed values coerce
// to zero.
type CreateOrderRequest struct {
	CustomerName    string `json:"customer_name"`
	Phone           string `json:"phone"`
	RegionCode      string `json:"region_code"`
	City            string `json:"city"`
	ProductID       string `json:"product_id"`
	ProductName     string `json:"product_name"`
	ProductPrice    string `json:"product_price"`
	ProductImageURL string `json:"product_image_url"`
	Quantity        string `json:"quantity"`
	HomeDelivery    bool   `json:"home_delivery"`
	OfferName       string `json:"offer_name"`
}

// EditOrderRequest is the payload for a full order edit. Numeric fields
// follow the same text-with-coercion convention as CreateOrderRequest.
type EditOrderRequest struct {
	CustomerName    string `json:"customer_name"`
	Phone           string `json:"phone"`
	RegionCode      string `json:"region_code"`
	City            string `json:"city"`
	ProductID       string `json:"product_id"`
	ProductName     string `json:"product_name"`
	ProductPrice    string `json:"product_price"`
	ProductImageURL string `json:"product_image_url"`
	UnitPrice       string `json:"unit_price"`
	Quantity        string `json:"quantity"`
	HomeDelivery    bool   `json:"home_delivery"`
	OfferName       string `json:"offer_name"`
}

// ChangeStatusRequest carries the target status and an optional note edit.
type ChangeStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// UpdateNoteRequest replaces the order's note.
type UpdateNoteRequest struct {
	Note string `json:"note"`
}

// BindCarrierRequest carries the carrier credentials to validate and attach.
type BindCarrierRequest struct {
	CarrierName string `json:"carrier_name"`
	Key         string `json:"key"`
	Token       string `json:"token"`
	LogoURL     string `json:"logo_url"`
}

// OrderResponse is one order as the dashboard displays it.
type OrderResponse struct {
	ID              string    `json:"id"`
	CustomerName    string    `json:"customer_name"`
	Phone           string    `json:"phone"`
	RegionCode      string    `json:"region_code"`
	RegionName      string    `json:"region_name"`
	City            string    `json:"city"`
	ProductID       string    `json:"product_id"`
	ProductName     string    `json:"product_name"`
	ProductImageURL string    `json:"product_image_url"`
	UnitPrice       float64   `json:"unit_price"`
	Quantity        int       `json:"quantity"`
	DeliveryFee     float64   `json:"delivery_fee"`
	Total           float64   `json:"total"`
	HomeDelivery    bool      `json:"home_delivery"`
	Status          string    `json:"status"`
	Note            string    `json:"note"`
	OfferName       string    `json:"offer_name"`
	ContactRevealed bool      `json:"contact_revealed"`
	CreatedAt       time.Time `json:"created_at"`
}

// ProductOptionResponse is one product dropdown entry.
type ProductOptionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RegionOptionResponse is one region dropdown entry.
type RegionOptionResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// OrderListResponse is the order list with its dropdown collections.
type OrderListResponse struct {
	Orders   []OrderResponse         `json:"orders"`
	Products []ProductOptionResponse `json:"products"`
	Regions  []RegionOptionResponse  `json:"regions"`
}

// CarrierResponse describes the carrier bound to a store.
type CarrierResponse struct {
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
}

// StoreResponse is the store profile.
type StoreResponse struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Paid    bool             `json:"paid"`
	Carrier *CarrierResponse `json:"carrier,omitempty"`
}

// RegionResponse is one delivery region with both fee amounts.
type RegionResponse struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	ArabicName string  `json:"arabic_name"`
	HomeFee    float64 `json:"home_fee"`
	PickupFee  float64 `json:"pickup_fee"`
}
