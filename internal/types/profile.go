package types

// EnrichedLineItem merges a line item's quantity with live product data.
// Name and price fall back to placeholders when the product is unresolvable.
type EnrichedLineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// EnrichedOrder is an order with its line items resolved against the
// product service. Derived per request, never persisted by this path.
type EnrichedOrder struct {
	OrderID     string             `json:"orderId"`
	OrderDate   string             `json:"orderDate"`
	TotalAmount float64            `json:"totalAmount"`
	Products    []EnrichedLineItem `json:"products"`
}

// Profile is the denormalized customer view: user fields plus enriched order
// history. The composite store persists records of this same shape, written
// by the external materialization pipeline.
type Profile struct {
	UserID string          `json:"userId"`
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Orders []EnrichedOrder `json:"orders"`
}
