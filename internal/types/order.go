package types

// OrderLineItem references a product by id; name and price live with the
// product service and are only merged in at enrichment time.
type OrderLineItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Order is the record owned by the order service, keyed as "order:{orderId}".
// The order service also maintains a "user-orders:{userId}" index of order ids.
type Order struct {
	OrderID     string          `json:"orderId"`
	UserID      string          `json:"userId"`
	OrderDate   string          `json:"orderDate"`
	TotalAmount float64         `json:"totalAmount"`
	Products    []OrderLineItem `json:"products"`
}
