package models

import "time"

// OrderStatusCompleted is the only order state: there is no payment capture
// step, so orders complete at creation.
const OrderStatusCompleted = "completed"

type Order struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	OrderDate     time.Time `json:"orderDate"`
	TotalAmount   float64   `json:"totalAmount"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
}

// OrderItem is one purchase line. UnitPrice snapshots the tier price at
// purchase time so later repricing never rewrites past orders.
type OrderItem struct {
	ID           int64   `json:"id"`
	OrderID      int64   `json:"orderId"`
	TicketTypeID int64   `json:"ticketTypeId"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
}

// OrderRequest is the inbound checkout submission. The authenticated user id
// is injected by the auth layer, never taken from the body.
type OrderRequest struct {
	TotalAmount   float64           `json:"totalAmount" validate:"gte=0"`
	PaymentMethod string            `json:"paymentMethod" validate:"required"`
	TicketItems   []TicketItemInput `json:"ticketItems" validate:"required,min=1,dive"`
}

type TicketItemInput struct {
	TicketTypeID int64   `json:"ticketTypeId" validate:"required,gt=0"`
	Quantity     int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice    float64 `json:"unitPrice" validate:"gte=0"`
}

// OrderDetail is an order composed with its line items.
type OrderDetail struct {
	Order
	Items []OrderItem `json:"items"`
}
