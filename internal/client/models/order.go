package models

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderAccepted  OrderStatus = "accepted"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderItem is one line of a placed order. The price is frozen at order
// time, independent of later product price changes.
type OrderItem struct {
	ID               int64   `json:"id"`
	Product          Product `json:"product"`
	Quantity         int     `json:"quantity"`
	PriceAtOrderTime float64 `json:"price_at_order_time"`
	Total            float64 `json:"total"`
}

// Order is a placed order. Checkout splits the cart per seller, so a single
// checkout may produce several orders.
type Order struct {
	ID              int64       `json:"id"`
	Buyer           int64       `json:"buyer"`
	BuyerName       string      `json:"buyer_name"`
	Seller          int64       `json:"seller"`
	SellerName      string      `json:"seller_name"`
	TotalAmount     float64     `json:"total_amount"`
	Status          OrderStatus `json:"status"`
	OrderDate       time.Time   `json:"order_date"`
	DeliveryETA     *time.Time  `json:"delivery_eta"`
	DeliveryAddress string      `json:"delivery_address"`
	Items           []OrderItem `json:"items"`
}
