package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentBankTransfer   PaymentMethod = "bank_transfer"
	PaymentCard           PaymentMethod = "card"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCashOnDelivery, PaymentBankTransfer, PaymentCard:
		return true
	}
	return false
}

type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
	ShippingPickup   ShippingMethod = "pickup"
)

func (m ShippingMethod) Valid() bool {
	switch m {
	case ShippingStandard, ShippingExpress, ShippingPickup:
		return true
	}
	return false
}

type CustomerInfo struct {
	Name       string `bson:"name" json:"name"`
	Email      string `bson:"email" json:"email"`
	Phone      string `bson:"phone" json:"phone"`
	Address    string `bson:"address" json:"address"`
	City       string `bson:"city" json:"city"`
	PostalCode string `bson:"postalCode" json:"postalCode"`
	Notes      string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// OrderItem is a point-in-time copy of the product at checkout. Later
// catalog edits must not alter historical orders.
type OrderItem struct {
	ID               string  `bson:"id" json:"id"`
	ProductID        string  `bson:"productId" json:"productId"`
	ProductName      string  `bson:"productName" json:"productName"`
	ProductReference string  `bson:"productReference" json:"productReference"`
	ProductImage     string  `bson:"productImage,omitempty" json:"productImage,omitempty"`
	Quantity         int     `bson:"quantity" json:"quantity"`
	Price            float64 `bson:"price" json:"price"`
	Subtotal         float64 `bson:"subtotal" json:"subtotal"`
}

// Order is created once at checkout with frozen customer info, items and
// totals. Only status, payment status, notes and the archived flag are
// mutated afterwards; orders are never deleted.
type Order struct {
	ID                string         `bson:"id" json:"id"`
	OrderNumber       string         `bson:"orderNumber" json:"orderNumber"`
	CustomerID        string         `bson:"customerId,omitempty" json:"customerId,omitempty"`
	CustomerInfo      CustomerInfo   `bson:"customerInfo" json:"customerInfo"`
	Items             []OrderItem    `bson:"items" json:"items"`
	Subtotal          float64        `bson:"subtotal" json:"subtotal"`
	Tax               float64        `bson:"tax" json:"tax"`
	Total             float64        `bson:"total" json:"total"`
	Status            OrderStatus    `bson:"status" json:"status"`
	PaymentStatus     PaymentStatus  `bson:"paymentStatus" json:"paymentStatus"`
	PaymentMethod     PaymentMethod  `bson:"paymentMethod" json:"paymentMethod"`
	ShippingMethod    ShippingMethod `bson:"shippingMethod" json:"shippingMethod"`
	EstimatedDelivery *time.Time     `bson:"estimatedDelivery,omitempty" json:"estimatedDelivery,omitempty"`
	ActualDelivery    *time.Time     `bson:"actualDelivery,omitempty" json:"actualDelivery,omitempty"`
	Notes             string         `bson:"notes,omitempty" json:"notes,omitempty"`
	// Records written before the flag existed have no archived field;
	// decoding leaves it false, which is the expected default.
	Archived  bool      `bson:"archived" json:"archived"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

type OrderStats struct {
	TotalOrders       int64   `json:"totalOrders"`
	PendingOrders     int64   `json:"pendingOrders"`
	ConfirmedOrders   int64   `json:"confirmedOrders"`
	ProcessingOrders  int64   `json:"processingOrders"`
	ShippedOrders     int64   `json:"shippedOrders"`
	DeliveredOrders   int64   `json:"deliveredOrders"`
	CancelledOrders   int64   `json:"cancelledOrders"`
	TotalRevenue      float64 `json:"totalRevenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}
