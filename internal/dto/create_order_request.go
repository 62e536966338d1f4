package dto

type CustomerInfoDTO struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Notes      string `json:"notes,omitempty"`
}

// CartLine is one entry of the in-browser cart submitted at checkout.
// Product data is resolved and snapshotted server-side.
type CartLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerID     string          `json:"customerId,omitempty"`
	CustomerInfo   CustomerInfoDTO `json:"customerInfo"`
	Items          []CartLine      `json:"items"`
	PaymentMethod  string          `json:"paymentMethod"`
	ShippingMethod string          `json:"shippingMethod"`
}
