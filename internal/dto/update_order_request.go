package dto

// UpdateOrderRequest carries exactly one mutation kind per call: a
// status change (with optional notes), a payment status change, or an
// archived toggle.
type UpdateOrderRequest struct {
	Status        *string `json:"status,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	PaymentStatus *string `json:"paymentStatus,omitempty"`
	Archived      *bool   `json:"archived,omitempty"`
}

// MutationKinds counts how many mutation kinds the request carries.
// Notes ride along with a status change and are not a kind on their own.
func (r UpdateOrderRequest) MutationKinds() int {
	kinds := 0
	if r.Status != nil {
		kinds++
	}
	if r.PaymentStatus != nil {
		kinds++
	}
	if r.Archived != nil {
		kinds++
	}
	return kinds
}
