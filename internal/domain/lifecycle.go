package domain

import "fmt"

// orderTransitions is the authoritative lifecycle definition. The happy
// path moves strictly forward; cancellation is reachable from any
// non-terminal state. Delivered and cancelled accept no further advance.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// NextStatuses returns the statuses reachable from the given one.
func NextStatuses(from OrderStatus) []OrderStatus {
	nexts := orderTransitions[from]
	out := make([]OrderStatus, len(nexts))
	copy(out, nexts)
	return out
}

func IsTerminalStatus(s OrderStatus) bool {
	return len(orderTransitions[s]) == 0
}

// CanTransition reports whether an operator may move an order from one
// status to another. Setting the current status again is allowed and
// treated as an idempotent refresh.
func CanTransition(from, to OrderStatus) error {
	if !to.Valid() {
		return fmt.Errorf("unknown order status %q", to)
	}
	if from == to {
		return nil
	}
	for _, next := range orderTransitions[from] {
		if next == to {
			return nil
		}
	}
	if IsTerminalStatus(from) {
		return fmt.Errorf("order status %q is terminal", from)
	}
	return fmt.Errorf("cannot move order from %q to %q", from, to)
}

// CanArchive restricts archival to completed orders. The archived flag
// is a display-visibility concern, not a lifecycle stage.
func CanArchive(s OrderStatus) bool {
	return s == OrderStatusDelivered
}
