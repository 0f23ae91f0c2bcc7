package entity

// OrderStatus is the lifecycle state of an order (and, independently, of a
// single order line).
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var validNextStatus = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending:   {OrderStatusPaid: true, OrderStatusCancelled: true},
	OrderStatusPaid:      {OrderStatusShipped: true, OrderStatusCancelled: true},
	OrderStatusShipped:   {OrderStatusCompleted: true},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	_, ok := validNextStatus[s]
	return ok
}

// CanTransition reports whether an order may move from s to next.
// Completed and cancelled are terminal.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	return validNextStatus[s][next]
}
