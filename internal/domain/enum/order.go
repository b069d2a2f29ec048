package enum

// OrderStatus represents the lifecycle status of a kitchen order.
//
// No transition table is enforced: any declared value may replace any other
// via the status-update operation.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the declared statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderType distinguishes in-room orders from walk-in orders.
type OrderType string

const (
	OrderTypeRoom   OrderType = "room"
	OrderTypeWalkIn OrderType = "walk_in"
)

// Valid reports whether t is one of the declared order types.
func (t OrderType) Valid() bool {
	return t == OrderTypeRoom || t == OrderTypeWalkIn
}
