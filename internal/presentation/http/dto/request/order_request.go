package request

// OrderLineRequest represents one line of a create order request. Monetary
// values travel as strings so no precision is lost in JSON numbers.
type OrderLineRequest struct {
	MenuItemID    *string `json:"menu_item_id"`
	ItemName      string  `json:"item_name"`
	Quantity      int     `json:"quantity" binding:"required,gt=0"`
	Rate          *string `json:"rate"`
	TaxPercentage *string `json:"tax_percentage"`
}

// CreateOrderRequest represents a create kitchen order request
type CreateOrderRequest struct {
	GuestID    *string            `json:"guest_id"`
	GuestName  string             `json:"guest_name"`
	RoomNumber string             `json:"room_number"`
	OrderType  string             `json:"order_type"`
	Items      []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest represents an order status update request
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
