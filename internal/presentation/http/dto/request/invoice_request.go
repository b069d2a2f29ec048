package request

// InvoiceLineRequest represents one line of a create invoice request
type InvoiceLineRequest struct {
	MenuItemID    *string `json:"menu_item_id"`
	ServiceID     *string `json:"service_id"`
	ItemName      string  `json:"item_name"`
	Quantity      int     `json:"quantity" binding:"required,gt=0"`
	Rate          *string `json:"rate"`
	TaxPercentage *string `json:"tax_percentage"`
	BookingDate   *string `json:"booking_date"`
}

// CreateInvoiceRequest represents a create invoice request
type CreateInvoiceRequest struct {
	Type          string               `json:"type" binding:"required"`
	InvoiceDate   *string              `json:"invoice_date"`
	GuestID       *string              `json:"guest_id"`
	GuestName     string               `json:"guest_name"`
	Mobile        string               `json:"mobile"`
	RoomNumber    string               `json:"room_number"`
	PaymentStatus string               `json:"payment_status"`
	PaymentMethod string               `json:"payment_method"`
	Notes         *string              `json:"notes"`
	BookingDate   *string              `json:"booking_date"`
	Items         []InvoiceLineRequest `json:"items" binding:"required,min=1,dive"`
}

// ConvertOrderRequest represents an order-to-invoice conversion request
type ConvertOrderRequest struct {
	PaymentStatus string `json:"payment_status"`
	PaymentMethod string `json:"payment_method"`
}

// UpdatePaymentRequest represents an invoice payment update request
type UpdatePaymentRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// EmailInvoiceRequest represents a request to email an invoice to a guest
type EmailInvoiceRequest struct {
	Email string `json:"email" binding:"required,email"`
}
