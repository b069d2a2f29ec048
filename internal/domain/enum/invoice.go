package enum

// InvoiceType distinguishes resort invoices from kitchen invoices.
type InvoiceType string

const (
	InvoiceTypeResort  InvoiceType = "resort"
	InvoiceTypeKitchen InvoiceType = "kitchen"
)

// Valid reports whether t is one of the declared invoice types.
func (t InvoiceType) Valid() bool {
	return t == InvoiceTypeResort || t == InvoiceTypeKitchen
}

// NumberPrefix returns the document-number prefix for invoices of this type.
func (t InvoiceType) NumberPrefix() string {
	if t == InvoiceTypeKitchen {
		return "KT"
	}
	return "RS"
}

// PaymentStatus represents the payment state of an invoice.
//
// Like OrderStatus, mutation is unconditional: any declared value is
// accepted from any prior one.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// Valid reports whether s is one of the declared payment statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusCancelled:
		return true
	}
	return false
}

// PaymentMethod represents how an invoice was (or will be) settled.
type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "cash"
	PaymentMethodCard  PaymentMethod = "card"
	PaymentMethodUPI   PaymentMethod = "upi"
	PaymentMethodOther PaymentMethod = "other"
)

// Valid reports whether m is one of the declared payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI, PaymentMethodOther:
		return true
	}
	return false
}
