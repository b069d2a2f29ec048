package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stayops/resortbill-api/internal/application/service"
	"github.com/stayops/resortbill-api/internal/domain/enum"
	"github.com/stayops/resortbill-api/internal/presentation/http/dto/request"
	"github.com/stayops/resortbill-api/internal/presentation/http/dto/response"
	"github.com/stayops/resortbill-api/pkg/email"
)

// InvoiceHandler handles invoice HTTP requests
type InvoiceHandler struct {
	invoiceService  *service.InvoiceService
	settingsService *service.SettingsService
	emailService    *email.EmailService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(
	invoiceService *service.InvoiceService,
	settingsService *service.SettingsService,
	emailService *email.EmailService,
) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService:  invoiceService,
		settingsService: settingsService,
		emailService:    emailService,
	}
}

func invoiceLinesFromRequest(reqs []request.InvoiceLineRequest) ([]service.InvoiceLineInput, error) {
	lines := make([]service.InvoiceLineInput, 0, len(reqs))
	for _, r := range reqs {
		menuItemID, err := uuidPtr(r.MenuItemID)
		if err != nil {
			return nil, err
		}
		serviceID, err := uuidPtr(r.ServiceID)
		if err != nil {
			return nil, err
		}
		rate, err := amountPtr(r.Rate)
		if err != nil {
			return nil, err
		}
		tax, err := amountPtr(r.TaxPercentage)
		if err != nil {
			return nil, err
		}
		bookingDate, err := datePtr(r.BookingDate)
		if err != nil {
			return nil, err
		}
		lines = append(lines, service.InvoiceLineInput{
			MenuItemID:    menuItemID,
			ServiceID:     serviceID,
			ItemName:      r.ItemName,
			Quantity:      r.Quantity,
			Rate:          rate,
			TaxPercentage: tax,
			BookingDate:   bookingDate,
		})
	}
	return lines, nil
}

// Create handles creating an invoice
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	guestID, err := uuidPtr(req.GuestID)
	if err != nil {
		response.Error(c, err)
		return
	}
	invoiceDate, err := datePtr(req.InvoiceDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	bookingDate, err := datePtr(req.BookingDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := invoiceLinesFromRequest(req.Items)
	if err != nil {
		response.Error(c, err)
		return
	}

	input := &service.CreateInvoiceInput{
		Type:          enum.InvoiceType(req.Type),
		GuestID:       guestID,
		GuestName:     req.GuestName,
		Mobile:        req.Mobile,
		RoomNumber:    req.RoomNumber,
		PaymentStatus: enum.PaymentStatus(req.PaymentStatus),
		PaymentMethod: enum.PaymentMethod(req.PaymentMethod),
		Notes:         req.Notes,
		BookingDate:   bookingDate,
		CreatedByID:   GetUserID(c),
		Items:         items,
	}
	if invoiceDate != nil {
		input.InvoiceDate = *invoiceDate
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

// ConvertOrder handles converting a kitchen order into a kitchen invoice
func (h *InvoiceHandler) ConvertOrder(c *gin.Context) {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.ConvertOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoice, err := h.invoiceService.ConvertOrder(c.Request.Context(), &service.ConvertOrderInput{
		OrderID:       orderID,
		PaymentStatus: enum.PaymentStatus(req.PaymentStatus),
		PaymentMethod: enum.PaymentMethod(req.PaymentMethod),
		CreatedByID:   GetUserID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order converted successfully", invoice)
}

// List handles listing invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	startDate, err := dateQuery(c, "start_date")
	if err != nil {
		response.Error(c, err)
		return
	}
	endDate, err := dateQuery(c, "end_date")
	if err != nil {
		response.Error(c, err)
		return
	}

	input := &service.ListInvoicesInput{
		Pagination: paginationFromQuery(c),
		GuestName:  c.Query("guest_name"),
		StartDate:  startDate,
		EndDate:    endDate,
	}
	if t := c.Query("type"); t != "" {
		invoiceType := enum.InvoiceType(t)
		input.Type = &invoiceType
	}
	if s := c.Query("payment_status"); s != "" {
		status := enum.PaymentStatus(s)
		input.PaymentStatus = &status
	}

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// Get handles retrieving a single invoice
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// UpdatePayment handles updating an invoice's payment status and method
func (h *InvoiceHandler) UpdatePayment(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoice, err := h.invoiceService.UpdatePayment(c.Request.Context(), id,
		enum.PaymentStatus(req.PaymentStatus), enum.PaymentMethod(req.PaymentMethod))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment updated successfully", invoice)
}

// Delete handles deleting an invoice
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Email sends an invoice summary to the given address
func (h *InvoiceHandler) Email(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.EmailInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	resortName := "Resort"
	if settings, err := h.settingsService.GetSettings(c.Request.Context()); err == nil {
		resortName = settings.ResortName
	}

	err = h.emailService.SendInvoiceEmail(req.Email, email.InvoiceEmailData{
		ResortName:    resortName,
		InvoiceNumber: invoice.InvoiceNumber,
		InvoiceDate:   invoice.InvoiceDate,
		GuestName:     invoice.GuestName,
		TotalAmount:   invoice.TotalAmount.StringFixed(2),
		PaymentStatus: string(invoice.PaymentStatus),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice emailed successfully", gin.H{"sent_at": time.Now()})
}
