package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stayops/resortbill-api/internal/application/service"
	"github.com/stayops/resortbill-api/internal/domain/enum"
	"github.com/stayops/resortbill-api/internal/presentation/http/dto/request"
	"github.com/stayops/resortbill-api/internal/presentation/http/dto/response"
)

// OrderHandler handles kitchen order HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func orderLinesFromRequest(reqs []request.OrderLineRequest) ([]service.OrderLineInput, error) {
	lines := make([]service.OrderLineInput, 0, len(reqs))
	for _, r := range reqs {
		menuItemID, err := uuidPtr(r.MenuItemID)
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
		lines = append(lines, service.OrderLineInput{
			MenuItemID:    menuItemID,
			ItemName:      r.ItemName,
			Quantity:      r.Quantity,
			Rate:          rate,
			TaxPercentage: tax,
		})
	}
	return lines, nil
}

// Create handles creating a kitchen order
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	guestID, err := uuidPtr(req.GuestID)
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := orderLinesFromRequest(req.Items)
	if err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		GuestID:     guestID,
		GuestName:   req.GuestName,
		RoomNumber:  req.RoomNumber,
		OrderType:   enum.OrderType(req.OrderType),
		CreatedByID: GetUserID(c),
		Items:       items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// List handles listing kitchen orders
func (h *OrderHandler) List(c *gin.Context) {
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

	input := &service.ListOrdersInput{
		Pagination: paginationFromQuery(c),
		GuestName:  c.Query("guest_name"),
		StartDate:  startDate,
		EndDate:    endDate,
	}
	if s := c.Query("status"); s != "" {
		status := enum.OrderStatus(s)
		input.Status = &status
	}
	if t := c.Query("order_type"); t != "" {
		orderType := enum.OrderType(t)
		input.OrderType = &orderType
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Get handles retrieving a single kitchen order
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// UpdateStatus handles updating an order's lifecycle status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), id, enum.OrderStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated successfully", order)
}
