package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stayops/resortbill-api/internal/application/service"
	"github.com/stayops/resortbill-api/internal/presentation/http/dto/request"
	"github.com/stayops/resortbill-api/internal/presentation/http/dto/response"
)

// CatalogHandler handles menu item and service catalog HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func menuItemInputFromRequest(req *request.MenuItemRequest) (*service.MenuItemInput, error) {
	rate, err := amount(req.Rate)
	if err != nil {
		return nil, err
	}
	gst, err := amount(req.GSTPercent)
	if err != nil {
		return nil, err
	}
	return &service.MenuItemInput{
		Name:        req.Name,
		Category:    req.Category,
		Rate:        rate,
		GSTPercent:  gst,
		IsAvailable: req.IsAvailable,
	}, nil
}

// CreateMenuItem handles creating a menu item
func (h *CatalogHandler) CreateMenuItem(c *gin.Context) {
	var req request.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, err := menuItemInputFromRequest(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := h.catalogService.CreateMenuItem(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Menu item created successfully", item)
}

// ListMenuItems handles listing menu items
func (h *CatalogHandler) ListMenuItems(c *gin.Context) {
	result, err := h.catalogService.ListMenuItems(c.Request.Context(), paginationFromQuery(c), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Menu items retrieved successfully", result)
}

// GetMenuItem handles retrieving a single menu item
func (h *CatalogHandler) GetMenuItem(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := h.catalogService.GetMenuItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item retrieved successfully", item)
}

// UpdateMenuItem handles updating a menu item
func (h *CatalogHandler) UpdateMenuItem(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, err := menuItemInputFromRequest(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := h.catalogService.UpdateMenuItem(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item updated successfully", item)
}

// DeleteMenuItem handles deleting a menu item
func (h *CatalogHandler) DeleteMenuItem(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.catalogService.DeleteMenuItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

func serviceInputFromRequest(req *request.ServiceRequest) (*service.ServiceInput, error) {
	rate, err := amount(req.Rate)
	if err != nil {
		return nil, err
	}
	gst, err := amount(req.GSTPercent)
	if err != nil {
		return nil, err
	}
	return &service.ServiceInput{
		Name:       req.Name,
		Rate:       rate,
		GSTPercent: gst,
	}, nil
}

// CreateService handles creating a resort service
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req request.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, err := serviceInputFromRequest(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	svc, err := h.catalogService.CreateService(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Service created successfully", svc)
}

// ListServices handles listing resort services
func (h *CatalogHandler) ListServices(c *gin.Context) {
	result, err := h.catalogService.ListServices(c.Request.Context(), paginationFromQuery(c), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Services retrieved successfully", result)
}

// GetService handles retrieving a single resort service
func (h *CatalogHandler) GetService(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	svc, err := h.catalogService.GetService(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service retrieved successfully", svc)
}

// UpdateService handles updating a resort service
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, err := serviceInputFromRequest(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	svc, err := h.catalogService.UpdateService(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service updated successfully", svc)
}

// DeleteService handles deleting a resort service
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.catalogService.DeleteService(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
