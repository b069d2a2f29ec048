package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stayops/resortbill-api/internal/application/service"
	"github.com/stayops/resortbill-api/internal/presentation/http/dto/request"
	"github.com/stayops/resortbill-api/internal/presentation/http/dto/response"
)

// GuestHandler handles guest HTTP requests
type GuestHandler struct {
	guestService *service.GuestService
}

// NewGuestHandler creates a new guest handler
func NewGuestHandler(guestService *service.GuestService) *GuestHandler {
	return &GuestHandler{guestService: guestService}
}

// Create handles creating a guest
func (h *GuestHandler) Create(c *gin.Context) {
	var req request.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	guest, err := h.guestService.CreateGuest(c.Request.Context(), &service.GuestInput{
		Name:       req.Name,
		Mobile:     req.Mobile,
		RoomNumber: req.RoomNumber,
		IDProof:    req.IDProof,
		Notes:      req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Guest created successfully", guest)
}

// List handles listing guests
func (h *GuestHandler) List(c *gin.Context) {
	result, err := h.guestService.ListGuests(c.Request.Context(), paginationFromQuery(c), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Guests retrieved successfully", result)
}

// Get handles retrieving a single guest
func (h *GuestHandler) Get(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	guest, err := h.guestService.GetGuest(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guest retrieved successfully", guest)
}

// Update handles updating a guest
func (h *GuestHandler) Update(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	guest, err := h.guestService.UpdateGuest(c.Request.Context(), id, &service.GuestInput{
		Name:       req.Name,
		Mobile:     req.Mobile,
		RoomNumber: req.RoomNumber,
		IDProof:    req.IDProof,
		Notes:      req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guest updated successfully", guest)
}

// Delete handles deleting a guest
func (h *GuestHandler) Delete(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.guestService.DeleteGuest(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
