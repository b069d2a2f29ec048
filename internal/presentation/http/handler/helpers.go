package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stayops/resortbill-api/pkg/apperror"
	"github.com/stayops/resortbill-api/pkg/pagination"
	"github.com/stayops/resortbill-api/pkg/pricing"
)

const dateLayout = "2006-01-02"

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) string {
	role, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	return role.(string)
}

// paginationFromQuery reads page-based pagination parameters
func paginationFromQuery(c *gin.Context) *pagination.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	return &pagination.PaginationParams{Page: page, PerPage: perPage}
}

// uuidParam parses a UUID path parameter
func uuidParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperror.NewBadRequestError("Invalid " + name)
	}
	return id, nil
}

// uuidPtr parses an optional UUID string from a request body
func uuidPtr(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid identifier: " + *s)
	}
	return &id, nil
}

// amountPtr parses an optional decimal amount string from a request body
func amountPtr(s *string) (*decimal.Decimal, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := pricing.ParseAmount(*s)
	if err != nil {
		return nil, apperror.NewValidationError(err.Error())
	}
	return &d, nil
}

// amount parses a required decimal amount string from a request body
func amount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := pricing.ParseAmount(s)
	if err != nil {
		return decimal.Zero, apperror.NewValidationError(err.Error())
	}
	return d, nil
}

// datePtr parses an optional YYYY-MM-DD string from a request body
func datePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, apperror.NewValidationError("Invalid date, expected YYYY-MM-DD: " + *s)
	}
	return &t, nil
}

// dateQuery parses an optional YYYY-MM-DD query parameter
func dateQuery(c *gin.Context, name string) (*time.Time, error) {
	s := c.Query(name)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, apperror.NewValidationError("Invalid " + name + ", expected YYYY-MM-DD")
	}
	return &t, nil
}

// requiredDateQuery parses a required YYYY-MM-DD query parameter
func requiredDateQuery(c *gin.Context, name string) (time.Time, error) {
	t, err := dateQuery(c, name)
	if err != nil {
		return time.Time{}, err
	}
	if t == nil {
		return time.Time{}, apperror.NewValidationError("Query parameter " + name + " is required")
	}
	return *t, nil
}
