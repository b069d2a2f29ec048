package request

// MenuItemRequest represents a create/update menu item request
type MenuItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category"`
	Rate        string `json:"rate" binding:"required"`
	GSTPercent  string `json:"gst_percent"`
	IsAvailable *bool  `json:"is_available"`
}

// ServiceRequest represents a create/update service request
type ServiceRequest struct {
	Name       string `json:"name" binding:"required"`
	Rate       string `json:"rate" binding:"required"`
	GSTPercent string `json:"gst_percent"`
}
