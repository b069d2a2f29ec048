package request

// UpdateSettingsRequest represents an update settings request
type UpdateSettingsRequest struct {
	ResortName   string  `json:"resort_name" binding:"required"`
	Address      string  `json:"address"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	GSTNumber    string  `json:"gst_number"`
	KitchenGSTNo string  `json:"kitchen_gst_number"`
	LogoPath     *string `json:"logo_path"`
}
