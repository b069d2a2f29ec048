package request

// GuestRequest represents a create/update guest request
type GuestRequest struct {
	Name       string  `json:"name" binding:"required"`
	Mobile     string  `json:"mobile"`
	RoomNumber string  `json:"room_number"`
	IDProof    *string `json:"id_proof"`
	Notes      *string `json:"notes"`
}
