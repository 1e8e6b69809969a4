package helpers

// Request/Response DTOs
type SignupRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Admin     bool   `json:"admin"`
	Banned    bool   `json:"banned"`
	CreatedAt string `json:"created_at"`
}

type CreateListingRequest struct {
	Name          string `json:"name" binding:"required"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	Age           string `json:"age"`
	Condition     string `json:"condition"`
	StartingPrice int64  `json:"starting_price" binding:"required,gt=0"`
	EndDate       string `json:"end_date" binding:"required"` // RFC 3339
	ImageData     string `json:"image_data"`
	Authenticity  string `json:"authenticity"`
}

type PlaceBidRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	Bidder string `json:"bidder"`
	Amount int64  `json:"amount"`
	Date   string `json:"date"`
}

type PaymentRequest struct {
	ShippingAddress string `json:"shipping_address" binding:"required"`
}

type AcknowledgeWinsRequest struct {
	ItemIDs []string `json:"item_ids" binding:"required"`
}
