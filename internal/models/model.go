package models

import "time"

// Notification types shown to users.
const (
	NotificationSuccess = "success"
	NotificationError   = "error"
	NotificationWarning = "warning"
	NotificationInfo    = "info"
	NotificationAdmin   = "admin"
)

// User represents a marketplace account. Email is the identity key;
// cross-entity references (seller, bidder) store it by value.
type User struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password_hash"`
	Banned       bool      `json:"banned"`
	Admin        bool      `json:"admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// Bid is an accepted bid on an item. Records are append-only and never
// edited; insertion order is chronological, so the last bid is the highest.
type Bid struct {
	Bidder string    `json:"bidder"`
	Amount int64     `json:"amount"`
	Date   time.Time `json:"date"`
}

// Item represents an active auction listing.
type Item struct {
	ItemID        string    `json:"item_id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Age           string    `json:"age"`
	Condition     string    `json:"condition"`
	StartingPrice int64     `json:"starting_price"`
	CurrentBid    int64     `json:"current_bid"`
	HighestBidder string    `json:"highest_bidder"` // empty until the first accepted bid
	Seller        string    `json:"seller"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	ImageData     string    `json:"image_data"` // opaque encoded payload
	Authenticity  string    `json:"authenticity"`
	Bids          []Bid     `json:"bids"`
	Hidden        bool      `json:"hidden"`
}

// Ended reports whether the auction has expired relative to now. A listing
// whose end date is exactly now is still open.
func (i Item) Ended(now time.Time) bool {
	return i.EndDate.Before(now)
}

// SoldItem is the snapshot of an item taken at settlement, created exactly
// once per expired listing that received at least one bid.
type SoldItem struct {
	Item
	Commission      float64    `json:"commission"`
	Paid            bool       `json:"paid"`
	PaymentDate     *time.Time `json:"payment_date,omitempty"`
	ShippingAddress string     `json:"shipping_address,omitempty"`
}

// Notification is a per-user message log entry. Append-only; only the Read
// flag is ever mutated.
type Notification struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"user_email"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Date      time.Time `json:"date"`
	Read      bool      `json:"read"`
}
