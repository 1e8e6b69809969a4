package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrItemNotFound     = errors.New("item not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrSoldItemNotFound = errors.New("sold item not found")
	ErrNoSession        = errors.New("no session identity established")
)

// Identity errors
var (
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidSignup      = errors.New("invalid signup details")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountBanned      = errors.New("account has been banned")
	ErrUnauthorized       = errors.New("admin privileges required")
)

// Bidding and listing errors
var (
	ErrInvalidBid   = errors.New("invalid bid")
	ErrBidTooLow    = errors.New("bid amount too low")
	ErrSelfBid      = errors.New("cannot bid on own item")
	ErrAuctionEnded = errors.New("auction has ended")
	ErrMissingImage = errors.New("listing image is required")
	ErrInvalidItem  = errors.New("invalid listing details")
)

// Payment errors
var (
	ErrInvalidPayment = errors.New("invalid payment details")
	ErrNotWinner      = errors.New("payer is not the winning bidder")
	ErrAlreadyPaid    = errors.New("item has already been paid for")
)
