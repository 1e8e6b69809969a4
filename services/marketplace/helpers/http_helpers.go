package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/auctionerrors"
	model "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/models"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, auctionerrors.ErrSoldItemNotFound):
		return http.StatusNotFound, "sold item not found"
	case errors.Is(err, auctionerrors.ErrNoSession):
		return http.StatusUnauthorized, "not signed in"
	case errors.Is(err, auctionerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, auctionerrors.ErrAccountBanned):
		return http.StatusForbidden, "account banned"
	case errors.Is(err, auctionerrors.ErrUnauthorized):
		return http.StatusForbidden, "admin privileges required"
	case errors.Is(err, auctionerrors.ErrDuplicateEmail):
		return http.StatusConflict, "email already in use"
	case errors.Is(err, auctionerrors.ErrWeakPassword):
		return http.StatusBadRequest, "password too short"
	case errors.Is(err, auctionerrors.ErrInvalidSignup):
		return http.StatusBadRequest, "invalid signup details"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrSelfBid):
		return http.StatusForbidden, "cannot bid on own item"
	case errors.Is(err, auctionerrors.ErrAuctionEnded):
		return http.StatusConflict, "auction has ended"
	case errors.Is(err, auctionerrors.ErrMissingImage):
		return http.StatusBadRequest, "listing image is required"
	case errors.Is(err, auctionerrors.ErrInvalidItem):
		return http.StatusBadRequest, "invalid listing details"
	case errors.Is(err, auctionerrors.ErrInvalidPayment):
		return http.StatusBadRequest, "invalid payment details"
	case errors.Is(err, auctionerrors.ErrNotWinner):
		return http.StatusForbidden, "only the winning bidder can pay"
	case errors.Is(err, auctionerrors.ErrAlreadyPaid):
		return http.StatusConflict, "item has already been paid for"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// NewUserResponse maps a user record to its API shape
func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		Email:     u.Email,
		Name:      u.Name,
		Admin:     u.Admin,
		Banned:    u.Banned,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewBidResponse maps a bid record to its API shape
func NewBidResponse(b model.Bid) BidResponse {
	return BidResponse{
		Bidder: b.Bidder,
		Amount: b.Amount,
		Date:   b.Date.UTC().Format(time.RFC3339),
	}
}
