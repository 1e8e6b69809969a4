package payment

import (
	"fmt"

	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/auctionerrors"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/clock"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/models"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/repository"
)

// Notifier delivers user-facing messages for payment events
type Notifier interface {
	Notify(email, message, notificationType string) error
}

// PaymentService marks won items as paid. Payment is a one-way, one-time
// transition; there is no refund operation.
type PaymentService struct {
	repo     repository.MarketplaceDB
	notifier Notifier
	clk      clock.Clock
}

// NewPaymentService creates a new PaymentService instance
func NewPaymentService(repo repository.MarketplaceDB, notifier Notifier, clk clock.Clock) *PaymentService {
	return &PaymentService{
		repo:     repo,
		notifier: notifier,
		clk:      clk,
	}
}

// Pay records payment and shipping details for a sold item. Only the
// recorded winning bidder may pay, and only once: the paid flag flips inside
// the store's write lock, so at most one of several concurrent attempts
// succeeds and the rest fail with ErrAlreadyPaid.
func (s *PaymentService) Pay(itemID, payer, shippingAddress string) (models.SoldItem, error) {
	if itemID == "" || payer == "" {
		return models.SoldItem{}, fmt.Errorf("service: %w - missing itemID or payer", auctionerrors.ErrInvalidPayment)
	}

	sold, err := s.repo.GetSoldItem(itemID)
	if err != nil {
		return models.SoldItem{}, fmt.Errorf("service: failed to look up sold item %s: %w", itemID, err)
	}
	if sold.HighestBidder != payer {
		return models.SoldItem{}, fmt.Errorf("service: %w", auctionerrors.ErrNotWinner)
	}

	paid, err := s.repo.MarkSoldItemPaid(itemID, shippingAddress, s.clk.Now())
	if err != nil {
		return models.SoldItem{}, fmt.Errorf("service: failed to record payment for %s: %w", itemID, err)
	}

	_ = s.notifier.Notify(payer, fmt.Sprintf("Payment for %s was successful.", paid.Name), models.NotificationSuccess)
	_ = s.notifier.Notify(paid.Seller, fmt.Sprintf("Payment received for %s. Please prepare for shipping.", paid.Name), models.NotificationSuccess)
	return paid, nil
}
