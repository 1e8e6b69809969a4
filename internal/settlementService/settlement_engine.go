package settlement

import (
	"context"
	"fmt"
	"time"

	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/clock"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/models"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/repository"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/utils"
)

// SettlementEngine is the only autonomous actor in the system: it sweeps the
// active store on a fixed interval, converts expired listings with bids into
// sold records, and notifies the parties.
type SettlementEngine struct {
	repo     repository.MarketplaceDB
	clk      clock.Clock
	rate     float64
	interval time.Duration
}

// NewSettlementEngine creates a new SettlementEngine instance
func NewSettlementEngine(repo repository.MarketplaceDB, clk clock.Clock, commissionRate float64, interval time.Duration) *SettlementEngine {
	return &SettlementEngine{
		repo:     repo,
		clk:      clk,
		rate:     commissionRate,
		interval: interval,
	}
}

// Run sweeps on the configured interval until the context is cancelled.
func (e *SettlementEngine) Run(ctx context.Context) {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sold, unsold, err := e.SettleExpired()
			if err != nil {
				utils.Error("settlement sweep failed", map[string]any{"error": err.Error()})
				continue
			}
			if sold > 0 || unsold > 0 {
				utils.Info("settlement sweep completed", map[string]any{
					"sold":   sold,
					"unsold": unsold,
				})
			}
		}
	}
}

// SettleExpired performs one sweep. Expired listings with a bidder become
// sold records (commission computed from the final bid); ones without a
// bidder are discarded. Either way the listing leaves the active store, and
// the whole tick is persisted as one atomic write. A tick that finds nothing
// expired is a no-op.
func (e *SettlementEngine) SettleExpired() (sold, unsold int, err error) {
	now := e.clk.Now()

	var expiredIDs []string
	var soldItems []models.SoldItem
	var notes []models.Notification

	for _, item := range e.repo.ListItems() {
		if !item.Ended(now) {
			continue
		}
		expiredIDs = append(expiredIDs, item.ItemID)

		if item.HighestBidder != "" {
			snapshot := models.SoldItem{
				Item:       item,
				Commission: float64(item.CurrentBid) * e.rate,
			}
			soldItems = append(soldItems, snapshot)
			// Winner first, then seller; both always fire.
			notes = append(notes,
				e.note(item.HighestBidder, fmt.Sprintf("You won the auction for %s!", item.Name), models.NotificationSuccess, now),
				e.note(item.Seller, fmt.Sprintf("Your item %s sold for %s.", item.Name, utils.FormatCurrency(item.CurrentBid)), models.NotificationSuccess, now),
			)
			sold++
		} else {
			notes = append(notes,
				e.note(item.Seller, fmt.Sprintf("Your item %s did not sell.", item.Name), models.NotificationWarning, now),
			)
			unsold++
		}
	}

	if len(expiredIDs) == 0 {
		return 0, 0, nil
	}
	if err := e.repo.ApplySettlement(expiredIDs, soldItems, notes); err != nil {
		return 0, 0, fmt.Errorf("engine: failed to settle %d expired listings: %w", len(expiredIDs), err)
	}
	return sold, unsold, nil
}

func (e *SettlementEngine) note(email, message, notificationType string, now time.Time) models.Notification {
	return models.Notification{
		ID:        utils.GenerateID(),
		UserEmail: email,
		Message:   message,
		Type:      notificationType,
		Date:      now,
	}
}
