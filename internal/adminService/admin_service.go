package admin

import (
	"fmt"

	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/auctionerrors"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/clock"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/models"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/repository"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/utils"
)

// Notifier delivers user-facing messages for admin actions
type Notifier interface {
	Notify(email, message, notificationType string) error
}

// Stats is the aggregate dashboard view
type Stats struct {
	TotalUsers          int     `json:"total_users"`           // non-admin accounts
	ActiveAuctions      int     `json:"active_auctions"`       // listings not yet expired
	TotalRevenue        float64 `json:"total_revenue"`         // commission across all sold items, paid or not
	TotalRevenueDisplay string  `json:"total_revenue_display"` // TotalRevenue as a dollar string
}

// AdminService provides aggregate views and destructive operations. Every
// operation checks the acting identity against the well-known admin account
// at the operation boundary, not just in the caller.
type AdminService struct {
	repo       repository.MarketplaceDB
	notifier   Notifier
	clk        clock.Clock
	adminEmail string
}

// NewAdminService creates a new AdminService instance
func NewAdminService(repo repository.MarketplaceDB, notifier Notifier, clk clock.Clock, adminEmail string) *AdminService {
	return &AdminService{
		repo:       repo,
		notifier:   notifier,
		clk:        clk,
		adminEmail: adminEmail,
	}
}

// Stats returns the dashboard aggregates
func (s *AdminService) Stats(actor models.User) (Stats, error) {
	if err := s.requireAdmin(actor); err != nil {
		return Stats{}, err
	}

	stats := Stats{}
	for _, u := range s.repo.ListUsers() {
		if u.Email != s.adminEmail {
			stats.TotalUsers++
		}
	}
	now := s.clk.Now()
	for _, item := range s.repo.ListItems() {
		if !item.Ended(now) {
			stats.ActiveAuctions++
		}
	}
	for _, sold := range s.repo.ListSoldItems() {
		stats.TotalRevenue += sold.Commission
	}
	stats.TotalRevenueDisplay = utils.FormatCommission(stats.TotalRevenue)
	return stats, nil
}

// Users returns all non-admin accounts in signup order
func (s *AdminService) Users(actor models.User) ([]models.User, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}
	users := make([]models.User, 0)
	for _, u := range s.repo.ListUsers() {
		if u.Email != s.adminEmail {
			users = append(users, u)
		}
	}
	return users, nil
}

// LiveAuctions returns all unexpired listings, hidden ones included, so the
// console can manage soft-removed items.
func (s *AdminService) LiveAuctions(actor models.User) ([]models.Item, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}
	now := s.clk.Now()
	items := make([]models.Item, 0)
	for _, item := range s.repo.ListItems() {
		if !item.Ended(now) {
			items = append(items, item)
		}
	}
	return items, nil
}

// SoldItems returns every sold record in settlement order
func (s *AdminService) SoldItems(actor models.User) ([]models.SoldItem, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.repo.ListSoldItems(), nil
}

// DeleteItem removes a listing outright. No sold snapshot is created; the
// seller is told the item was removed.
func (s *AdminService) DeleteItem(actor models.User, itemID string) error {
	if err := s.requireAdmin(actor); err != nil {
		return err
	}
	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return fmt.Errorf("service: failed to delete item %s: %w", itemID, err)
	}
	if err := s.repo.DeleteItem(itemID); err != nil {
		return fmt.Errorf("service: failed to delete item %s: %w", itemID, err)
	}
	_ = s.notifier.Notify(item.Seller, fmt.Sprintf("Your item %q was removed by an administrator.", item.Name), models.NotificationWarning)
	return nil
}

// HideItem soft-removes a listing from all public views without deleting it
func (s *AdminService) HideItem(actor models.User, itemID string) error {
	return s.setHidden(actor, itemID, true)
}

// UnhideItem makes a soft-removed listing visible again
func (s *AdminService) UnhideItem(actor models.User, itemID string) error {
	return s.setHidden(actor, itemID, false)
}

func (s *AdminService) setHidden(actor models.User, itemID string, hidden bool) error {
	if err := s.requireAdmin(actor); err != nil {
		return err
	}
	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return fmt.Errorf("service: failed to update visibility of item %s: %w", itemID, err)
	}
	if item.Hidden == hidden {
		return nil
	}
	item.Hidden = hidden
	if err := s.repo.UpdateItem(item); err != nil {
		return fmt.Errorf("service: failed to update visibility of item %s: %w", itemID, err)
	}
	return nil
}

func (s *AdminService) requireAdmin(actor models.User) error {
	if actor.Email != s.adminEmail {
		return fmt.Errorf("service: %w", auctionerrors.ErrUnauthorized)
	}
	return nil
}
