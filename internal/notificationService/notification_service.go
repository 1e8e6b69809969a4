package notification

import (
	"fmt"
	"sort"

	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/clock"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/models"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/repository"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/utils"
)

// NotificationService owns the per-user message log
type NotificationService struct {
	repo repository.MarketplaceDB
	clk  clock.Clock
}

// NewNotificationService creates a new NotificationService instance
func NewNotificationService(repo repository.MarketplaceDB, clk clock.Clock) *NotificationService {
	return &NotificationService{
		repo: repo,
		clk:  clk,
	}
}

// Notify appends a message to the user's log
func (s *NotificationService) Notify(email, message, notificationType string) error {
	n := models.Notification{
		ID:        utils.GenerateID(),
		UserEmail: email,
		Message:   message,
		Type:      notificationType,
		Date:      s.clk.Now(),
	}
	if err := s.repo.AppendNotification(n); err != nil {
		return fmt.Errorf("service: failed to notify %s: %w", email, err)
	}
	return nil
}

// ForUser returns the user's notifications, newest first
func (s *NotificationService) ForUser(email string) []models.Notification {
	notes := s.repo.NotificationsByUser(email)
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Date.After(notes[j].Date)
	})
	return notes
}

// MarkAllRead flips the read flag on every notification for the user
func (s *NotificationService) MarkAllRead(email string) error {
	if err := s.repo.MarkAllRead(email); err != nil {
		return fmt.Errorf("service: failed to mark notifications read for %s: %w", email, err)
	}
	return nil
}

// UnreadCount returns how many unread notifications the user has
func (s *NotificationService) UnreadCount(email string) int {
	return s.repo.CountUnread(email)
}

// UnseenWins returns won, unpaid sold items the user has not yet been shown
func (s *NotificationService) UnseenWins(email string) []models.SoldItem {
	viewed := make(map[string]bool)
	for _, id := range s.repo.ViewedWonItems(email) {
		viewed[id] = true
	}

	var wins []models.SoldItem
	for _, sold := range s.repo.ListSoldItems() {
		if sold.HighestBidder == email && !sold.Paid && !viewed[sold.ItemID] {
			wins = append(wins, sold)
		}
	}
	return wins
}

// AcknowledgeWins records the item ids so they are not reported as new again
func (s *NotificationService) AcknowledgeWins(email string, itemIDs []string) error {
	if err := s.repo.AddViewedWonItems(email, itemIDs); err != nil {
		return fmt.Errorf("service: failed to acknowledge wins for %s: %w", email, err)
	}
	return nil
}
