package auction

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/auctionerrors"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/clock"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/models"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/repository"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/utils"
)

const featuredCount = 4

// Notifier delivers user-facing messages for bidding events
type Notifier interface {
	Notify(email, message, notificationType string) error
}

// ListingInput carries the seller-supplied fields of a new listing
type ListingInput struct {
	Name          string
	Category      string
	Description   string
	Age           string
	Condition     string
	StartingPrice int64
	EndDate       time.Time
	ImageData     string
	Authenticity  string
}

// AuctionService defines the business logic for listings and bidding
type AuctionService struct {
	repo     repository.MarketplaceDB
	notifier Notifier
	clk      clock.Clock
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.MarketplaceDB, notifier Notifier, clk clock.Clock) *AuctionService {
	return &AuctionService{
		repo:     repo,
		notifier: notifier,
		clk:      clk,
	}
}

// CreateListing validates and stores a new active listing
func (s *AuctionService) CreateListing(seller string, in ListingInput) (models.Item, error) {
	if seller == "" || in.Name == "" {
		return models.Item{}, fmt.Errorf("service: %w - missing seller or name", auctionerrors.ErrInvalidItem)
	}
	if in.ImageData == "" {
		return models.Item{}, fmt.Errorf("service: %w", auctionerrors.ErrMissingImage)
	}
	if in.StartingPrice <= 0 {
		return models.Item{}, fmt.Errorf("service: %w - non-positive starting price", auctionerrors.ErrInvalidItem)
	}
	now := s.clk.Now()
	if !in.EndDate.After(now) {
		return models.Item{}, fmt.Errorf("service: %w - end date not in the future", auctionerrors.ErrInvalidItem)
	}

	item := models.Item{
		ItemID:        utils.GenerateID(),
		Name:          in.Name,
		Category:      in.Category,
		Description:   in.Description,
		Age:           in.Age,
		Condition:     in.Condition,
		StartingPrice: in.StartingPrice,
		CurrentBid:    in.StartingPrice,
		Seller:        seller,
		StartDate:     now,
		EndDate:       in.EndDate,
		ImageData:     in.ImageData,
		Authenticity:  in.Authenticity,
		Bids:          []models.Bid{},
	}
	if err := s.repo.AddItem(item); err != nil {
		return models.Item{}, fmt.Errorf("service: failed to create listing for %s: %w", seller, err)
	}
	return item, nil
}

// PlaceBid validates and records a bid on an active listing. Expiry is
// re-validated here regardless of what a caller already checked; the amount
// is checked against the current highest bid inside the store's write lock,
// so concurrent bids on the same item cannot overwrite each other.
func (s *AuctionService) PlaceBid(itemID, bidder string, amount int64) (models.Bid, error) {
	if itemID == "" || bidder == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing itemID or bidder", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to look up item %s: %w", itemID, err)
	}
	if item.Seller == bidder {
		return models.Bid{}, fmt.Errorf("service: %w", auctionerrors.ErrSelfBid)
	}
	now := s.clk.Now()
	if item.Ended(now) {
		return models.Bid{}, fmt.Errorf("service: %w", auctionerrors.ErrAuctionEnded)
	}

	bid := models.Bid{
		Bidder: bidder,
		Amount: amount,
		Date:   now,
	}
	updated, previousBidder, err := s.repo.RecordBid(itemID, bid)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for item %s by %s: %w", itemID, bidder, err)
	}

	if previousBidder != "" && previousBidder != bidder {
		_ = s.notifier.Notify(previousBidder, fmt.Sprintf("You've been outbid on %s.", updated.Name), models.NotificationWarning)
	}
	return bid, nil
}

// Search returns active, non-hidden listings whose name or description
// contains the term, case-insensitively. An empty term matches everything.
func (s *AuctionService) Search(term string) []models.Item {
	term = strings.ToLower(term)
	items := s.activeItems()
	out := make([]models.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), term) ||
			strings.Contains(strings.ToLower(item.Description), term) {
			out = append(out, item)
		}
	}
	return out
}

// ListActive returns all open, non-hidden listings in insertion order
func (s *AuctionService) ListActive() []models.Item {
	return s.activeItems()
}

// Featured returns the first few active listings
func (s *AuctionService) Featured() []models.Item {
	items := s.activeItems()
	if len(items) > featuredCount {
		items = items[:featuredCount]
	}
	return items
}

// Trending returns the most-bid-on active listings
func (s *AuctionService) Trending() []models.Item {
	items := s.activeItems()
	sort.SliceStable(items, func(i, j int) bool {
		return len(items[i].Bids) > len(items[j].Bids)
	})
	if len(items) > featuredCount {
		items = items[:featuredCount]
	}
	return items
}

// GetItem returns a listing by id, checking the active store first and the
// sold store second so ended items stay viewable.
func (s *AuctionService) GetItem(itemID string) (models.Item, error) {
	if itemID == "" {
		return models.Item{}, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrInvalidBid)
	}
	item, err := s.repo.GetItem(itemID)
	if err == nil {
		return item, nil
	}
	if sold, soldErr := s.repo.GetSoldItem(itemID); soldErr == nil {
		return sold.Item, nil
	}
	return models.Item{}, fmt.Errorf("service: failed to get item %s: %w", itemID, err)
}

// BidsForItem returns the bid history of an active or sold listing in
// chronological order
func (s *AuctionService) BidsForItem(itemID string) ([]models.Bid, error) {
	item, err := s.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	return append([]models.Bid(nil), item.Bids...), nil
}

func (s *AuctionService) activeItems() []models.Item {
	now := s.clk.Now()
	all := s.repo.ListItems()
	items := make([]models.Item, 0, len(all))
	for _, item := range all {
		if !item.Ended(now) && !item.Hidden {
			items = append(items, item)
		}
	}
	return items
}
