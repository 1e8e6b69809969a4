package auction

import (
	"sort"
	"time"

	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/models"
)

// Bid history statuses as shown on the profile page.
const (
	BidStatusWinning = "winning"
	BidStatusOutbid  = "outbid"
	BidStatusWon     = "won"
	BidStatusLost    = "lost"
)

// BidRecord pairs one of the user's bids with the listing it was placed on
// and the bid's current standing.
type BidRecord struct {
	Item   models.Item `json:"item"`
	Bid    models.Bid  `json:"bid"`
	Status string      `json:"status"`
}

// BidHistory returns the user's bids across active and sold listings, newest
// first. Bids that share a timestamp on the same listing collapse to one
// record. For open auctions the status is winning/outbid; for ended ones
// won/lost.
func (s *AuctionService) BidHistory(user string) []BidRecord {
	now := s.clk.Now()

	var records []BidRecord
	seen := make(map[string]bool)
	collect := func(item models.Item, ended bool) {
		for _, bid := range item.Bids {
			if bid.Bidder != user {
				continue
			}
			key := item.ItemID + "|" + bid.Date.UTC().Format(time.RFC3339Nano)
			if seen[key] {
				continue
			}
			seen[key] = true
			status := BidStatusOutbid
			if ended {
				if item.HighestBidder == user {
					status = BidStatusWon
				} else {
					status = BidStatusLost
				}
			} else if item.HighestBidder == user && bid.Amount == item.CurrentBid {
				status = BidStatusWinning
			}
			records = append(records, BidRecord{Item: item, Bid: bid, Status: status})
		}
	}

	for _, item := range s.repo.ListItems() {
		collect(item, item.Ended(now))
	}
	for _, sold := range s.repo.ListSoldItems() {
		collect(sold.Item, true)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Bid.Date.After(records[j].Bid.Date)
	})
	return records
}

// WonItems returns the sold listings won by the user, most recently ended
// first, carrying their payment state.
func (s *AuctionService) WonItems(user string) []models.SoldItem {
	var won []models.SoldItem
	for _, sold := range s.repo.ListSoldItems() {
		if sold.HighestBidder == user {
			won = append(won, sold)
		}
	}
	sort.SliceStable(won, func(i, j int) bool {
		return won[i].EndDate.After(won[j].EndDate)
	})
	return won
}
