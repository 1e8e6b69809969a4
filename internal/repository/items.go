package repository

import (
	"fmt"

	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/auctionerrors"
	model "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/models"
)

// AddItem records a new active listing
func (s *Store) AddItem(item model.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[item.ItemID]; ok {
		return fmt.Errorf("add item %s: duplicate item id", item.ItemID)
	}

	s.items[item.ItemID] = item
	s.itemOrder = append(s.itemOrder, item.ItemID)
	if err := s.persist(keyItems, s.itemsSnapshot()); err != nil {
		delete(s.items, item.ItemID)
		s.itemOrder = s.itemOrder[:len(s.itemOrder)-1]
		return err
	}
	return nil
}

// GetItem returns the active listing with the given id
func (s *Store) GetItem(itemID string) (model.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[itemID]
	if !ok {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return item, nil
}

// ListItems returns all active listings in insertion order
func (s *Store) ListItems() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.itemsSnapshot()
}

// UpdateItem replaces an existing listing, used for accepted bids and
// hide/unhide.
func (s *Store) UpdateItem(item model.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.items[item.ItemID]
	if !ok {
		return fmt.Errorf("update item %s: %w", item.ItemID, auctionerrors.ErrItemNotFound)
	}

	s.items[item.ItemID] = item
	if err := s.persist(keyItems, s.itemsSnapshot()); err != nil {
		s.items[item.ItemID] = prev
		return err
	}
	return nil
}

// RecordBid appends an accepted bid to a listing and advances the current
// highest bid. The amount is re-checked against the highest bid under the
// write lock, so concurrent bids on the same item serialize instead of
// overwriting each other. Returns the updated listing and who held the
// highest bid before this one.
func (s *Store) RecordBid(itemID string, bid model.Bid) (model.Item, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.items[itemID]
	if !ok {
		return model.Item{}, "", fmt.Errorf("record bid on %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	if bid.Amount <= prev.CurrentBid {
		return model.Item{}, "", fmt.Errorf("record bid on %s: %w - current highest bid is %d", itemID, auctionerrors.ErrBidTooLow, prev.CurrentBid)
	}

	previousBidder := prev.HighestBidder
	updated := prev
	updated.CurrentBid = bid.Amount
	updated.HighestBidder = bid.Bidder
	updated.Bids = append(append([]model.Bid(nil), prev.Bids...), bid)
	s.items[itemID] = updated
	if err := s.persist(keyItems, s.itemsSnapshot()); err != nil {
		s.items[itemID] = prev
		return model.Item{}, "", err
	}
	return updated, previousBidder, nil
}

// DeleteItem removes a listing outright without a sold snapshot
func (s *Store) DeleteItem(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.items[itemID]
	if !ok {
		return fmt.Errorf("delete item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}

	delete(s.items, itemID)
	prevOrder := s.itemOrder
	s.itemOrder = removeString(s.itemOrder, itemID)
	if err := s.persist(keyItems, s.itemsSnapshot()); err != nil {
		s.items[itemID] = prev
		s.itemOrder = prevOrder
		return err
	}
	return nil
}

// DeleteItemsBySeller removes every active listing owned by the seller and
// returns how many were removed. Used by the delete-user cascade.
func (s *Store) DeleteItemsBySeller(seller string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removedIDs []string
	for id, item := range s.items {
		if item.Seller == seller {
			removedIDs = append(removedIDs, id)
		}
	}
	if len(removedIDs) == 0 {
		return 0, nil
	}

	removed := make(map[string]model.Item, len(removedIDs))
	for _, id := range removedIDs {
		removed[id] = s.items[id]
		delete(s.items, id)
	}
	prevOrder := s.itemOrder
	order := make([]string, 0, len(s.itemOrder))
	for _, id := range s.itemOrder {
		if _, gone := removed[id]; !gone {
			order = append(order, id)
		}
	}
	s.itemOrder = order

	if err := s.persist(keyItems, s.itemsSnapshot()); err != nil {
		for id, item := range removed {
			s.items[id] = item
		}
		s.itemOrder = prevOrder
		return 0, err
	}
	return len(removedIDs), nil
}
