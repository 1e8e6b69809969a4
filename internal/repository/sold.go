package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/auctionerrors"
	model "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/models"
)

// GetSoldItem returns the sold record with the given item id
func (s *Store) GetSoldItem(itemID string) (model.SoldItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sold := range s.soldItems {
		if sold.ItemID == itemID {
			return sold, nil
		}
	}
	return model.SoldItem{}, fmt.Errorf("get sold item %s: %w", itemID, auctionerrors.ErrSoldItemNotFound)
}

// ListSoldItems returns all sold records in settlement order
func (s *Store) ListSoldItems() []model.SoldItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.SoldItem(nil), s.soldItems...)
}

// MarkSoldItemPaid records payment and shipping details on a sold record.
// The paid flag is re-checked under the write lock, so only one of several
// concurrent payment attempts can succeed.
func (s *Store) MarkSoldItemPaid(itemID, shippingAddress string, paidAt time.Time) (model.SoldItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.soldItems {
		if existing.ItemID != itemID {
			continue
		}
		if existing.Paid {
			return model.SoldItem{}, fmt.Errorf("mark sold item %s paid: %w", itemID, auctionerrors.ErrAlreadyPaid)
		}
		paid := existing
		paid.Paid = true
		when := paidAt
		paid.PaymentDate = &when
		paid.ShippingAddress = shippingAddress
		s.soldItems[i] = paid
		if err := s.persist(keySoldItems, s.soldItems); err != nil {
			s.soldItems[i] = existing
			return model.SoldItem{}, err
		}
		return paid, nil
	}
	return model.SoldItem{}, fmt.Errorf("mark sold item %s paid: %w", itemID, auctionerrors.ErrSoldItemNotFound)
}

// ApplySettlement commits one settlement tick: expired listings leave the
// active store, sold snapshots and notifications are appended, and all three
// collections are written in a single storage transaction so no partial tick
// is ever persisted.
func (s *Store) ApplySettlement(expiredIDs []string, sold []model.SoldItem, notes []model.Notification) error {
	if len(expiredIDs) == 0 && len(sold) == 0 && len(notes) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expired := make(map[string]model.Item, len(expiredIDs))
	for _, id := range expiredIDs {
		if item, ok := s.items[id]; ok {
			expired[id] = item
			delete(s.items, id)
		}
	}
	prevOrder := s.itemOrder
	order := make([]string, 0, len(s.itemOrder))
	for _, id := range s.itemOrder {
		if _, gone := expired[id]; !gone {
			order = append(order, id)
		}
	}
	s.itemOrder = order

	prevSoldLen := len(s.soldItems)
	prevNotesLen := len(s.notifications)
	s.soldItems = append(s.soldItems, sold...)
	s.notifications = append(s.notifications, notes...)

	err := s.persistMulti(map[string]any{
		keyItems:         s.itemsSnapshot(),
		keySoldItems:     s.soldItems,
		keyNotifications: s.notifications,
	})
	if err != nil {
		for id, item := range expired {
			s.items[id] = item
		}
		s.itemOrder = prevOrder
		s.soldItems = s.soldItems[:prevSoldLen]
		s.notifications = s.notifications[:prevNotesLen]
		return err
	}
	return nil
}

// persistMulti serializes several collections and writes them atomically.
// Callers hold the write lock.
func (s *Store) persistMulti(values map[string]any) error {
	encoded := make(map[string][]byte, len(values))
	for key, value := range values {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		encoded[key] = raw
	}
	if err := s.kv.SetMulti(encoded); err != nil {
		return fmt.Errorf("persist settlement: %w", err)
	}
	return nil
}
