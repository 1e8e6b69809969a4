package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	model "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/models"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/storage"
)

// Storage keys. One serialized collection per key, plus the session pointer
// and a per-user set of acknowledged wins.
const (
	keyUsers         = "users"
	keyItems         = "items"
	keySoldItems     = "soldItems"
	keyNotifications = "notifications"
	keyCurrentUser   = "currentUser"
	keyViewedWins    = "viewedWonItems-" // + user email
)

// UserDB defines user record storage for the auction system
type UserDB interface {
	CreateUser(u model.User) error
	GetUserByEmail(email string) (model.User, error)
	ListUsers() []model.User
	UpdateUser(u model.User) error
	DeleteUser(email string) error
}

// ItemDB defines active listing storage for the auction system
type ItemDB interface {
	AddItem(item model.Item) error
	GetItem(itemID string) (model.Item, error)
	ListItems() []model.Item
	UpdateItem(item model.Item) error
	// RecordBid validates the bid amount against the current highest bid and
	// appends it under the write lock, returning the updated listing and the
	// previous highest bidder.
	RecordBid(itemID string, bid model.Bid) (model.Item, string, error)
	DeleteItem(itemID string) error
	DeleteItemsBySeller(seller string) (int, error)
}

// SoldDB defines sold item storage for the auction system
type SoldDB interface {
	GetSoldItem(itemID string) (model.SoldItem, error)
	ListSoldItems() []model.SoldItem
	// MarkSoldItemPaid flips the paid flag exactly once; a record that is
	// already paid fails under the same lock that set it.
	MarkSoldItemPaid(itemID, shippingAddress string, paidAt time.Time) (model.SoldItem, error)
	// ApplySettlement removes expired listings and records sold snapshots
	// and notifications as one atomic write.
	ApplySettlement(expiredIDs []string, sold []model.SoldItem, notes []model.Notification) error
}

// NotificationDB defines per-user notification log storage
type NotificationDB interface {
	AppendNotification(n model.Notification) error
	NotificationsByUser(email string) []model.Notification
	MarkAllRead(email string) error
	CountUnread(email string) int
}

// SessionDB holds the single session identity and per-user win acknowledgements
type SessionDB interface {
	SetCurrentUser(email string) error
	CurrentUser() (string, error)
	ClearCurrentUser() error
	ViewedWonItems(email string) []string
	AddViewedWonItems(email string, itemIDs []string) error
}

// MarketplaceDB is the full storage surface the services operate on
type MarketplaceDB interface {
	UserDB
	ItemDB
	SoldDB
	NotificationDB
	SessionDB
}

// Store is the single source of truth during a session: every collection is
// held in memory and written through to the KV backend on each mutation.
// A failed write reverts the in-memory change and surfaces the error.
type Store struct {
	mu sync.RWMutex
	kv storage.KV

	users         map[string]model.User // key: email -> value: user
	userOrder     []string              // emails in insertion order
	items         map[string]model.Item // key: itemID -> value: item
	itemOrder     []string              // item IDs in insertion order
	soldItems     []model.SoldItem
	notifications []model.Notification
	currentUser   string
}

var _ MarketplaceDB = (*Store)(nil)

// NewStore loads all collections from the KV backend. Missing keys start as
// empty collections.
func NewStore(kv storage.KV) (*Store, error) {
	s := &Store{
		kv:    kv,
		users: make(map[string]model.User),
		items: make(map[string]model.Item),
	}

	var users []model.User
	if err := loadKey(kv, keyUsers, &users); err != nil {
		return nil, err
	}
	for _, u := range users {
		s.users[u.Email] = u
		s.userOrder = append(s.userOrder, u.Email)
	}

	var items []model.Item
	if err := loadKey(kv, keyItems, &items); err != nil {
		return nil, err
	}
	for _, item := range items {
		s.items[item.ItemID] = item
		s.itemOrder = append(s.itemOrder, item.ItemID)
	}

	if err := loadKey(kv, keySoldItems, &s.soldItems); err != nil {
		return nil, err
	}
	if err := loadKey(kv, keyNotifications, &s.notifications); err != nil {
		return nil, err
	}

	current, err := kv.Get(keyCurrentUser)
	if err == nil {
		s.currentUser = string(current)
	} else if !isNotFound(err) {
		return nil, fmt.Errorf("load %s: %w", keyCurrentUser, err)
	}

	return s, nil
}

func loadKey[T any](kv storage.KV, key string, dst *T) error {
	raw, err := kv.Get(key)
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, storage.ErrKeyNotFound)
}

// persist serializes one collection and writes it through. Callers hold the
// write lock.
func (s *Store) persist(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(key, raw); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

func (s *Store) usersSnapshot() []model.User {
	users := make([]model.User, 0, len(s.userOrder))
	for _, email := range s.userOrder {
		users = append(users, s.users[email])
	}
	return users
}

func (s *Store) itemsSnapshot() []model.Item {
	items := make([]model.Item, 0, len(s.itemOrder))
	for _, id := range s.itemOrder {
		items = append(items, s.items[id])
	}
	return items
}
