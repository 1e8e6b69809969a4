package repository

import (
	"encoding/json"
	"fmt"

	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/auctionerrors"
)

// SetCurrentUser persists the session identity pointer
func (s *Store) SetCurrentUser(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.currentUser
	s.currentUser = email
	if err := s.kv.Set(keyCurrentUser, []byte(email)); err != nil {
		s.currentUser = prev
		return fmt.Errorf("persist %s: %w", keyCurrentUser, err)
	}
	return nil
}

// CurrentUser returns the session identity, or ErrNoSession when nobody is
// signed in
func (s *Store) CurrentUser() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentUser == "" {
		return "", auctionerrors.ErrNoSession
	}
	return s.currentUser, nil
}

// ClearCurrentUser drops the session identity
func (s *Store) ClearCurrentUser() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.currentUser
	s.currentUser = ""
	if err := s.kv.Delete(keyCurrentUser); err != nil {
		s.currentUser = prev
		return fmt.Errorf("clear %s: %w", keyCurrentUser, err)
	}
	return nil
}

// ViewedWonItems returns the item ids the user has already been shown as wins
func (s *Store) ViewedWonItems(email string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewedWonItems(email)
}

func (s *Store) viewedWonItems(email string) []string {
	raw, err := s.kv.Get(keyViewedWins + email)
	if err != nil {
		return nil
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil
	}
	return ids
}

// AddViewedWonItems merges item ids into the user's acknowledged-wins set.
// The read-merge-write runs under the write lock so concurrent
// acknowledgements cannot drop each other's ids.
func (s *Store) AddViewedWonItems(email string, itemIDs []string) error {
	if len(itemIDs) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	ids := s.viewedWonItems(email)
	for _, id := range ids {
		seen[id] = true
	}
	for _, id := range itemIDs {
		if !seen[id] {
			ids = append(ids, id)
			seen[id] = true
		}
	}

	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode %s%s: %w", keyViewedWins, email, err)
	}
	if err := s.kv.Set(keyViewedWins+email, raw); err != nil {
		return fmt.Errorf("persist %s%s: %w", keyViewedWins, email, err)
	}
	return nil
}
