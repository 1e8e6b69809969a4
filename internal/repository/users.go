package repository

import (
	"fmt"

	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/auctionerrors"
	model "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/models"
)

// CreateUser records a new user account
func (s *Store) CreateUser(u model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.Email]; ok {
		return fmt.Errorf("create user %s: %w", u.Email, auctionerrors.ErrDuplicateEmail)
	}

	s.users[u.Email] = u
	s.userOrder = append(s.userOrder, u.Email)
	if err := s.persist(keyUsers, s.usersSnapshot()); err != nil {
		delete(s.users, u.Email)
		s.userOrder = s.userOrder[:len(s.userOrder)-1]
		return err
	}
	return nil
}

// GetUserByEmail returns the user with the given email
func (s *Store) GetUserByEmail(email string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[email]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", email, auctionerrors.ErrUserNotFound)
	}
	return u, nil
}

// ListUsers returns all users in insertion order
func (s *Store) ListUsers() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usersSnapshot()
}

// UpdateUser replaces an existing user record
func (s *Store) UpdateUser(u model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.users[u.Email]
	if !ok {
		return fmt.Errorf("update user %s: %w", u.Email, auctionerrors.ErrUserNotFound)
	}

	s.users[u.Email] = u
	if err := s.persist(keyUsers, s.usersSnapshot()); err != nil {
		s.users[u.Email] = prev
		return err
	}
	return nil
}

// DeleteUser removes the user record. Listings by the user are not touched
// here; the identity service cascades them explicitly.
func (s *Store) DeleteUser(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.users[email]
	if !ok {
		return fmt.Errorf("delete user %s: %w", email, auctionerrors.ErrUserNotFound)
	}

	delete(s.users, email)
	prevOrder := s.userOrder
	s.userOrder = removeString(s.userOrder, email)
	if err := s.persist(keyUsers, s.usersSnapshot()); err != nil {
		s.users[email] = prev
		s.userOrder = prevOrder
		return err
	}
	return nil
}

func removeString(list []string, target string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != target {
			out = append(out, v)
		}
	}
	return out
}
