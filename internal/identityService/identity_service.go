package identity

import (
	"errors"
	"fmt"

	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/auctionerrors"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/clock"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/models"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/repository"
)

const minPasswordLength = 6

// Notifier delivers user-facing messages for account events
type Notifier interface {
	Notify(email, message, notificationType string) error
}

// IdentityService defines the business logic for accounts and the session
// identity. Admin status is derived from the configured admin email.
type IdentityService struct {
	repo       repository.MarketplaceDB
	notifier   Notifier
	clk        clock.Clock
	adminEmail string
}

// NewIdentityService creates a new IdentityService instance
func NewIdentityService(repo repository.MarketplaceDB, notifier Notifier, clk clock.Clock, adminEmail string) *IdentityService {
	return &IdentityService{
		repo:       repo,
		notifier:   notifier,
		clk:        clk,
		adminEmail: adminEmail,
	}
}

// EnsureAdmin seeds the admin account when it does not exist yet
func (s *IdentityService) EnsureAdmin(name, password string) error {
	if _, err := s.repo.GetUserByEmail(s.adminEmail); err == nil {
		return nil
	} else if !errors.Is(err, auctionerrors.ErrUserNotFound) {
		return fmt.Errorf("service: failed to look up admin account: %w", err)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return fmt.Errorf("service: failed to hash admin password: %w", err)
	}
	admin := models.User{
		Email:        s.adminEmail,
		Name:         name,
		PasswordHash: hash,
		Admin:        true,
		CreatedAt:    s.clk.Now(),
	}
	if err := s.repo.CreateUser(admin); err != nil {
		return fmt.Errorf("service: failed to seed admin account: %w", err)
	}
	return nil
}

// Signup creates a new account and signs it in
func (s *IdentityService) Signup(name, email, password string) (models.User, error) {
	if name == "" || email == "" {
		return models.User{}, fmt.Errorf("service: %w - missing name or email", auctionerrors.ErrInvalidSignup)
	}
	if len(password) < minPasswordLength {
		return models.User{}, fmt.Errorf("service: %w", auctionerrors.ErrWeakPassword)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to hash password: %w", err)
	}

	user := models.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Admin:        email == s.adminEmail,
		CreatedAt:    s.clk.Now(),
	}
	if err := s.repo.CreateUser(user); err != nil {
		return models.User{}, fmt.Errorf("service: failed to create user %s: %w", email, err)
	}
	if err := s.repo.SetCurrentUser(email); err != nil {
		return models.User{}, fmt.Errorf("service: failed to establish session for %s: %w", email, err)
	}
	return user, nil
}

// Login verifies credentials and establishes the session identity
func (s *IdentityService) Login(email, password string) (models.User, error) {
	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		return models.User{}, fmt.Errorf("service: %w", auctionerrors.ErrInvalidCredentials)
	}
	if !checkPassword(user.PasswordHash, password) {
		return models.User{}, fmt.Errorf("service: %w", auctionerrors.ErrInvalidCredentials)
	}
	if user.Banned {
		return models.User{}, fmt.Errorf("service: %w", auctionerrors.ErrAccountBanned)
	}
	if err := s.repo.SetCurrentUser(email); err != nil {
		return models.User{}, fmt.Errorf("service: failed to establish session for %s: %w", email, err)
	}
	return user, nil
}

// Logout drops the session identity
func (s *IdentityService) Logout() error {
	if err := s.repo.ClearCurrentUser(); err != nil {
		return fmt.Errorf("service: failed to clear session: %w", err)
	}
	return nil
}

// Current returns the signed-in user. A session pointing at a since-deleted
// account is treated as no session.
func (s *IdentityService) Current() (models.User, error) {
	email, err := s.repo.CurrentUser()
	if err != nil {
		return models.User{}, fmt.Errorf("service: %w", err)
	}
	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		return models.User{}, fmt.Errorf("service: stale session for %s: %w", email, auctionerrors.ErrNoSession)
	}
	return user, nil
}

// ToggleBan flips the banned flag on a user and notifies them. Admin only.
func (s *IdentityService) ToggleBan(actor models.User, email string) (bool, error) {
	if err := s.requireAdmin(actor); err != nil {
		return false, err
	}
	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		return false, fmt.Errorf("service: failed to toggle ban for %s: %w", email, err)
	}

	user.Banned = !user.Banned
	if err := s.repo.UpdateUser(user); err != nil {
		return false, fmt.Errorf("service: failed to toggle ban for %s: %w", email, err)
	}

	if user.Banned {
		s.notify(email, "An admin has banned your account.", models.NotificationError)
	} else {
		s.notify(email, "An admin has unbanned your account.", models.NotificationSuccess)
	}
	return user.Banned, nil
}

// DeleteUser removes a user and cascades to their active listings. Sold
// records are left untouched, so references to the deleted email may remain.
// Admin only.
func (s *IdentityService) DeleteUser(actor models.User, email string) error {
	if err := s.requireAdmin(actor); err != nil {
		return err
	}
	if err := s.repo.DeleteUser(email); err != nil {
		return fmt.Errorf("service: failed to delete user %s: %w", email, err)
	}
	if _, err := s.repo.DeleteItemsBySeller(email); err != nil {
		return fmt.Errorf("service: failed to remove listings of %s: %w", email, err)
	}

	if current, err := s.repo.CurrentUser(); err == nil && current == email {
		if err := s.repo.ClearCurrentUser(); err != nil {
			return fmt.Errorf("service: failed to clear session of deleted user %s: %w", email, err)
		}
	}
	return nil
}

func (s *IdentityService) requireAdmin(actor models.User) error {
	if actor.Email != s.adminEmail {
		return fmt.Errorf("service: %w", auctionerrors.ErrUnauthorized)
	}
	return nil
}

// notify delivers a best-effort account notification; delivery failures do
// not fail the account mutation that triggered them.
func (s *IdentityService) notify(email, message, notificationType string) {
	_ = s.notifier.Notify(email, message, notificationType)
}
