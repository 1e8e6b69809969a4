package repository

import (
	model "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/models"
)

// AppendNotification records a message for a user. The log is append-only.
func (s *Store) AppendNotification(n model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append(s.notifications, n)
	if err := s.persist(keyNotifications, s.notifications); err != nil {
		s.notifications = s.notifications[:len(s.notifications)-1]
		return err
	}
	return nil
}

// NotificationsByUser returns the user's notifications in append order
func (s *Store) NotificationsByUser(email string) []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Notification
	for _, n := range s.notifications {
		if n.UserEmail == email {
			out = append(out, n)
		}
	}
	return out
}

// MarkAllRead flips the read flag on every notification for the user
func (s *Store) MarkAllRead(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := append([]model.Notification(nil), s.notifications...)
	changed := false
	for i := range s.notifications {
		if s.notifications[i].UserEmail == email && !s.notifications[i].Read {
			s.notifications[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	if err := s.persist(keyNotifications, s.notifications); err != nil {
		s.notifications = prev
		return err
	}
	return nil
}

// CountUnread returns how many unread notifications the user has
func (s *Store) CountUnread(email string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.notifications {
		if n.UserEmail == email && !n.Read {
			count++
		}
	}
	return count
}
