package integrationtests

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Full marketplace lifecycle: two bidders compete, the auction expires, the
// winner pays and the seller collects notifications along the way.
func TestAuctionLifecycle(t *testing.T) {
	env := SetupTestEnv(t)

	env.SignupUser(t, "Seller", "seller@b.c", "secret1")
	itemID := env.CreateListing(t, "Ancient Astrolabe", 100, time.Hour)

	env.SignupUser(t, "First Bidder", "first@b.c", "secret1")
	resp, w := env.Do(t, "POST", "/items/"+itemID+"/bids", map[string]any{"amount": 150})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 150.0, Data(t, resp)["amount"])

	env.SignupUser(t, "Second Bidder", "second@b.c", "secret1")
	_, w = env.Do(t, "POST", "/items/"+itemID+"/bids", map[string]any{"amount": 200})
	require.Equal(t, http.StatusCreated, w.Code)

	// The first bidder was outbid and has an unread notification.
	env.Login(t, "first@b.c", "secret1")
	resp, w = env.Do(t, "GET", "/notifications/unread-count", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1.0, Data(t, resp)["unread"])

	resp, w = env.Do(t, "GET", "/notifications", nil)
	require.Equal(t, http.StatusOK, w.Code)
	notes := List(t, resp)
	require.Len(t, notes, 1)
	require.Equal(t, "You've been outbid on Ancient Astrolabe.", notes[0].(map[string]any)["message"])

	// Expire the auction and settle.
	env.Clock.Advance(2 * time.Hour)
	sold, unsold := env.Sweep(t)
	require.Equal(t, 1, sold)
	require.Zero(t, unsold)

	// The listing left the public index but stays retrievable by id.
	resp, w = env.Do(t, "GET", "/items", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, List(t, resp))

	resp, w = env.Do(t, "GET", "/items/"+itemID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "second@b.c", Data(t, resp)["highest_bidder"])

	// The winner sees the win and pays.
	env.Login(t, "second@b.c", "secret1")
	resp, w = env.Do(t, "GET", "/notifications/wins", nil)
	require.Equal(t, http.StatusOK, w.Code)
	wins := List(t, resp)
	require.Len(t, wins, 1)
	require.Equal(t, itemID, wins[0].(map[string]any)["item_id"])

	resp, w = env.Do(t, "POST", "/sold/"+itemID+"/payment", map[string]string{
		"shipping_address": "1 Long Street, Old Town",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, Data(t, resp)["paid"])

	// Paying twice is rejected.
	_, w = env.Do(t, "POST", "/sold/"+itemID+"/payment", map[string]string{
		"shipping_address": "1 Long Street, Old Town",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	// A paid win no longer shows as unseen.
	resp, w = env.Do(t, "GET", "/notifications/wins", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, List(t, resp))

	// The seller got the sale and the payment notifications.
	env.Login(t, "seller@b.c", "secret1")
	resp, w = env.Do(t, "GET", "/notifications", nil)
	require.Equal(t, http.StatusOK, w.Code)
	messages := make([]string, 0)
	for _, n := range List(t, resp) {
		messages = append(messages, n.(map[string]any)["message"].(string))
	}
	require.Contains(t, messages, "Your item Ancient Astrolabe sold for $200.00.")
	require.Contains(t, messages, "Payment received for Ancient Astrolabe. Please prepare for shipping.")
}

func TestAuthFlow(t *testing.T) {
	env := SetupTestEnv(t)

	// No session yet.
	_, w := env.Do(t, "GET", "/auth/session", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Signup signs the account in.
	env.SignupUser(t, "Alice", "alice@b.c", "secret1")
	resp, w := env.Do(t, "GET", "/auth/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "alice@b.c", Data(t, resp)["email"])

	// Mismatched confirmation is rejected before the service runs.
	_, w = env.Do(t, "POST", "/auth/signup", map[string]string{
		"name":             "Bob",
		"email":            "bob@b.c",
		"password":         "secret1",
		"confirm_password": "different",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Duplicate email conflicts.
	_, w = env.Do(t, "POST", "/auth/signup", map[string]string{
		"name":             "Imposter",
		"email":            "alice@b.c",
		"password":         "secret1",
		"confirm_password": "secret1",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	// Logout drops the session.
	_, w = env.Do(t, "POST", "/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, w = env.Do(t, "GET", "/auth/session", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Wrong password is rejected.
	_, w = env.Do(t, "POST", "/auth/login", map[string]string{
		"email":    "alice@b.c",
		"password": "wrong123",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	env.Login(t, "alice@b.c", "secret1")
}

func TestBiddingRules(t *testing.T) {
	env := SetupTestEnv(t)

	env.SignupUser(t, "Seller", "seller@b.c", "secret1")
	itemID := env.CreateListing(t, "Jade Figurine", 100, time.Hour)

	// The seller cannot bid on their own listing.
	_, w := env.Do(t, "POST", "/items/"+itemID+"/bids", map[string]any{"amount": 150})
	require.Equal(t, http.StatusForbidden, w.Code)

	env.SignupUser(t, "Bidder", "bidder@b.c", "secret1")

	// A bid at the starting price is too low; it must exceed it.
	_, w = env.Do(t, "POST", "/items/"+itemID+"/bids", map[string]any{"amount": 100})
	require.Equal(t, http.StatusConflict, w.Code)

	_, w = env.Do(t, "POST", "/items/"+itemID+"/bids", map[string]any{"amount": 150})
	require.Equal(t, http.StatusCreated, w.Code)

	// After expiry, bids are rejected even before a sweep runs.
	env.Clock.Advance(2 * time.Hour)
	_, w = env.Do(t, "POST", "/items/"+itemID+"/bids", map[string]any{"amount": 300})
	require.Equal(t, http.StatusConflict, w.Code)

	// An unsold expired listing is discarded, not archived.
	env2 := SetupTestEnv(t)
	env2.SignupUser(t, "Seller", "seller@b.c", "secret1")
	unsoldID := env2.CreateListing(t, "Unwanted Urn", 100, time.Minute)
	env2.Clock.Advance(time.Hour)
	sold, unsold := env2.Sweep(t)
	require.Zero(t, sold)
	require.Equal(t, 1, unsold)
	_, w = env2.Do(t, "GET", "/items/"+unsoldID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileViews(t *testing.T) {
	env := SetupTestEnv(t)

	env.SignupUser(t, "Seller", "seller@b.c", "secret1")
	itemID := env.CreateListing(t, "Medieval Seal", 100, time.Hour)

	env.SignupUser(t, "Bidder", "bidder@b.c", "secret1")
	_, w := env.Do(t, "POST", "/items/"+itemID+"/bids", map[string]any{"amount": 150})
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w := env.Do(t, "GET", "/profile/bids", nil)
	require.Equal(t, http.StatusOK, w.Code)
	records := List(t, resp)
	require.Len(t, records, 1)
	require.Equal(t, "winning", records[0].(map[string]any)["status"])

	env.Clock.Advance(2 * time.Hour)
	env.Sweep(t)

	resp, w = env.Do(t, "GET", "/profile/bids", nil)
	require.Equal(t, http.StatusOK, w.Code)
	records = List(t, resp)
	require.Len(t, records, 1)
	require.Equal(t, "won", records[0].(map[string]any)["status"])

	resp, w = env.Do(t, "GET", "/profile/wins", nil)
	require.Equal(t, http.StatusOK, w.Code)
	wins := List(t, resp)
	require.Len(t, wins, 1)
	require.Equal(t, false, wins[0].(map[string]any)["paid"])
}

func TestAdminConsole(t *testing.T) {
	env := SetupTestEnv(t)

	env.SignupUser(t, "Seller", "seller@b.c", "secret1")
	itemID := env.CreateListing(t, "Scythian Dagger", 100, time.Hour)
	secondID := env.CreateListing(t, "Ottoman Astrolabe", 100, time.Hour)

	// Non-admin callers are rejected across the console.
	for _, url := range []string{"/admin/stats", "/admin/users", "/admin/auctions", "/admin/sold"} {
		_, w := env.Do(t, "GET", url, nil)
		require.Equal(t, http.StatusForbidden, w.Code, url)
	}

	env.Login(t, adminEmail, adminPassword)

	resp, w := env.Do(t, "GET", "/admin/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := Data(t, resp)
	require.Equal(t, 1.0, stats["total_users"])
	require.Equal(t, 2.0, stats["active_auctions"])
	require.Equal(t, 0.0, stats["total_revenue"])
	require.Equal(t, "$0.00", stats["total_revenue_display"])

	// Hide, verify public invisibility, unhide.
	_, w = env.Do(t, "POST", "/admin/items/"+itemID+"/hide", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = env.Do(t, "GET", "/items", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, List(t, resp), 1)

	resp, w = env.Do(t, "GET", "/admin/auctions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, List(t, resp), 2) // hidden listings stay manageable

	_, w = env.Do(t, "POST", "/admin/items/"+itemID+"/unhide", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp, w = env.Do(t, "GET", "/items", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, List(t, resp), 2)

	// Delete a listing outright; the seller is notified.
	_, w = env.Do(t, "DELETE", "/admin/items/"+secondID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, w = env.Do(t, "GET", "/items/"+secondID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// Ban the seller; their next login is rejected.
	resp, w = env.Do(t, "POST", "/admin/users/seller@b.c/ban", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, Data(t, resp)["banned"])

	_, w = env.Do(t, "POST", "/auth/login", map[string]string{
		"email":    "seller@b.c",
		"password": "secret1",
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	// Unban and delete; accounts and their listings disappear together.
	env.Login(t, adminEmail, adminPassword)
	_, w = env.Do(t, "POST", "/admin/users/seller@b.c/ban", nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, w = env.Do(t, "DELETE", "/admin/users/seller@b.c", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = env.Do(t, "GET", "/admin/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, List(t, resp))

	resp, w = env.Do(t, "GET", "/items", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, List(t, resp))
}

func TestNotificationReadFlow(t *testing.T) {
	env := SetupTestEnv(t)

	env.SignupUser(t, "Seller", "seller@b.c", "secret1")
	itemID := env.CreateListing(t, "Minoan Fresco Fragment", 100, time.Minute)

	env.SignupUser(t, "Bidder", "bidder@b.c", "secret1")
	_, w := env.Do(t, "POST", "/items/"+itemID+"/bids", map[string]any{"amount": 150})
	require.Equal(t, http.StatusCreated, w.Code)

	env.Clock.Advance(time.Hour)
	env.Sweep(t)

	// Winner: one win notification, unread.
	resp, w := env.Do(t, "GET", "/notifications/unread-count", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1.0, Data(t, resp)["unread"])

	_, w = env.Do(t, "POST", "/notifications/read", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = env.Do(t, "GET", "/notifications/unread-count", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 0.0, Data(t, resp)["unread"])

	// Acknowledge the win popup so it is not reported again.
	_, w = env.Do(t, "POST", "/notifications/wins/ack", map[string]any{"item_ids": []string{itemID}})
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = env.Do(t, "GET", "/notifications/wins", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, List(t, resp))
}
