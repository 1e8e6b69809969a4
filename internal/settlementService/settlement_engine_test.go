package settlement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/auctionerrors"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/clock"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/models"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/repository"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/storage"
)

var testNow = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) (*SettlementEngine, *repository.Store, *clock.Fake) {
	t.Helper()
	store, err := repository.NewStore(storage.NewMemory())
	require.NoError(t, err)
	clk := clock.NewFake(testNow)
	return NewSettlementEngine(store, clk, 0.05, 30*time.Second), store, clk
}

func listing(id string, endsIn time.Duration) models.Item {
	return models.Item{
		ItemID:        id,
		Name:          "Greek Amphora",
		StartingPrice: 100,
		CurrentBid:    100,
		Seller:        "seller@b.c",
		StartDate:     testNow.Add(-24 * time.Hour),
		EndDate:       testNow.Add(endsIn),
		Bids:          []models.Bid{},
	}
}

func TestSettleExpiredWithWinner(t *testing.T) {
	t.Parallel()

	engine, store, clk := newTestEngine(t)

	item := listing("item-1", time.Minute)
	item.CurrentBid = 200
	item.HighestBidder = "winner@b.c"
	item.Bids = []models.Bid{
		{Bidder: "other@b.c", Amount: 150, Date: testNow.Add(-2 * time.Hour)},
		{Bidder: "winner@b.c", Amount: 200, Date: testNow.Add(-time.Hour)},
	}
	require.NoError(t, store.AddItem(item))

	clk.Advance(2 * time.Minute)
	sold, unsold, err := engine.SettleExpired()
	require.NoError(t, err)
	require.Equal(t, 1, sold)
	require.Zero(t, unsold)

	_, err = store.GetItem("item-1")
	require.ErrorIs(t, err, auctionerrors.ErrItemNotFound)

	record, err := store.GetSoldItem("item-1")
	require.NoError(t, err)
	require.Equal(t, int64(200), record.CurrentBid)
	require.Equal(t, "winner@b.c", record.HighestBidder)
	require.Equal(t, 10.0, record.Commission)
	require.False(t, record.Paid)
	require.Len(t, record.Bids, 2)

	winnerNotes := store.NotificationsByUser("winner@b.c")
	require.Len(t, winnerNotes, 1)
	require.Equal(t, "You won the auction for Greek Amphora!", winnerNotes[0].Message)
	require.Equal(t, models.NotificationSuccess, winnerNotes[0].Type)

	sellerNotes := store.NotificationsByUser("seller@b.c")
	require.Len(t, sellerNotes, 1)
	require.Equal(t, "Your item Greek Amphora sold for $200.00.", sellerNotes[0].Message)
}

func TestSettleExpiredWithoutBids(t *testing.T) {
	t.Parallel()

	engine, store, clk := newTestEngine(t)
	require.NoError(t, store.AddItem(listing("item-1", time.Minute)))

	clk.Advance(2 * time.Minute)
	sold, unsold, err := engine.SettleExpired()
	require.NoError(t, err)
	require.Zero(t, sold)
	require.Equal(t, 1, unsold)

	// Discarded outright: gone from the active store, no sold record.
	_, err = store.GetItem("item-1")
	require.ErrorIs(t, err, auctionerrors.ErrItemNotFound)
	require.Empty(t, store.ListSoldItems())

	notes := store.NotificationsByUser("seller@b.c")
	require.Len(t, notes, 1)
	require.Equal(t, "Your item Greek Amphora did not sell.", notes[0].Message)
	require.Equal(t, models.NotificationWarning, notes[0].Type)
}

func TestSettleExpiredLeavesOpenListingsAlone(t *testing.T) {
	t.Parallel()

	engine, store, clk := newTestEngine(t)

	expiring := listing("item-1", time.Minute)
	expiring.HighestBidder = "winner@b.c"
	expiring.CurrentBid = 300
	require.NoError(t, store.AddItem(expiring))
	require.NoError(t, store.AddItem(listing("item-2", 48*time.Hour)))

	clk.Advance(2 * time.Minute)
	sold, unsold, err := engine.SettleExpired()
	require.NoError(t, err)
	require.Equal(t, 1, sold)
	require.Zero(t, unsold)

	_, err = store.GetItem("item-2")
	require.NoError(t, err)
}

func TestSettleExpiredKeepsListingEndingExactlyNow(t *testing.T) {
	t.Parallel()

	engine, store, _ := newTestEngine(t)
	require.NoError(t, store.AddItem(listing("item-1", 0)))

	// An end date equal to the sweep instant is not yet expired.
	sold, unsold, err := engine.SettleExpired()
	require.NoError(t, err)
	require.Zero(t, sold)
	require.Zero(t, unsold)

	_, err = store.GetItem("item-1")
	require.NoError(t, err)
	require.Empty(t, store.ListSoldItems())
}

func TestSettleExpiredNothingExpiredIsNoop(t *testing.T) {
	t.Parallel()

	engine, store, _ := newTestEngine(t)
	require.NoError(t, store.AddItem(listing("item-1", time.Hour)))

	sold, unsold, err := engine.SettleExpired()
	require.NoError(t, err)
	require.Zero(t, sold)
	require.Zero(t, unsold)
	require.Len(t, store.ListItems(), 1)
}

func TestSettleExpiredSweepIsIdempotent(t *testing.T) {
	t.Parallel()

	engine, store, clk := newTestEngine(t)

	item := listing("item-1", time.Minute)
	item.HighestBidder = "winner@b.c"
	item.CurrentBid = 200
	require.NoError(t, store.AddItem(item))

	clk.Advance(2 * time.Minute)
	_, _, err := engine.SettleExpired()
	require.NoError(t, err)

	// A second sweep finds nothing and changes nothing.
	sold, unsold, err := engine.SettleExpired()
	require.NoError(t, err)
	require.Zero(t, sold)
	require.Zero(t, unsold)
	require.Len(t, store.ListSoldItems(), 1)
	require.Len(t, store.NotificationsByUser("winner@b.c"), 1)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	store, err := repository.NewStore(storage.NewMemory())
	require.NoError(t, err)
	engine := NewSettlementEngine(store, clock.NewFake(testNow), 0.05, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		engine.Run(ctx)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("engine did not stop after context cancellation")
	}
}
