package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	admin "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/adminService"
	auction "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/auctionService"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/clock"
	identity "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/identityService"
	notification "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/notificationService"
	payment "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/paymentService"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/repository"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/server"
	settlement "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/settlementService"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	adminEmail    = "admin@gmail.com"
	adminPassword = "123456"
)

var startTime = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

// TestEnv bundles the full wired application over in-memory storage with a
// manually advanced clock. Settlement runs via Sweep, not a background loop.
type TestEnv struct {
	Router *gin.Engine
	Store  *repository.Store
	Clock  *clock.Fake
	Engine *settlement.SettlementEngine
}

// SetupTestEnv wires every service the way main does and seeds the admin
// account.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := repository.NewStore(storage.NewMemory())
	require.NoError(t, err)
	clk := clock.NewFake(startTime)

	notificationService := notification.NewNotificationService(store, clk)
	identityService := identity.NewIdentityService(store, notificationService, clk, adminEmail)
	auctionService := auction.NewAuctionService(store, notificationService, clk)
	paymentService := payment.NewPaymentService(store, notificationService, clk)
	adminService := admin.NewAdminService(store, notificationService, clk, adminEmail)
	engine := settlement.NewSettlementEngine(store, clk, 0.05, 30*time.Second)

	require.NoError(t, identityService.EnsureAdmin("Admin", adminPassword))

	router := server.SetupRouter(server.Services{
		Identity:     identityService,
		Auction:      auctionService,
		Payment:      paymentService,
		Admin:        adminService,
		Notification: notificationService,
	})

	return &TestEnv{Router: router, Store: store, Clock: clk, Engine: engine}
}

// Sweep runs one settlement pass at the clock's current time.
func (e *TestEnv) Sweep(t *testing.T) (sold, unsold int) {
	t.Helper()
	sold, unsold, err := e.Engine.SettleExpired()
	require.NoError(t, err)
	return sold, unsold
}

// Do executes an HTTP request against the wired router and parses the
// response envelope.
func (e *TestEnv) Do(t *testing.T, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// Data unwraps the data field of a successful response envelope as an object.
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response data is not an object: %v", resp["data"])
	return data
}

// List unwraps the data field of a successful response envelope as an array.
func List(t *testing.T, resp map[string]any) []any {
	t.Helper()
	data, ok := resp["data"].([]any)
	require.True(t, ok, "response data is not an array: %v", resp["data"])
	return data
}

// SignupUser creates and signs in a fresh account.
func (e *TestEnv) SignupUser(t *testing.T, name, email, password string) {
	t.Helper()
	_, w := e.Do(t, "POST", "/auth/signup", map[string]string{
		"name":             name,
		"email":            email,
		"password":         password,
		"confirm_password": password,
	})
	require.Equal(t, 201, w.Code)
}

// Login signs the account in, making it the acting identity.
func (e *TestEnv) Login(t *testing.T, email, password string) {
	t.Helper()
	_, w := e.Do(t, "POST", "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, 200, w.Code)
}

// CreateListing creates a listing as the signed-in user and returns its id.
func (e *TestEnv) CreateListing(t *testing.T, name string, startingPrice int64, endsIn time.Duration) string {
	t.Helper()
	resp, w := e.Do(t, "POST", "/items", map[string]any{
		"name":           name,
		"category":       "antiques",
		"description":    "integration test listing",
		"starting_price": startingPrice,
		"end_date":       e.Clock.Now().Add(endsIn).Format(time.RFC3339),
		"image_data":     "data:image/png;base64,xyz",
	})
	require.Equal(t, 201, w.Code)
	return Data(t, resp)["item_id"].(string)
}
