package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	admin "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/adminService"
	auction "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/auctionService"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/clock"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/config"
	identity "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/identityService"
	notification "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/notificationService"
	payment "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/paymentService"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/repository"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/server"
	settlement "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/settlementService"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/storage"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/utils"
)

func main() {
	cfg := config.NewConfig()
	utils.SetLevel(cfg.LogLevel)

	kv, err := storage.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		utils.Fatal("failed to open state database", map[string]any{"path": cfg.DatabasePath, "error": err.Error()})
	}
	defer kv.Close()

	store, err := repository.NewStore(kv)
	if err != nil {
		utils.Fatal("failed to load state", map[string]any{"error": err.Error()})
	}

	clk := clock.Real{}
	notificationSvc := notification.NewNotificationService(store, clk)
	identitySvc := identity.NewIdentityService(store, notificationSvc, clk, cfg.AdminEmail)
	auctionSvc := auction.NewAuctionService(store, notificationSvc, clk)
	paymentSvc := payment.NewPaymentService(store, notificationSvc, clk)
	adminSvc := admin.NewAdminService(store, notificationSvc, clk, cfg.AdminEmail)

	if err := identitySvc.EnsureAdmin(cfg.AdminName, cfg.AdminPassword); err != nil {
		utils.Fatal("failed to seed admin account", map[string]any{"error": err.Error()})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := settlement.NewSettlementEngine(store, clk, cfg.Commission, cfg.SweepInterval)
	go engine.Run(ctx)

	router := server.SetupRouter(server.Services{
		Identity:     identitySvc,
		Auction:      auctionSvc,
		Payment:      paymentSvc,
		Admin:        adminSvc,
		Notification: notificationSvc,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	utils.Info("starting auction server", map[string]any{"addr": addr, "sweep_interval": cfg.SweepInterval.String()})
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
