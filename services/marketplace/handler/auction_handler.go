package handler

import (
	"fmt"
	"net/http"
	"time"

	auction "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/auctionService"
	model "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/models"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/services/marketplace/helpers"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	CreateListing(seller string, in auction.ListingInput) (model.Item, error)
	PlaceBid(itemID, bidder string, amount int64) (model.Bid, error)
	Search(term string) []model.Item
	ListActive() []model.Item
	Featured() []model.Item
	Trending() []model.Item
	GetItem(itemID string) (model.Item, error)
	BidsForItem(itemID string) ([]model.Bid, error)
	BidHistory(user string) []auction.BidRecord
	WonItems(user string) []model.SoldItem
}

type AuctionHandler struct {
	service AuctionServiceInterface
	session SessionResolver
}

func NewAuctionHandler(service AuctionServiceInterface, session SessionResolver) *AuctionHandler {
	return &AuctionHandler{service: service, session: session}
}

// ListItemsHandler handles GET /items with optional ?q= search term and
// ?section=featured|trending views
func (h *AuctionHandler) ListItemsHandler(c *gin.Context) {
	var items []model.Item
	if term, ok := c.GetQuery("q"); ok {
		items = h.service.Search(term)
	} else {
		switch c.Query("section") {
		case "featured":
			items = h.service.Featured()
		case "trending":
			items = h.service.Trending()
		default:
			items = h.service.ListActive()
		}
	}
	if items == nil {
		items = []model.Item{}
	}
	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
}

// GetItemHandler handles GET /items/:item_id
func (h *AuctionHandler) GetItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	item, err := h.service.GetItem(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetItemHandler: error retrieving item", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}
	utils.JSONResponse(c, http.StatusOK, item, "item retrieved successfully")
}

// GetItemBidsHandler handles GET /items/:item_id/bids
func (h *AuctionHandler) GetItemBidsHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	bids, err := h.service.BidsForItem(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetItemBidsHandler: error retrieving bids", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}
	if bids == nil {
		bids = []model.Bid{}
	}
	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
}

// CreateListingHandler handles POST /items
func (h *AuctionHandler) CreateListingHandler(c *gin.Context) {
	user, ok := requireUser(c, "CreateListingHandler", h.session)
	if !ok {
		return
	}

	var req helpers.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}
	endDate, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", fmt.Errorf("invalid end_date: %w", err))
		return
	}

	item, err := h.service.CreateListing(user.Email, auction.ListingInput{
		Name:          req.Name,
		Category:      req.Category,
		Description:   req.Description,
		Age:           req.Age,
		Condition:     req.Condition,
		StartingPrice: req.StartingPrice,
		EndDate:       endDate,
		ImageData:     req.ImageData,
		Authenticity:  req.Authenticity,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateListingHandler: failed to create listing", map[string]any{
			"seller": user.Email,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, item, "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"item_id": item.ItemID,
		"seller":  user.Email,
	})
}

// PlaceBidHandler handles POST /items/:item_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	user, ok := requireUser(c, "PlaceBidHandler", h.session)
	if !ok {
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	itemID := c.Param("item_id")
	bid, err := h.service.PlaceBid(itemID, user.Email, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to record bid", map[string]any{
			"item_id": itemID,
			"bidder":  user.Email,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"item_id": itemID,
		"bidder":  user.Email,
		"amount":  bid.Amount,
	})
}

// BidHistoryHandler handles GET /profile/bids
func (h *AuctionHandler) BidHistoryHandler(c *gin.Context) {
	user, ok := requireUser(c, "BidHistoryHandler", h.session)
	if !ok {
		return
	}

	records := h.service.BidHistory(user.Email)
	if records == nil {
		records = []auction.BidRecord{}
	}
	utils.JSONResponse(c, http.StatusOK, records, "bid history retrieved successfully")
}

// WonItemsHandler handles GET /profile/wins
func (h *AuctionHandler) WonItemsHandler(c *gin.Context) {
	user, ok := requireUser(c, "WonItemsHandler", h.session)
	if !ok {
		return
	}

	won := h.service.WonItems(user.Email)
	if won == nil {
		won = []model.SoldItem{}
	}
	utils.JSONResponse(c, http.StatusOK, won, "won items retrieved successfully")
}
