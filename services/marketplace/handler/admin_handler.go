package handler

import (
	"fmt"
	"net/http"

	admin "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/adminService"
	model "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/models"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/services/marketplace/helpers"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/utils"

	"github.com/gin-gonic/gin"
)

type AdminServiceInterface interface {
	Stats(actor model.User) (admin.Stats, error)
	Users(actor model.User) ([]model.User, error)
	LiveAuctions(actor model.User) ([]model.Item, error)
	SoldItems(actor model.User) ([]model.SoldItem, error)
	DeleteItem(actor model.User, itemID string) error
	HideItem(actor model.User, itemID string) error
	UnhideItem(actor model.User, itemID string) error
}

// AdminHandler wires the console routes. Ban/delete-user go through the
// identity service, the rest through the admin service; every operation
// re-checks the acting identity server-side.
type AdminHandler struct {
	service  AdminServiceInterface
	identity AuthServiceInterface
	session  SessionResolver
}

func NewAdminHandler(service AdminServiceInterface, identity AuthServiceInterface, session SessionResolver) *AdminHandler {
	return &AdminHandler{service: service, identity: identity, session: session}
}

// StatsHandler handles GET /admin/stats
func (h *AdminHandler) StatsHandler(c *gin.Context) {
	actor, ok := requireUser(c, "StatsHandler", h.session)
	if !ok {
		return
	}

	stats, err := h.service.Stats(actor)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("StatsHandler: stats request rejected", map[string]any{"actor": actor.Email, "error": err.Error()})
		return
	}
	utils.JSONResponse(c, http.StatusOK, stats, "stats retrieved successfully")
}

// ListUsersHandler handles GET /admin/users
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	actor, ok := requireUser(c, "ListUsersHandler", h.session)
	if !ok {
		return
	}

	users, err := h.service.Users(actor)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	resp := make([]helpers.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, helpers.NewUserResponse(u))
	}
	utils.JSONResponse(c, http.StatusOK, resp, "users retrieved successfully")
}

// LiveAuctionsHandler handles GET /admin/auctions
func (h *AdminHandler) LiveAuctionsHandler(c *gin.Context) {
	actor, ok := requireUser(c, "LiveAuctionsHandler", h.session)
	if !ok {
		return
	}

	items, err := h.service.LiveAuctions(actor)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	utils.JSONResponse(c, http.StatusOK, items, "live auctions retrieved successfully")
}

// SoldItemsHandler handles GET /admin/sold
func (h *AdminHandler) SoldItemsHandler(c *gin.Context) {
	actor, ok := requireUser(c, "SoldItemsHandler", h.session)
	if !ok {
		return
	}

	sold, err := h.service.SoldItems(actor)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	utils.JSONResponse(c, http.StatusOK, sold, "sold items retrieved successfully")
}

// ToggleBanHandler handles POST /admin/users/:email/ban
func (h *AdminHandler) ToggleBanHandler(c *gin.Context) {
	actor, ok := requireUser(c, "ToggleBanHandler", h.session)
	if !ok {
		return
	}

	email := c.Param("email")
	banned, err := h.identity.ToggleBan(actor, email)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ToggleBanHandler: failed to toggle ban", map[string]any{
			"actor": actor.Email,
			"email": email,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"email": email, "banned": banned}, "ban state updated")
	helpers.LogSuccess("ToggleBanHandler", "ban state updated", map[string]any{"email": email, "banned": banned})
}

// DeleteUserHandler handles DELETE /admin/users/:email
func (h *AdminHandler) DeleteUserHandler(c *gin.Context) {
	actor, ok := requireUser(c, "DeleteUserHandler", h.session)
	if !ok {
		return
	}

	email := c.Param("email")
	if err := h.identity.DeleteUser(actor, email); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("DeleteUserHandler: failed to delete user", map[string]any{
			"actor": actor.Email,
			"email": email,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "user deleted successfully")
	helpers.LogSuccess("DeleteUserHandler", "user deleted successfully", map[string]any{"email": email})
}

// DeleteItemHandler handles DELETE /admin/items/:item_id
func (h *AdminHandler) DeleteItemHandler(c *gin.Context) {
	actor, ok := requireUser(c, "DeleteItemHandler", h.session)
	if !ok {
		return
	}

	itemID := c.Param("item_id")
	if err := h.service.DeleteItem(actor, itemID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("DeleteItemHandler: failed to delete item", map[string]any{
			"actor":   actor.Email,
			"item_id": itemID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "item deleted successfully")
	helpers.LogSuccess("DeleteItemHandler", "item deleted successfully", map[string]any{"item_id": itemID})
}

// HideItemHandler handles POST /admin/items/:item_id/hide
func (h *AdminHandler) HideItemHandler(c *gin.Context) {
	h.setHidden(c, "HideItemHandler", true)
}

// UnhideItemHandler handles POST /admin/items/:item_id/unhide
func (h *AdminHandler) UnhideItemHandler(c *gin.Context) {
	h.setHidden(c, "UnhideItemHandler", false)
}

func (h *AdminHandler) setHidden(c *gin.Context, handlerName string, hidden bool) {
	actor, ok := requireUser(c, handlerName, h.session)
	if !ok {
		return
	}

	itemID := c.Param("item_id")
	var err error
	if hidden {
		err = h.service.HideItem(actor, itemID)
	} else {
		err = h.service.UnhideItem(actor, itemID)
	}
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error(handlerName+": failed to update item visibility", map[string]any{
			"actor":   actor.Email,
			"item_id": itemID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"item_id": itemID, "hidden": hidden}, "item visibility updated")
	helpers.LogSuccess(handlerName, "item visibility updated", map[string]any{"item_id": itemID, "hidden": hidden})
}
