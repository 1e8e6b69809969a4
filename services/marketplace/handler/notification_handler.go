package handler

import (
	"fmt"
	"net/http"

	model "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/models"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/services/marketplace/helpers"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/utils"

	"github.com/gin-gonic/gin"
)

type NotificationServiceInterface interface {
	ForUser(email string) []model.Notification
	MarkAllRead(email string) error
	UnreadCount(email string) int
	UnseenWins(email string) []model.SoldItem
	AcknowledgeWins(email string, itemIDs []string) error
}

type NotificationHandler struct {
	service NotificationServiceInterface
	session SessionResolver
}

func NewNotificationHandler(service NotificationServiceInterface, session SessionResolver) *NotificationHandler {
	return &NotificationHandler{service: service, session: session}
}

// ListNotificationsHandler handles GET /notifications
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	user, ok := requireUser(c, "ListNotificationsHandler", h.session)
	if !ok {
		return
	}

	notes := h.service.ForUser(user.Email)
	if notes == nil {
		notes = []model.Notification{}
	}
	utils.JSONResponse(c, http.StatusOK, notes, "notifications retrieved successfully")
}

// UnreadCountHandler handles GET /notifications/unread-count
func (h *NotificationHandler) UnreadCountHandler(c *gin.Context) {
	user, ok := requireUser(c, "UnreadCountHandler", h.session)
	if !ok {
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"unread": h.service.UnreadCount(user.Email)}, "unread count retrieved successfully")
}

// MarkReadHandler handles POST /notifications/read
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	user, ok := requireUser(c, "MarkReadHandler", h.session)
	if !ok {
		return
	}

	if err := h.service.MarkAllRead(user.Email); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("MarkReadHandler: failed to mark notifications read", map[string]any{
			"user":  user.Email,
			"error": err.Error(),
		})
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "notifications marked read")
}

// UnseenWinsHandler handles GET /notifications/wins
func (h *NotificationHandler) UnseenWinsHandler(c *gin.Context) {
	user, ok := requireUser(c, "UnseenWinsHandler", h.session)
	if !ok {
		return
	}

	wins := h.service.UnseenWins(user.Email)
	if wins == nil {
		wins = []model.SoldItem{}
	}
	utils.JSONResponse(c, http.StatusOK, wins, "unseen wins retrieved successfully")
}

// AcknowledgeWinsHandler handles POST /notifications/wins/ack
func (h *NotificationHandler) AcknowledgeWinsHandler(c *gin.Context) {
	user, ok := requireUser(c, "AcknowledgeWinsHandler", h.session)
	if !ok {
		return
	}

	var req helpers.AcknowledgeWinsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AcknowledgeWinsHandler", err)
		return
	}

	if err := h.service.AcknowledgeWins(user.Email, req.ItemIDs); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("AcknowledgeWinsHandler: failed to acknowledge wins", map[string]any{
			"user":  user.Email,
			"error": err.Error(),
		})
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "wins acknowledged")
}
