package handler

import (
	"errors"
	"fmt"
	"net/http"

	model "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/models"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/services/marketplace/helpers"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/utils"

	"github.com/gin-gonic/gin"
)

// SessionResolver yields the acting identity for a request
type SessionResolver interface {
	Current() (model.User, error)
}

type AuthServiceInterface interface {
	Signup(name, email, password string) (model.User, error)
	Login(email, password string) (model.User, error)
	Logout() error
	Current() (model.User, error)
	ToggleBan(actor model.User, email string) (bool, error)
	DeleteUser(actor model.User, email string) error
}

type AuthHandler struct {
	service AuthServiceInterface
}

func NewAuthHandler(service AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// SignupHandler handles POST /auth/signup
func (h *AuthHandler) SignupHandler(c *gin.Context) {
	var req helpers.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SignupHandler", err)
		return
	}
	if req.Password != req.ConfirmPassword {
		err := errors.New("passwords do not match")
		utils.JSONError(c, http.StatusBadRequest, err, "passwords do not match")
		utils.Warn("SignupHandler: password mismatch", map[string]any{"email": req.Email})
		return
	}

	user, err := h.service.Signup(req.Name, req.Email, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SignupHandler: failed to create account", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewUserResponse(user), "account created successfully")
	helpers.LogSuccess("SignupHandler", "account created successfully", map[string]any{"email": user.Email})
}

// LoginHandler handles POST /auth/login
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LoginHandler: login rejected", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewUserResponse(user), "signed in successfully")
	helpers.LogSuccess("LoginHandler", "signed in successfully", map[string]any{"email": user.Email})
}

// LogoutHandler handles POST /auth/logout
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	if err := h.service.Logout(); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("LogoutHandler: failed to clear session", map[string]any{"error": err.Error()})
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "signed out successfully")
}

// SessionHandler handles GET /auth/session
func (h *AuthHandler) SessionHandler(c *gin.Context) {
	user, err := h.service.Current()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewUserResponse(user), "session retrieved successfully")
}

// requireUser resolves the acting identity or writes a 401. Shared by the
// handlers that act on behalf of the signed-in user.
func requireUser(c *gin.Context, handlerName string, session SessionResolver) (model.User, bool) {
	user, err := session.Current()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn(handlerName+": no session identity", map[string]any{"error": err.Error()})
		return model.User{}, false
	}
	return user, true
}
