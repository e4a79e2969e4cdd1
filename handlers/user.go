package handlers

import (
	"errors"
	"net/http"

	"fittribe/models"
	"fittribe/services/user"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes the account endpoints.
type UserHandler struct {
	Users user.UserService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Users: svc}
}

// RegisterHandler creates a new account and returns an auth token.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var input user.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Users.Register(input)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// AuthenticateHandler verifies credentials and returns an auth token.
func (h *UserHandler) AuthenticateHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Users.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetMeHandler returns the authenticated account.
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	userID := c.GetString("userID")

	account, err := h.Users.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch account", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, account)
}

// UpdateMeHandler updates the authenticated account's profile fields.
func (h *UserHandler) UpdateMeHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var input models.User
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.ID = userID

	updated, err := h.Users.UpdateUser(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteMeHandler removes the authenticated account.
func (h *UserHandler) DeleteMeHandler(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.Users.DeleteUser(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete account", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

// RevokeTokenHandler signs the account out everywhere.
func (h *UserHandler) RevokeTokenHandler(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.Users.RevokeAuthToken(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// MarkNotificationsReadHandler flags the account's notifications as read.
func (h *UserHandler) MarkNotificationsReadHandler(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.Users.MarkNotificationsRead(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update notifications", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "notifications marked read"})
}

// ListUsersHandler lists every account. Admin only.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Users.GetAllUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}
