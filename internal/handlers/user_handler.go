package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "walletwise/internal/errors"
	"walletwise/internal/services"
)

// UserHandler handles user profile requests.
type UserHandler struct {
	userService  services.UserServicer
	auditService services.AuditServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService services.UserServicer, auditService services.AuditServicer) *UserHandler {
	return &UserHandler{userService: userService, auditService: auditService}
}

// CreateUserRequest represents the request payload for storing a profile.
// UserID is the identity provider's subject.
type CreateUserRequest struct {
	UserID      string `json:"userId" binding:"required"`
	Name        string `json:"name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"max=30"`
}

// CreateUser handles storing a new user profile.
// @Summary     Create a user
// @Description Store the profile of an identity-provider user
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body CreateUserRequest true "User details"
// @Success     201 {object} models.User "User created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "User id or email already exists"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.CreateUser(req.UserID, req.Name, req.Email, req.PhoneNumber)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(user.UserID, "CREATE_USER", "user", user.UserID, c.ClientIP(), nil)

	c.JSON(http.StatusCreated, user)
}

// ListUsers handles listing all stored profiles.
// @Summary     List users
// @Description Get all user profiles
// @Tags        users
// @Produce     json
// @Success     200 {array} models.User "Users"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
