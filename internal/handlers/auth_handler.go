package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/agriconnect/marketplace-api/internal/audit"
	"github.com/agriconnect/marketplace-api/internal/httperr"
	"github.com/agriconnect/marketplace-api/internal/middleware"
	"github.com/agriconnect/marketplace-api/internal/models"
	"github.com/agriconnect/marketplace-api/internal/token"
	"github.com/agriconnect/marketplace-api/internal/validators"
)

// UserStore is the credential store; the gorm implementation lives in
// internal/infra/repository.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type AuthHandler struct {
	users  UserStore
	tokens *token.Service
	audit  *audit.Dispatcher
}

func NewAuthHandler(users UserStore, tokens *token.Service, audit *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{
		users:  users,
		tokens: tokens,
		audit:  audit,
	}
}

// --------- Requests ---------

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	if req.Email == "" || req.Password == "" {
		httperr.BadRequest(c, "missing_fields", "Email and password required")
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "invalid_email", "Please fill a valid email address")
		return
	}

	name := strings.TrimSpace(req.Name)
	if len(name) > 50 {
		httperr.BadRequest(c, "invalid_name", "Name must be 50 characters or fewer")
		return
	}
	if name == "" {
		name = "User"
	}

	if _, err := h.users.FindByEmail(c.Request.Context(), email); err == nil {
		httperr.BadRequest(c, "email_already_registered", "Email already registered")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Internal(c, "internal_error", err.Error())
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process password.")
		return
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := h.users.Create(c.Request.Context(), user); err != nil {
		// Unique-index race between the existence check and the insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "email_already_registered", "Email already registered")
			return
		}
		httperr.Internal(c, "failed_to_create_user", err.Error())
		return
	}

	tok, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &user.ID,
		Action: "user_signed_up",
		Entity: "user",
	})

	c.JSON(http.StatusCreated, gin.H{
		"token": tok,
		"user":  user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	if req.Email == "" || req.Password == "" {
		httperr.BadRequest(c, "missing_fields", "Email and password required")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	user, err := h.users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same payload as a wrong password; never reveal which was wrong.
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials")
			return
		}
		httperr.Internal(c, "internal_error", err.Error())
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials")
		return
	}

	tok, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tok,
		"user":  user,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	user, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "User not found")
			return
		}
		httperr.Internal(c, "internal_error", err.Error())
		return
	}

	c.JSON(http.StatusOK, user)
}
