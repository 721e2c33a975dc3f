package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agriconnect/marketplace-api/internal/httperr"
	ucContact "github.com/agriconnect/marketplace-api/internal/usecase/contact"
	"github.com/agriconnect/marketplace-api/internal/validators"
)

type ContactHandler struct {
	submitUC *ucContact.SubmitInquiry
}

func NewContactHandler(submitUC *ucContact.SubmitInquiry) *ContactHandler {
	return &ContactHandler{submitUC: submitUC}
}

// --------- Requests ---------

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// --------- Handlers ---------

func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		httperr.BadRequest(c, "missing_fields", "Name, email, and message are required.")
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "invalid_email", "Please enter a valid email address")
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), ucContact.SubmitInquiryInput{
		Name:    req.Name,
		Email:   email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_message", "Failed to save message due to a database error.")
		return
	}

	c.JSON(http.StatusOK, result)
}
