package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agriconnect/marketplace-api/internal/httperr"
	"github.com/agriconnect/marketplace-api/internal/httpresp"
	"github.com/agriconnect/marketplace-api/internal/middleware"
	"github.com/agriconnect/marketplace-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ActivityHandler struct {
	db *gorm.DB
}

func NewActivityHandler(db *gorm.DB) *ActivityHandler {
	return &ActivityHandler{db: db}
}

func (h *ActivityHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	action := c.Query("action")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	q := h.db.
		Model(&models.AuditLog{}).
		Where("user_id = ?", userID)

	if action != "" {
		q = q.Where("action = ?", action)
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_activity", err.Error())
		return
	}

	httpresp.List(c, logs)
}
