package handler

import (
	"github.com/gin-gonic/gin"

	appregistry "github.com/resitrack/backend/internal/application/registry"
	"github.com/resitrack/backend/internal/interfaces/http/dto"
)

// SettingHandler exposes system setting and catalog endpoints
type SettingHandler struct {
	BaseHandler
	settings *appregistry.SettingService
}

// NewSettingHandler creates a setting handler
func NewSettingHandler(settings *appregistry.SettingService) *SettingHandler {
	return &SettingHandler{settings: settings}
}

// RegisterRoutes registers setting and catalog routes on the given group
func (h *SettingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	settings := rg.Group("/settings")
	{
		settings.GET("", h.GetAll)
		settings.GET("/:key", h.Get)
		settings.PUT("/:key", h.Set)
	}
	rg.GET("/registry/categories", h.ListCategories)
}

// GetAll returns every system setting ordered by key
func (h *SettingHandler) GetAll(c *gin.Context) {
	resp, err := h.settings.GetAll(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Get returns a single setting by key
func (h *SettingHandler) Get(c *gin.Context) {
	resp, err := h.settings.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

type setSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

// Set creates or replaces a setting value
func (h *SettingHandler) Set(c *gin.Context) {
	var req setSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	resp, err := h.settings.Set(c.Request.Context(), c.Param("key"), req.Value)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// ListCategories returns the fixed residue catalog in catalog order
func (h *SettingHandler) ListCategories(c *gin.Context) {
	h.Success(c, appregistry.ListCategories())
}
