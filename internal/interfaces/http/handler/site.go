package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appregistry "github.com/resitrack/backend/internal/application/registry"
	"github.com/resitrack/backend/internal/interfaces/http/dto"
)

// SiteHandler exposes generator site endpoints
type SiteHandler struct {
	BaseHandler
	sites *appregistry.SiteService
}

// NewSiteHandler creates a site handler
func NewSiteHandler(sites *appregistry.SiteService) *SiteHandler {
	return &SiteHandler{sites: sites}
}

// RegisterRoutes registers site routes on the given group
func (h *SiteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sites := rg.Group("/registry/sites")
	{
		sites.POST("", h.Create)
		sites.GET("", h.List)
		sites.GET("/:id", h.GetByID)
		sites.PUT("/:id", h.Update)
		sites.DELETE("/:id", h.Delete)
	}
}

type createSiteRequest struct {
	Name         string `json:"name" binding:"required"`
	SerialPrefix string `json:"serial_prefix" binding:"required,max=5"`
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
}

// Create registers a generator site
func (h *SiteHandler) Create(c *gin.Context) {
	var req createSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	resp, err := h.sites.Create(c.Request.Context(), appregistry.CreateSiteRequest{
		Name:         req.Name,
		SerialPrefix: req.SerialPrefix,
		Street:       req.Street,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		CreatedBy:    getOperatorID(c),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// List returns generator sites matching the filter parameters
func (h *SiteHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := req.ToFilter()
	if active := c.Query("active"); active != "" {
		filter.Filters["active"] = active
	}

	result, err := h.sites.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetByID returns a generator site by its ID
func (h *SiteHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid site ID")
		return
	}

	resp, err := h.sites.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

type updateSiteRequest struct {
	Name         string `json:"name" binding:"required"`
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	Active       *bool  `json:"active"`
}

// Update changes the mutable site fields. The serial prefix is immutable.
func (h *SiteHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid site ID")
		return
	}

	var req updateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	resp, err := h.sites.Update(c.Request.Context(), id, appregistry.UpdateSiteRequest{
		Name:         req.Name,
		Street:       req.Street,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		Active:       req.Active,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes a generator site
func (h *SiteHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid site ID")
		return
	}

	if err := h.sites.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
