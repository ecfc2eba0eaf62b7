package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appregistry "github.com/resitrack/backend/internal/application/registry"
	"github.com/resitrack/backend/internal/interfaces/http/dto"
)

// DestinationHandler exposes final destination endpoints
type DestinationHandler struct {
	BaseHandler
	destinations *appregistry.DestinationService
}

// NewDestinationHandler creates a destination handler
func NewDestinationHandler(destinations *appregistry.DestinationService) *DestinationHandler {
	return &DestinationHandler{destinations: destinations}
}

// RegisterRoutes registers destination routes on the given group
func (h *DestinationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	destinations := rg.Group("/registry/destinations")
	{
		destinations.POST("", h.Create)
		destinations.GET("", h.List)
		destinations.GET("/:id", h.GetByID)
		destinations.PUT("/:id", h.Update)
		destinations.DELETE("/:id", h.Delete)
	}
}

type createDestinationRequest struct {
	Name              string `json:"name" binding:"required"`
	AuthorizationCode string `json:"authorization_code"`
	Street            string `json:"street"`
	City              string `json:"city"`
	State             string `json:"state"`
	PostalCode        string `json:"postal_code"`
}

// Create registers a final destination
func (h *DestinationHandler) Create(c *gin.Context) {
	var req createDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	resp, err := h.destinations.Create(c.Request.Context(), appregistry.CreateDestinationRequest{
		Name:              req.Name,
		AuthorizationCode: req.AuthorizationCode,
		Street:            req.Street,
		City:              req.City,
		State:             req.State,
		PostalCode:        req.PostalCode,
		CreatedBy:         getOperatorID(c),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// List returns destinations matching the filter parameters
func (h *DestinationHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := req.ToFilter()
	if active := c.Query("active"); active != "" {
		filter.Filters["active"] = active
	}

	result, err := h.destinations.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetByID returns a destination by its ID
func (h *DestinationHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid destination ID")
		return
	}

	resp, err := h.destinations.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

type updateDestinationRequest struct {
	Name              string `json:"name" binding:"required"`
	AuthorizationCode string `json:"authorization_code"`
	Street            string `json:"street"`
	City              string `json:"city"`
	State             string `json:"state"`
	PostalCode        string `json:"postal_code"`
	Active            *bool  `json:"active"`
}

// Update changes the destination fields
func (h *DestinationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid destination ID")
		return
	}

	var req updateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	resp, err := h.destinations.Update(c.Request.Context(), id, appregistry.UpdateDestinationRequest{
		Name:              req.Name,
		AuthorizationCode: req.AuthorizationCode,
		Street:            req.Street,
		City:              req.City,
		State:             req.State,
		PostalCode:        req.PostalCode,
		Active:            req.Active,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes a destination
func (h *DestinationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid destination ID")
		return
	}

	if err := h.destinations.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
