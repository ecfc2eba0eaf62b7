package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appcollection "github.com/resitrack/backend/internal/application/collection"
	"github.com/resitrack/backend/internal/interfaces/http/dto"
)

// CollectionHandler exposes collection event endpoints
type CollectionHandler struct {
	BaseHandler
	events *appcollection.EventService
}

// NewCollectionHandler creates a collection handler
func NewCollectionHandler(events *appcollection.EventService) *CollectionHandler {
	return &CollectionHandler{events: events}
}

// RegisterRoutes registers collection routes on the given group
func (h *CollectionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	events := rg.Group("/collection/events")
	{
		events.POST("", h.Record)
		events.GET("", h.ListBySite)
		events.GET("/:id", h.GetByID)
		events.DELETE("/:id", h.Delete)
	}
}

type eventDetailInput struct {
	CategoryCode string          `json:"category_code" binding:"required"`
	Kilograms    decimal.Decimal `json:"kilograms" binding:"required"`
}

type recordEventRequest struct {
	SiteID    string             `json:"site_id" binding:"required,uuid"`
	EventDate string             `json:"event_date" binding:"required"`
	Notes     string             `json:"notes"`
	Details   []eventDetailInput `json:"details" binding:"required,min=1"`
}

// Record registers a pickup at a generator site
func (h *CollectionHandler) Record(c *gin.Context) {
	var req recordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	siteID, _ := uuid.Parse(req.SiteID)

	eventDate, err := time.Parse(dateLayout, req.EventDate)
	if err != nil {
		h.BadRequest(c, "Invalid event date")
		return
	}

	details := make([]appcollection.EventDetailInput, len(req.Details))
	for i, d := range req.Details {
		details[i] = appcollection.EventDetailInput{
			CategoryCode: d.CategoryCode,
			Kilograms:    d.Kilograms,
		}
	}

	resp, err := h.events.Record(c.Request.Context(), appcollection.RecordEventRequest{
		SiteID:    siteID,
		EventDate: eventDate,
		Notes:     req.Notes,
		Details:   details,
		CreatedBy: getOperatorID(c),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListBySite lists collection events for a site, optionally bounded by date
func (h *CollectionHandler) ListBySite(c *gin.Context) {
	siteID, err := uuid.Parse(c.Query("site_id"))
	if err != nil {
		h.BadRequest(c, "Invalid site ID")
		return
	}

	var from, to time.Time
	if raw := c.Query("from"); raw != "" {
		from, err = time.Parse(dateLayout, raw)
		if err != nil {
			h.BadRequest(c, "Invalid from date")
			return
		}
	}
	if raw := c.Query("to"); raw != "" {
		to, err = time.Parse(dateLayout, raw)
		if err != nil {
			h.BadRequest(c, "Invalid to date")
			return
		}
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.events.ListBySite(c.Request.Context(), siteID, from, to, req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetByID returns a collection event with its detail lines
func (h *CollectionHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid event ID")
		return
	}

	resp, err := h.events.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes a collection event and its detail lines
func (h *CollectionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid event ID")
		return
	}

	if err := h.events.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
