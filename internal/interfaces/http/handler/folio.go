package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appfolio "github.com/resitrack/backend/internal/application/folio"
	"github.com/resitrack/backend/internal/domain/folio"
	"github.com/resitrack/backend/internal/interfaces/http/dto"
)

// FolioHandler exposes folio reservation and sequence endpoints
type FolioHandler struct {
	BaseHandler
	reservations *appfolio.ReservationService
	allocator    *appfolio.SequenceAllocator
}

// NewFolioHandler creates a folio handler
func NewFolioHandler(reservations *appfolio.ReservationService, allocator *appfolio.SequenceAllocator) *FolioHandler {
	return &FolioHandler{reservations: reservations, allocator: allocator}
}

// RegisterRoutes registers folio routes on the given group
func (h *FolioHandler) RegisterRoutes(rg *gin.RouterGroup) {
	folios := rg.Group("/folios")
	{
		folios.POST("/reservations", h.Reserve)
		folios.GET("/reservations", h.ListAvailable)
		folios.GET("/reservations/stats", h.Stats)
		folios.DELETE("/reservations/:id", h.Delete)
		folios.GET("/sequences/current", h.CurrentSequence)
	}
}

type reserveFolioRequest struct {
	SerialNumber string `json:"serial_number" binding:"required"`
	SiteID       string `json:"site_id" binding:"required,uuid"`
}

// Reserve creates a manual serial reservation
func (h *FolioHandler) Reserve(c *gin.Context) {
	var req reserveFolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	siteID, err := uuid.Parse(req.SiteID)
	if err != nil {
		h.BadRequest(c, "Invalid site ID")
		return
	}

	resp, err := h.reservations.Reserve(c.Request.Context(), appfolio.ReserveFolioRequest{
		SerialNumber: req.SerialNumber,
		SiteID:       siteID,
		CreatedBy:    getOperatorID(c),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// bucketQuery parses the site/month/year triple shared by the bucket
// endpoints. Month defaults to the constant storage bucket, not the calendar
// month, so omitting it matches where reservations actually live.
func (h *FolioHandler) bucketQuery(c *gin.Context) (uuid.UUID, int, int, bool) {
	siteID, err := uuid.Parse(c.Query("site_id"))
	if err != nil {
		h.BadRequest(c, "Invalid site ID")
		return uuid.Nil, 0, 0, false
	}

	month := folio.QuotaBucketMonth
	year := time.Now().Year()

	if raw := c.Query("month"); raw != "" {
		month, err = strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			h.BadRequest(c, "Invalid month")
			return uuid.Nil, 0, 0, false
		}
	}
	if raw := c.Query("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil || year < 2000 {
			h.BadRequest(c, "Invalid year")
			return uuid.Nil, 0, 0, false
		}
	}

	return siteID, month, year, true
}

// ListAvailable lists unused reservations for a bucket
func (h *FolioHandler) ListAvailable(c *gin.Context) {
	siteID, month, year, ok := h.bucketQuery(c)
	if !ok {
		return
	}

	resp, err := h.reservations.ListAvailable(c.Request.Context(), siteID, month, year)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Stats reports usage counters for a bucket
func (h *FolioHandler) Stats(c *gin.Context) {
	siteID, month, year, ok := h.bucketQuery(c)
	if !ok {
		return
	}

	resp, err := h.reservations.Stats(c.Request.Context(), siteID, month, year)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// CurrentSequence reports the automatic serial counter for a site and year
func (h *FolioHandler) CurrentSequence(c *gin.Context) {
	siteID, err := uuid.Parse(c.Query("site_id"))
	if err != nil {
		h.BadRequest(c, "Invalid site ID")
		return
	}

	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil || year < 2000 {
			h.BadRequest(c, "Invalid year")
			return
		}
	}

	seq, err := h.allocator.CurrentSequence(c.Request.Context(), siteID, year)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, appfolio.ToSequenceResponse(seq))
}

// Delete removes an unused reservation
func (h *FolioHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid reservation ID")
		return
	}

	if err := h.reservations.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
