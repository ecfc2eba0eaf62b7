package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appmanifest "github.com/resitrack/backend/internal/application/manifest"
	"github.com/resitrack/backend/internal/interfaces/http/dto"
)

const dateLayout = "2006-01-02"

// ManifestHandler exposes manifest endpoints
type ManifestHandler struct {
	BaseHandler
	manifests  *appmanifest.ManifestService
	aggregator *appmanifest.PeriodAggregator
}

// NewManifestHandler creates a manifest handler
func NewManifestHandler(manifests *appmanifest.ManifestService, aggregator *appmanifest.PeriodAggregator) *ManifestHandler {
	return &ManifestHandler{manifests: manifests, aggregator: aggregator}
}

// RegisterRoutes registers manifest routes on the given group
func (h *ManifestHandler) RegisterRoutes(rg *gin.RouterGroup) {
	manifests := rg.Group("/manifests")
	{
		manifests.POST("", h.Create)
		manifests.GET("", h.List)
		manifests.GET("/aggregation", h.Aggregate)
		manifests.GET("/serial/:serial", h.GetBySerial)
		manifests.GET("/site/:site_id", h.ListBySite)
		manifests.GET("/:id", h.GetByID)
		manifests.PATCH("/:id", h.UpdatePDF)
		manifests.DELETE("/:id", h.Delete)
	}
}

type createManifestRequest struct {
	GeneratorSiteID string `json:"generator_site_id" binding:"required,uuid"`
	DriverID        string `json:"driver_id" binding:"required,uuid"`
	VehicleID       string `json:"vehicle_id" binding:"required,uuid"`
	DestinationID   string `json:"destination_id" binding:"required,uuid"`
	PeriodStart     string `json:"period_start" binding:"required"`
	PeriodEnd       string `json:"period_end" binding:"required"`
	IssueDate       string `json:"issue_date"`
	ReservedSerial  string `json:"reserved_serial"`
}

// Create issues a new manifest for the requested period
func (h *ManifestHandler) Create(c *gin.Context) {
	var req createManifestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	siteID, _ := uuid.Parse(req.GeneratorSiteID)
	driverID, _ := uuid.Parse(req.DriverID)
	vehicleID, _ := uuid.Parse(req.VehicleID)
	destinationID, _ := uuid.Parse(req.DestinationID)

	periodStart, err := time.Parse(dateLayout, req.PeriodStart)
	if err != nil {
		h.BadRequest(c, "Invalid period start date")
		return
	}
	periodEnd, err := time.Parse(dateLayout, req.PeriodEnd)
	if err != nil {
		h.BadRequest(c, "Invalid period end date")
		return
	}

	var issueDate time.Time
	if req.IssueDate != "" {
		issueDate, err = time.Parse(dateLayout, req.IssueDate)
		if err != nil {
			h.BadRequest(c, "Invalid issue date")
			return
		}
	}

	resp, err := h.manifests.Create(c.Request.Context(), appmanifest.CreateManifestRequest{
		GeneratorSiteID: siteID,
		DriverID:        driverID,
		VehicleID:       vehicleID,
		DestinationID:   destinationID,
		PeriodStart:     periodStart,
		PeriodEnd:       periodEnd,
		IssueDate:       issueDate,
		ReservedSerial:  req.ReservedSerial,
		CreatedBy:       getOperatorID(c),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// List returns manifests matching the filter parameters
func (h *ManifestHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := req.ToFilter()
	for _, key := range []string{"site_id", "serial_number", "issued_from", "issued_to"} {
		if value := c.Query(key); value != "" {
			filter.Filters[key] = value
		}
	}

	result, err := h.manifests.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Aggregate previews the per-category totals for a site and period
func (h *ManifestHandler) Aggregate(c *gin.Context) {
	siteID, err := uuid.Parse(c.Query("site_id"))
	if err != nil {
		h.BadRequest(c, "Invalid site ID")
		return
	}

	from, err := time.Parse(dateLayout, c.Query("from"))
	if err != nil {
		h.BadRequest(c, "Invalid from date")
		return
	}
	to, err := time.Parse(dateLayout, c.Query("to"))
	if err != nil {
		h.BadRequest(c, "Invalid to date")
		return
	}

	resp, err := h.aggregator.AggregateResponse(c.Request.Context(), siteID, from, to)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// ListBySite returns manifests for one generator site
func (h *ManifestHandler) ListBySite(c *gin.Context) {
	siteID, err := uuid.Parse(c.Param("site_id"))
	if err != nil {
		h.BadRequest(c, "Invalid site ID")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.manifests.ListBySite(c.Request.Context(), siteID, req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetByID returns a manifest by its ID
func (h *ManifestHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid manifest ID")
		return
	}

	resp, err := h.manifests.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// GetBySerial returns a manifest by its serial number
func (h *ManifestHandler) GetBySerial(c *gin.Context) {
	resp, err := h.manifests.GetBySerial(c.Request.Context(), c.Param("serial"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

type updatePDFRequest struct {
	PDFGenerated bool    `json:"pdf_generated"`
	PDFPath      *string `json:"pdf_path"`
}

// UpdatePDF records whether a PDF was generated and where it lives
func (h *ManifestHandler) UpdatePDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid manifest ID")
		return
	}

	var req updatePDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	resp, err := h.manifests.UpdatePDF(c.Request.Context(), id, appmanifest.UpdatePDFRequest{
		PDFGenerated: req.PDFGenerated,
		PDFPath:      req.PDFPath,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes a manifest and releases any bound reservation
func (h *ManifestHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid manifest ID")
		return
	}

	if err := h.manifests.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
