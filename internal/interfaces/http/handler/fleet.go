package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appregistry "github.com/resitrack/backend/internal/application/registry"
	"github.com/resitrack/backend/internal/interfaces/http/dto"
)

// FleetHandler exposes driver and vehicle endpoints
type FleetHandler struct {
	BaseHandler
	fleet *appregistry.FleetService
}

// NewFleetHandler creates a fleet handler
func NewFleetHandler(fleet *appregistry.FleetService) *FleetHandler {
	return &FleetHandler{fleet: fleet}
}

// RegisterRoutes registers driver and vehicle routes on the given group
func (h *FleetHandler) RegisterRoutes(rg *gin.RouterGroup) {
	drivers := rg.Group("/registry/drivers")
	{
		drivers.POST("", h.CreateDriver)
		drivers.GET("", h.ListDrivers)
		drivers.GET("/:id", h.GetDriver)
		drivers.PUT("/:id", h.UpdateDriver)
		drivers.DELETE("/:id", h.DeleteDriver)
	}

	vehicles := rg.Group("/registry/vehicles")
	{
		vehicles.POST("", h.CreateVehicle)
		vehicles.GET("", h.ListVehicles)
		vehicles.GET("/:id", h.GetVehicle)
		vehicles.PUT("/:id", h.UpdateVehicle)
		vehicles.DELETE("/:id", h.DeleteVehicle)
	}
}

type createDriverRequest struct {
	Name          string `json:"name" binding:"required"`
	LicenseNumber string `json:"license_number"`
}

// CreateDriver registers a collection driver
func (h *FleetHandler) CreateDriver(c *gin.Context) {
	var req createDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	resp, err := h.fleet.CreateDriver(c.Request.Context(), appregistry.CreateDriverRequest{
		Name:          req.Name,
		LicenseNumber: req.LicenseNumber,
		CreatedBy:     getOperatorID(c),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListDrivers returns drivers matching the filter parameters
func (h *FleetHandler) ListDrivers(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := req.ToFilter()
	if active := c.Query("active"); active != "" {
		filter.Filters["active"] = active
	}

	result, err := h.fleet.ListDrivers(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetDriver returns a driver by ID
func (h *FleetHandler) GetDriver(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid driver ID")
		return
	}

	resp, err := h.fleet.GetDriver(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

type updateDriverRequest struct {
	Name          string `json:"name" binding:"required"`
	LicenseNumber string `json:"license_number"`
	Active        *bool  `json:"active"`
}

// UpdateDriver changes the driver fields
func (h *FleetHandler) UpdateDriver(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid driver ID")
		return
	}

	var req updateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	resp, err := h.fleet.UpdateDriver(c.Request.Context(), id, appregistry.UpdateDriverRequest{
		Name:          req.Name,
		LicenseNumber: req.LicenseNumber,
		Active:        req.Active,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// DeleteDriver removes a driver
func (h *FleetHandler) DeleteDriver(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid driver ID")
		return
	}

	if err := h.fleet.DeleteDriver(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

type createVehicleRequest struct {
	Plates     string          `json:"plates" binding:"required"`
	Model      string          `json:"model"`
	CapacityKg decimal.Decimal `json:"capacity_kg"`
}

// CreateVehicle registers a collection vehicle
func (h *FleetHandler) CreateVehicle(c *gin.Context) {
	var req createVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	resp, err := h.fleet.CreateVehicle(c.Request.Context(), appregistry.CreateVehicleRequest{
		Plates:     req.Plates,
		Model:      req.Model,
		CapacityKg: req.CapacityKg,
		CreatedBy:  getOperatorID(c),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListVehicles returns vehicles matching the filter parameters
func (h *FleetHandler) ListVehicles(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := req.ToFilter()
	if active := c.Query("active"); active != "" {
		filter.Filters["active"] = active
	}

	result, err := h.fleet.ListVehicles(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetVehicle returns a vehicle by ID
func (h *FleetHandler) GetVehicle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID")
		return
	}

	resp, err := h.fleet.GetVehicle(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

type updateVehicleRequest struct {
	Plates     string          `json:"plates" binding:"required"`
	Model      string          `json:"model"`
	CapacityKg decimal.Decimal `json:"capacity_kg"`
	Active     *bool           `json:"active"`
}

// UpdateVehicle changes the vehicle fields
func (h *FleetHandler) UpdateVehicle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID")
		return
	}

	var req updateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	resp, err := h.fleet.UpdateVehicle(c.Request.Context(), id, appregistry.UpdateVehicleRequest{
		Plates:     req.Plates,
		Model:      req.Model,
		CapacityKg: req.CapacityKg,
		Active:     req.Active,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// DeleteVehicle removes a vehicle
func (h *FleetHandler) DeleteVehicle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID")
		return
	}

	if err := h.fleet.DeleteVehicle(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
