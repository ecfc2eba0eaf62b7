package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// ReservationSortFields contains allowed sort fields for folio reservations
var ReservationSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"serial_number": true,
	"used":          true,
	"used_at":       true,
	"year":          true,
}

// ManifestSortFields contains allowed sort fields for manifests
var ManifestSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"serial_number": true,
	"issue_date":    true,
	"period_start":  true,
	"period_end":    true,
}

// CollectionEventSortFields contains allowed sort fields for collection events
var CollectionEventSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"event_date": true,
}

// SiteSortFields contains allowed sort fields for generator sites
var SiteSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"name":          true,
	"serial_prefix": true,
	"city":          true,
	"active":        true,
}

// DriverSortFields contains allowed sort fields for collection drivers
var DriverSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"name":           true,
	"license_number": true,
	"active":         true,
}

// VehicleSortFields contains allowed sort fields for vehicles
var VehicleSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"plates":      true,
	"model":       true,
	"capacity_kg": true,
	"active":      true,
}

// DestinationSortFields contains allowed sort fields for final destinations
var DestinationSortFields = map[string]bool{
	"id":                 true,
	"created_at":         true,
	"updated_at":         true,
	"name":               true,
	"authorization_code": true,
	"city":               true,
	"active":             true,
}
