package folio

import "github.com/google/uuid"

// FolioSequence is the monotonic counter behind automatic serial allocation.
// One row per (site, year); LastValue only ever moves forward and is advanced
// by a single atomic upsert in persistence, never read-modify-write.
type FolioSequence struct {
	SiteID    uuid.UUID `json:"site_id"`
	Year      int       `json:"year"`
	LastValue int64     `json:"last_value"`
}
