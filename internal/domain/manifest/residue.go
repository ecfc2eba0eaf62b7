package manifest

import "github.com/shopspring/decimal"

// Residue category codes, in catalog order
const (
	CategoryCardboard       = "CARDBOARD"
	CategoryGlass           = "GLASS"
	CategoryPET             = "PET"
	CategoryRigidPlastic    = "RIGID_PLASTIC"
	CategoryFilmPlastic     = "FILM_PLASTIC"
	CategoryCompositeCarton = "COMPOSITE_CARTON"
	CategoryAluminum        = "ALUMINUM"
	CategoryScrapMetal      = "SCRAP_METAL"
	CategoryArchivePaper    = "ARCHIVE_PAPER"
)

// ResidueCategory is one entry of the fixed valorizable-residue catalog
type ResidueCategory struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// catalog is the fixed nine-category valorizable catalog. Order is part of the
// regulatory document layout and must never change.
var catalog = []ResidueCategory{
	{Code: CategoryCardboard, Name: "Cardboard", Position: 1},
	{Code: CategoryGlass, Name: "Glass", Position: 2},
	{Code: CategoryPET, Name: "PET", Position: 3},
	{Code: CategoryRigidPlastic, Name: "Rigid plastic", Position: 4},
	{Code: CategoryFilmPlastic, Name: "Film plastic", Position: 5},
	{Code: CategoryCompositeCarton, Name: "Composite carton", Position: 6},
	{Code: CategoryAluminum, Name: "Aluminum", Position: 7},
	{Code: CategoryScrapMetal, Name: "Scrap metal", Position: 8},
	{Code: CategoryArchivePaper, Name: "Archive paper", Position: 9},
}

// Categories returns the fixed residue catalog in catalog order
func Categories() []ResidueCategory {
	out := make([]ResidueCategory, len(catalog))
	copy(out, catalog)
	return out
}

// CategoryByCode looks up a catalog entry by its stable code
func CategoryByCode(code string) (ResidueCategory, bool) {
	for _, c := range catalog {
		if c.Code == code {
			return c, true
		}
	}
	return ResidueCategory{}, false
}

// ResidueAmount is the collected kilograms for one catalog category
type ResidueAmount struct {
	CategoryCode string          `json:"category_code"`
	Kilograms    decimal.Decimal `json:"kilograms"`
}

// ResidueBreakdown always holds one entry per catalog category, in catalog
// order, zero-filled for categories with no collected quantity.
type ResidueBreakdown []ResidueAmount

// EmptyBreakdown returns a breakdown with all nine categories at zero
func EmptyBreakdown() ResidueBreakdown {
	out := make(ResidueBreakdown, len(catalog))
	for i, c := range catalog {
		out[i] = ResidueAmount{CategoryCode: c.Code, Kilograms: decimal.Zero}
	}
	return out
}

// NewBreakdown projects per-category sums onto the full catalog. Categories
// absent from sums come out as zero; codes outside the catalog are dropped.
func NewBreakdown(sums map[string]decimal.Decimal) ResidueBreakdown {
	out := EmptyBreakdown()
	for i := range out {
		if qty, ok := sums[out[i].CategoryCode]; ok {
			out[i].Kilograms = qty
		}
	}
	return out
}

// TotalKilograms sums all category quantities
func (b ResidueBreakdown) TotalKilograms() decimal.Decimal {
	total := decimal.Zero
	for _, a := range b {
		total = total.Add(a.Kilograms)
	}
	return total
}

// IsComplete reports whether the breakdown covers the catalog exactly, in order
func (b ResidueBreakdown) IsComplete() bool {
	if len(b) != len(catalog) {
		return false
	}
	for i, a := range b {
		if a.CategoryCode != catalog[i].Code {
			return false
		}
	}
	return true
}
