// internal/models/ball.go
package models

type ReleaseType string

const (
	ReleaseTypeOEM ReleaseType = "OEM"
	ReleaseTypeWWR ReleaseType = "WWR"
)

// Ball is one marketable product in the catalog. Dates and audit stamps are
// stored as RFC 3339 strings so the record round-trips through the cache
// without losing the original representation.
type Ball struct {
	ID          string      `json:"id,omitempty"`
	SKU         string      `json:"sku,omitempty"`
	BallName    string      `json:"ballName"`
	Brand       string      `json:"brand"`
	Line        string      `json:"line,omitempty"`
	ReleaseType ReleaseType `json:"releaseType"`
	ReleaseDate string      `json:"releaseDate,omitempty"`

	Coverstock       string `json:"coverstock"`
	CoverstockType   string `json:"coverstockType,omitempty"`
	Finish           string `json:"finish"`
	ProductionFinish string `json:"productionFinish,omitempty"`

	// Core is the free-text marketing name; CoreNumber and WeightBlockNumber
	// are denormalized from the matching Core record at selection time.
	Core              string `json:"core"`
	CoreNumber        string `json:"coreNumber,omitempty"`
	WeightBlockNumber string `json:"weightBlockNumber,omitempty"`

	MarketingColorName string      `json:"marketingColorName,omitempty"`
	PinColor           string      `json:"pinColor,omitempty"`
	Colors             []BallColor `json:"colors"`

	Fragrance          string `json:"fragrance,omitempty"`
	FragranceMarketing string `json:"fragranceMarketing,omitempty"`

	Logos *BallLogos `json:"logos,omitempty"`

	SpecialNotes      string `json:"specialNotes,omitempty"`
	DrillInstructions string `json:"drillInstructions,omitempty"`

	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// BallColor is one entry of the ordered color list (at most 4 per ball).
// ColorNumber is always the 1-based position within the list.
type BallColor struct {
	ColorNumber int    `json:"colorNumber"`
	Color       string `json:"color"`
	Shade       string `json:"shade,omitempty"`
}

// BallLogos holds the fixed set of engraving positions.
type BallLogos struct {
	Top   LogoConfig `json:"top,omitempty"`
	Left  LogoConfig `json:"left,omitempty"`
	Right LogoConfig `json:"right,omitempty"`
	Mid   LogoConfig `json:"mid,omitempty"`
	PSA   LogoConfig `json:"psa,omitempty"`
}

type LogoConfig struct {
	Logo  string `json:"logo,omitempty"`
	Color string `json:"color,omitempty"`
}

// BallListItem is the trimmed projection used by list tables.
type BallListItem struct {
	ID                 string      `json:"id,omitempty"`
	BallName           string      `json:"ballName"`
	Brand              string      `json:"brand"`
	ReleaseType        ReleaseType `json:"releaseType"`
	ReleaseDate        string      `json:"releaseDate,omitempty"`
	Coverstock         string      `json:"coverstock"`
	CoverstockType     string      `json:"coverstockType,omitempty"`
	Core               string      `json:"core"`
	Finish             string      `json:"finish"`
	MarketingColorName string      `json:"marketingColorName,omitempty"`
	Fragrance          string      `json:"fragrance,omitempty"`
}

// ListItem projects the ball onto its table row shape.
func (b Ball) ListItem() BallListItem {
	return BallListItem{
		ID:                 b.ID,
		BallName:           b.BallName,
		Brand:              b.Brand,
		ReleaseType:        b.ReleaseType,
		ReleaseDate:        b.ReleaseDate,
		Coverstock:         b.Coverstock,
		CoverstockType:     b.CoverstockType,
		Core:               b.Core,
		Finish:             b.Finish,
		MarketingColorName: b.MarketingColorName,
		Fragrance:          b.Fragrance,
	}
}
