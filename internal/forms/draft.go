// internal/forms/draft.go
package forms

import (
	"time"

	"github.com/nplsapp/npls-backend/internal/models"
	"github.com/nplsapp/npls-backend/internal/services"
)

// MaxColors bounds the repeating color sub-list on the product form.
const MaxColors = 4

// BallDraft is the editable, form-shaped working copy of a ball. Dates are
// typed for date widgets; everything else maps 1:1 onto the entity.
type BallDraft struct {
	BallName    string     `json:"ballName" validate:"required"`
	Brand       string     `json:"brand" validate:"required"`
	Line        string     `json:"line"`
	SKU         string     `json:"sku"`
	ReleaseType string     `json:"releaseType" validate:"omitempty,oneof=OEM WWR"`
	ReleaseDate *time.Time `json:"releaseDate"`

	Coverstock       string `json:"coverstock"`
	CoverstockType   string `json:"coverstockType"`
	Finish           string `json:"finish"`
	ProductionFinish string `json:"productionFinish"`

	Core              string `json:"core"`
	CoreNumber        string `json:"coreNumber"`
	WeightBlockNumber string `json:"weightBlockNumber"`

	MarketingColorName string       `json:"marketingColorName"`
	PinColor           string       `json:"pinColor"`
	Colors             []ColorDraft `json:"colors" validate:"max=4,dive"`

	Fragrance          string `json:"fragrance"`
	FragranceMarketing string `json:"fragranceMarketing"`

	Logos models.BallLogos `json:"logos"`

	SpecialNotes      string `json:"specialNotes"`
	DrillInstructions string `json:"drillInstructions"`
}

type ColorDraft struct {
	ColorNumber int    `json:"colorNumber"`
	Color       string `json:"color"`
	Shade       string `json:"shade"`
}

// Binder maps balls to and from drafts and resolves the free-text core
// field against the core catalog.
type Binder struct {
	cores *services.CoreService
}

func NewBinder(cores *services.CoreService) *Binder {
	return &Binder{cores: cores}
}

// ToDraft maps a ball onto an editable draft. A ball without colors gets a
// single empty color row so the form always shows one.
func (b *Binder) ToDraft(ball models.Ball) BallDraft {
	draft := BallDraft{
		BallName:           ball.BallName,
		Brand:              ball.Brand,
		Line:               ball.Line,
		SKU:                ball.SKU,
		ReleaseType:        string(ball.ReleaseType),
		ReleaseDate:        parseDate(ball.ReleaseDate),
		Coverstock:         ball.Coverstock,
		CoverstockType:     ball.CoverstockType,
		Finish:             ball.Finish,
		ProductionFinish:   ball.ProductionFinish,
		Core:               ball.Core,
		CoreNumber:         ball.CoreNumber,
		WeightBlockNumber:  ball.WeightBlockNumber,
		MarketingColorName: ball.MarketingColorName,
		PinColor:           ball.PinColor,
		Fragrance:          ball.Fragrance,
		FragranceMarketing: ball.FragranceMarketing,
		SpecialNotes:       ball.SpecialNotes,
		DrillInstructions:  ball.DrillInstructions,
	}
	if ball.Logos != nil {
		draft.Logos = *ball.Logos
	}
	for _, c := range ball.Colors {
		draft.Colors = append(draft.Colors, ColorDraft{
			ColorNumber: c.ColorNumber,
			Color:       c.Color,
			Shade:       c.Shade,
		})
	}
	if len(draft.Colors) == 0 {
		draft.Colors = []ColorDraft{{ColorNumber: 1}}
	}
	return draft
}

// FromDraft reverses the mapping into an entity patch. Color entries
// without a color value are dropped and the rest renumbered; when the
// free-text core field resolves against the catalog, the matched core's
// numbers are denormalized onto the patch as a snapshot taken now.
func (b *Binder) FromDraft(draft BallDraft) models.Ball {
	patch := models.Ball{
		BallName:           draft.BallName,
		Brand:              draft.Brand,
		Line:               draft.Line,
		SKU:                draft.SKU,
		ReleaseType:        models.ReleaseType(draft.ReleaseType),
		ReleaseDate:        formatDate(draft.ReleaseDate),
		Coverstock:         draft.Coverstock,
		CoverstockType:     draft.CoverstockType,
		Finish:             draft.Finish,
		ProductionFinish:   draft.ProductionFinish,
		Core:               draft.Core,
		CoreNumber:         draft.CoreNumber,
		WeightBlockNumber:  draft.WeightBlockNumber,
		MarketingColorName: draft.MarketingColorName,
		PinColor:           draft.PinColor,
		Colors:             filterColors(draft.Colors),
		Fragrance:          draft.Fragrance,
		FragranceMarketing: draft.FragranceMarketing,
		SpecialNotes:       draft.SpecialNotes,
		DrillInstructions:  draft.DrillInstructions,
	}
	if patch.ReleaseType == "" {
		patch.ReleaseType = models.ReleaseTypeOEM
	}
	logos := draft.Logos
	patch.Logos = &logos

	if core, ok := b.ResolveCoreByName(draft.Core); ok {
		patch.CoreNumber = core.CoreNumber
		patch.WeightBlockNumber = core.WeightBlockNumber
	}
	return patch
}

// ResolveCoreByName finds the first core whose marketing name contains the
// free-text core field, case-insensitively.
func (b *Binder) ResolveCoreByName(name string) (models.Core, bool) {
	if name == "" {
		return models.Core{}, false
	}
	return b.cores.GetByName(name)
}

// AddColor appends an empty color row if the bound is not yet reached.
func (d *BallDraft) AddColor() {
	if len(d.Colors) >= MaxColors {
		return
	}
	d.Colors = append(d.Colors, ColorDraft{ColorNumber: len(d.Colors) + 1})
}

// RemoveColor deletes the row at index and renumbers the remainder so
// colorNumber is always the 1-based position.
func (d *BallDraft) RemoveColor(index int) {
	if index < 0 || index >= len(d.Colors) {
		return
	}
	d.Colors = append(d.Colors[:index], d.Colors[index+1:]...)
	for i := range d.Colors {
		d.Colors[i].ColorNumber = i + 1
	}
}

// filterColors keeps only entries with a non-empty color value, renumbered.
func filterColors(colors []ColorDraft) []models.BallColor {
	kept := []models.BallColor{}
	for _, c := range colors {
		if c.Color == "" {
			continue
		}
		kept = append(kept, models.BallColor{
			ColorNumber: len(kept) + 1,
			Color:       c.Color,
			Shade:       c.Shade,
		})
	}
	return kept
}

// Stored dates are RFC 3339 but older records carry bare dates.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
