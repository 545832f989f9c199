// internal/export/specsheet_test.go
package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nplsapp/npls-backend/internal/models"
)

func sampleBall() models.Ball {
	return models.Ball{
		BallName:       "Hy-Road Pearl",
		Brand:          "Storm",
		ReleaseType:    models.ReleaseTypeOEM,
		Coverstock:     "R2S Pearl",
		CoverstockType: "Pearl Reactive",
		Finish:         "1500 Polished",
		Core:           "Inverted Fe2",
		Colors: []models.BallColor{
			{ColorNumber: 1, Color: "Aqua", Shade: "Light"},
			{ColorNumber: 2, Color: "Silver"},
		},
	}
}

func TestSpecSheetLayout(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 5, 0, time.UTC)
	sheet := GenerateSpecSheetAt(sampleBall(), now)

	assert.Contains(t, sheet, "                    PRODUCT SPECIFICATION SHEET")
	assert.Contains(t, sheet, "Ball Name:        Hy-Road Pearl")
	assert.Contains(t, sheet, "Brand:            Storm")
	assert.Contains(t, sheet, "Release Type:     OEM")
	assert.Contains(t, sheet, "Coverstock:       R2S Pearl")
	assert.Contains(t, sheet, "Core:             Inverted Fe2")
	assert.Contains(t, sheet, "Generated: 3/15/2026, 2:30:05 PM")
	assert.Contains(t, sheet, "CONFIDENTIAL - Storm Products, Inc.")
}

func TestSpecSheetMissingFieldsShowNA(t *testing.T) {
	sheet := GenerateSpecSheetAt(sampleBall(), time.Now())

	assert.Contains(t, sheet, "SKU:              N/A")
	assert.Contains(t, sheet, "Line:             N/A")
	assert.Contains(t, sheet, "Fragrance:        N/A")
}

func TestSpecSheetColors(t *testing.T) {
	sheet := GenerateSpecSheetAt(sampleBall(), time.Now())

	assert.Contains(t, sheet, "Color 1:          Aqua (Light)")
	assert.Contains(t, sheet, "Color 2:          Silver")
	assert.NotContains(t, sheet, "Silver (")
}

func TestSpecSheetOptionalSections(t *testing.T) {
	plain := GenerateSpecSheetAt(sampleBall(), time.Now())
	assert.NotContains(t, plain, "SPECIAL NOTES")
	assert.NotContains(t, plain, "DRILL INSTRUCTIONS")

	ball := sampleBall()
	ball.SpecialNotes = "Limited release."
	ball.DrillInstructions = "Standard pin-up layout."
	full := GenerateSpecSheetAt(ball, time.Now())

	assert.Contains(t, full, "                       SPECIAL NOTES")
	assert.Contains(t, full, "Limited release.")
	assert.Contains(t, full, "                    DRILL INSTRUCTIONS")
	assert.Contains(t, full, "Standard pin-up layout.")

	// Notes come before drill instructions
	assert.Less(t,
		strings.Index(full, "SPECIAL NOTES"),
		strings.Index(full, "DRILL INSTRUCTIONS"))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Hy_Road_Pearl_spec_sheet.txt", FileName(models.Ball{BallName: "Hy-Road Pearl"}))
	assert.Equal(t, "Zen_spec_sheet.txt", FileName(models.Ball{BallName: "Zen"}))
	assert.Equal(t, "X_Factor__2_spec_sheet.txt", FileName(models.Ball{BallName: "X-Factor #2"}))
}
