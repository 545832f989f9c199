// internal/export/specsheet.go
package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/nplsapp/npls-backend/internal/models"
)

// Framing lines are a fixed contract; exported sheets get diffed against
// previously generated ones, so the layout must not drift.
const (
	heavyRule = "═══════════════════════════════════════════════════════════════"
	lightRule = "───────────────────────────────────────────────────────────────"
)

// GenerateSpecSheet renders the plain-text specification sheet for one
// ball, stamped with the current time.
func GenerateSpecSheet(ball models.Ball) string {
	return GenerateSpecSheetAt(ball, time.Now())
}

// GenerateSpecSheetAt renders the sheet with an explicit generation time.
func GenerateSpecSheetAt(ball models.Ball, now time.Time) string {
	lines := []string{
		heavyRule,
		"                    PRODUCT SPECIFICATION SHEET",
		"                      Storm Products, Inc.",
		heavyRule,
		"",
		"Ball Name:        " + ball.BallName,
		"Brand:            " + ball.Brand,
		"SKU:              " + orNA(ball.SKU),
		"Release Type:     " + string(ball.ReleaseType),
		"Line:             " + orNA(ball.Line),
		"",
		lightRule,
		"                    TECHNICAL SPECIFICATIONS",
		lightRule,
		"",
		"Coverstock:       " + ball.Coverstock,
		"Coverstock Type:  " + orNA(ball.CoverstockType),
		"Finish:           " + ball.Finish,
		"Core:             " + ball.Core,
		"",
		lightRule,
		"                         COLORS",
		lightRule,
		"",
		"Marketing Name:   " + orNA(ball.MarketingColorName),
		"Pin Color:        " + orNA(ball.PinColor),
	}

	for i, color := range ball.Colors {
		entry := fmt.Sprintf("Color %d:          %s", i+1, color.Color)
		if color.Shade != "" {
			entry += " (" + color.Shade + ")"
		}
		lines = append(lines, entry)
	}

	lines = append(lines, "", "Fragrance:        "+orNA(ball.Fragrance))

	if ball.SpecialNotes != "" {
		lines = append(lines,
			"",
			lightRule,
			"                       SPECIAL NOTES",
			lightRule,
			"",
			ball.SpecialNotes,
		)
	}

	if ball.DrillInstructions != "" {
		lines = append(lines,
			"",
			lightRule,
			"                    DRILL INSTRUCTIONS",
			lightRule,
			"",
			ball.DrillInstructions,
		)
	}

	lines = append(lines,
		"",
		heavyRule,
		"Generated: "+now.Format("1/2/2006, 3:04:05 PM"),
		"CONFIDENTIAL - Storm Products, Inc.",
		heavyRule,
	)

	return strings.Join(lines, "\n")
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// FileName derives the download name for a ball's sheet.
func FileName(ball models.Ball) string {
	return unsafeFileChars.ReplaceAllString(ball.BallName, "_") + "_spec_sheet.txt"
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
