// internal/seed/transform.go
package seed

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nplsapp/npls-backend/internal/models"
)

// Raw column labels come straight from the source spreadsheet export,
// including its quirks (the padded release column).
const (
	colBallName    = "Ball Name"
	colBrand       = "Brand"
	colRelease     = "998       Release"
	colReleaseDate = "Approx. Date"
	colCoverstock  = "Coverstock"
	colType        = "Type"
	colFinish      = "Finish"
	colCore        = "Core"
	colMktColor    = "MKT Color Name"
	colFragrance   = "Fragrance"

	colMarketingName = "Marketing Name"
	colCoreNumber    = "Core #"
	colWeightBlock   = "WB #"
	colLine          = "Line"
)

// weightColumns names one weight group of the core sheet. The unsuffixed
// group is the heaviest weight; suffixes .1 through .6 descend from there.
type weightColumns struct {
	wt, rg, diff, inter string
}

var coreWeightColumns = []weightColumns{
	{"Wt", "Rg", "Diff", "Int"},
	{"Wt.1", "Rg.1", "Diff.1", "Int.1"},
	{"Wt.2", "Rg.2", "Diff.2", "Int.2"},
	{"Wt.3", "Rg.3", "Diff.3", "Int.3"},
	{"Wt.4", "Rg.4", "Diff.4", "Int.4"},
	{"Wt.5", "Rg.5", "Diff.5", "Int.5"},
	{"Wt.6", "Rg.6", "Diff.6", "Int.6"},
}

// TransformBalls converts raw product rows into Ball entities. Missing
// optional cells default to empty; the transform never fails. IDs are
// deterministic from row position so repeated ingestion is stable.
func TransformBalls(rows []map[string]interface{}) []models.Ball {
	now := time.Now().UTC().Format(time.RFC3339)
	balls := make([]models.Ball, 0, len(rows))
	for i, row := range rows {
		releaseType := models.ReleaseType(stringCell(row, colRelease))
		if releaseType == "" {
			releaseType = models.ReleaseTypeOEM
		}
		balls = append(balls, models.Ball{
			ID:                 fmt.Sprintf("ball-%d", i+1),
			BallName:           stringCell(row, colBallName),
			Brand:              stringCell(row, colBrand),
			ReleaseType:        releaseType,
			ReleaseDate:        stringCell(row, colReleaseDate),
			Coverstock:         stringCell(row, colCoverstock),
			CoverstockType:     stringCell(row, colType),
			Finish:             stringCell(row, colFinish),
			Core:               stringCell(row, colCore),
			MarketingColorName: stringCell(row, colMktColor),
			Colors:             extractColors(row),
			Fragrance:          stringCell(row, colFragrance),
			CreatedAt:          now,
		})
	}
	return balls
}

// extractColors pulls up to 3 color/shade pairs from the fixed raw column
// pairs, skipping pairs whose color cell is empty.
func extractColors(row map[string]interface{}) []models.BallColor {
	colors := []models.BallColor{}
	for n := 1; n <= 3; n++ {
		color := stringCell(row, fmt.Sprintf("Color %d", n))
		if color == "" {
			continue
		}
		colors = append(colors, models.BallColor{
			ColorNumber: len(colors) + 1,
			Color:       color,
			Shade:       stringCell(row, fmt.Sprintf("Shade %d", n)),
		})
	}
	return colors
}

// TransformCores converts raw core rows into Core entities. A weight group
// contributes a spec when its weight cell is present; zero is a valid
// weight-bearing value, only null/absent cells are skipped.
func TransformCores(rows []map[string]interface{}) []models.Core {
	cores := make([]models.Core, 0, len(rows))
	for i, row := range rows {
		specs := []models.CoreWeightSpec{}
		for _, cols := range coreWeightColumns {
			weight, ok := numberCell(row, cols.wt)
			if !ok {
				continue
			}
			rg, _ := numberCell(row, cols.rg)
			diff, _ := numberCell(row, cols.diff)
			inter, _ := numberCell(row, cols.inter)
			specs = append(specs, models.CoreWeightSpec{
				Weight:       int(weight),
				RG:           rg,
				Differential: diff,
				Intermediate: inter,
			})
		}

		name := stringCell(row, colMarketingName)
		cores = append(cores, models.Core{
			ID:                fmt.Sprintf("core-%d", i+1),
			MarketingName:     name,
			CoreNumber:        stringCell(row, colCoreNumber),
			WeightBlockNumber: stringCell(row, colWeightBlock),
			Line:              stringCell(row, colLine),
			IsSymmetric:       ClassifySymmetry(name),
			Specs:             specs,
		})
	}
	return cores
}

// ClassifySymmetry derives the symmetry flag from a marketing name. A name
// is symmetric only when it mentions "symmetric" without "asymmetric";
// ambiguous or unmatched names default to asymmetric.
func ClassifySymmetry(marketingName string) bool {
	lower := strings.ToLower(marketingName)
	return strings.Contains(lower, "symmetric") && !strings.Contains(lower, "asymmetric")
}

// stringCell reads a cell as a string, rendering numeric cells the way the
// sheet displayed them and treating null/absent as empty.
func stringCell(row map[string]interface{}, key string) string {
	switch v := row[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// numberCell reads a cell as a number. The second return distinguishes a
// present zero from a null/absent cell.
func numberCell(row map[string]interface{}, key string) (float64, bool) {
	switch v := row[key].(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
