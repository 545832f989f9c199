// internal/seed/loader.go
package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nplsapp/npls-backend/internal/models"
)

// Seed file names, fixed by the data drop that ships with the app.
const (
	BallsFile     = "balls-seed.json"
	CoresFile     = "rg-seed.json"
	ReferenceFile = "reference-data.json"
)

// LoadRawRows reads a tabular seed file: a JSON array of loosely-typed
// row objects keyed by spreadsheet column label.
func LoadRawRows(path string) ([]map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return rows, nil
}

// LoadReferenceData reads the reference vocabulary file.
func LoadReferenceData(path string) (models.ReferenceData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.ReferenceData{}, fmt.Errorf("read reference file %s: %w", path, err)
	}
	var ref models.ReferenceData
	if err := json.Unmarshal(data, &ref); err != nil {
		return models.ReferenceData{}, fmt.Errorf("parse reference file %s: %w", path, err)
	}
	return ref, nil
}
