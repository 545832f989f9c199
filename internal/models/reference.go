// internal/models/reference.go
package models

// ReferenceData is the controlled vocabulary backing form dropdowns.
// Each list is free of duplicates; appends are no-ops for existing values.
type ReferenceData struct {
	Coverstocks     []string      `json:"coverstocks"`
	Finishes        []string      `json:"finishes"`
	WeightBlocks    []string      `json:"weightBlocks"`
	Brands          []string      `json:"brands"`
	Lines           []string      `json:"lines"`
	CoverstockTypes []string      `json:"coverstockTypes"`
	Colors          []ColorOption `json:"colors,omitempty"`
	Fragrances      []string      `json:"fragrances,omitempty"`
	Logos           []string      `json:"logos,omitempty"`
}

type ColorOption struct {
	Name   string   `json:"name"`
	Shades []string `json:"shades,omitempty"`
	Hex    string   `json:"hex,omitempty"`
}
