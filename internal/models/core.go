// internal/models/core.go
package models

import "strconv"

// Core is one physical weight-block design. IsSymmetric is classified once
// at ingestion from the marketing name and stored, not recomputed per read.
type Core struct {
	ID                string           `json:"id,omitempty"`
	MarketingName     string           `json:"marketingName"`
	CoreNumber        string           `json:"coreNumber"`
	WeightBlockNumber string           `json:"weightBlockNumber"`
	Line              string           `json:"line,omitempty"`
	IsSymmetric       bool             `json:"isSymmetric"`
	Specs             []CoreWeightSpec `json:"specs"`
}

// CoreWeightSpec carries the RG profile for one operating weight.
// Weights within a core are unique.
type CoreWeightSpec struct {
	Weight       int     `json:"weight"`
	RG           float64 `json:"rg"`
	Differential float64 `json:"differential"`
	Intermediate float64 `json:"intermediate"`
}

// WeightRange renders the spec coverage for list views, e.g. "10-16 lbs".
func (c Core) WeightRange() string {
	if len(c.Specs) == 0 {
		return ""
	}
	min, max := c.Specs[0].Weight, c.Specs[0].Weight
	for _, s := range c.Specs[1:] {
		if s.Weight < min {
			min = s.Weight
		}
		if s.Weight > max {
			max = s.Weight
		}
	}
	if min == max {
		return strconv.Itoa(min) + " lbs"
	}
	return strconv.Itoa(min) + "-" + strconv.Itoa(max) + " lbs"
}
