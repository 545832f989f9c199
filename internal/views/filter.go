// internal/views/filter.go
package views

import (
	"sort"
	"strings"

	"github.com/nplsapp/npls-backend/internal/models"
)

// BallFilter is the composite predicate behind the product table: a trimmed
// free-text query OR-matched over the searchable fields, AND-combined with
// exact categorical matches. Empty criteria impose no constraint.
type BallFilter struct {
	Search         string `json:"search" form:"search"`
	Brand          string `json:"brand" form:"brand"`
	CoverstockType string `json:"coverstockType" form:"type"`
	ReleaseType    string `json:"releaseType" form:"release_type"`
}

// Matches evaluates the composite predicate against one ball.
func (f BallFilter) Matches(b models.Ball) bool {
	q := strings.ToLower(strings.TrimSpace(f.Search))
	matchesSearch := q == "" ||
		strings.Contains(strings.ToLower(b.BallName), q) ||
		strings.Contains(strings.ToLower(b.Coverstock), q) ||
		strings.Contains(strings.ToLower(b.Core), q) ||
		strings.Contains(strings.ToLower(b.Brand), q)

	matchesBrand := f.Brand == "" || b.Brand == f.Brand
	matchesType := f.CoverstockType == "" || b.CoverstockType == f.CoverstockType
	matchesRelease := f.ReleaseType == "" || string(b.ReleaseType) == f.ReleaseType

	return matchesSearch && matchesBrand && matchesType && matchesRelease
}

// Apply returns the subset of balls matching the filter, preserving order.
func (f BallFilter) Apply(balls []models.Ball) []models.Ball {
	matched := []models.Ball{}
	for _, b := range balls {
		if f.Matches(b) {
			matched = append(matched, b)
		}
	}
	return matched
}

// Ball table sort keys.
const (
	SortByName        = "ballName"
	SortByBrand       = "brand"
	SortByReleaseType = "releaseType"
	SortByCoverstock  = "coverstock"
	SortByCore        = "core"
	SortByFinish      = "finish"
	SortByCreatedAt   = "createdAt"
)

// SortBalls orders a filtered result stably by the given key. Unknown keys
// fall back to creation time; descending order reverses the comparison.
func SortBalls(balls []models.Ball, key, order string) []models.Ball {
	sorted := append([]models.Ball(nil), balls...)
	less := ballLess(key)
	if order == "desc" {
		inner := less
		less = func(a, b models.Ball) bool { return inner(b, a) }
	}
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}

func ballLess(key string) func(a, b models.Ball) bool {
	switch key {
	case SortByName:
		return func(a, b models.Ball) bool { return lowerLess(a.BallName, b.BallName) }
	case SortByBrand:
		return func(a, b models.Ball) bool { return lowerLess(a.Brand, b.Brand) }
	case SortByReleaseType:
		return func(a, b models.Ball) bool { return lowerLess(string(a.ReleaseType), string(b.ReleaseType)) }
	case SortByCoverstock:
		return func(a, b models.Ball) bool { return lowerLess(a.Coverstock, b.Coverstock) }
	case SortByCore:
		return func(a, b models.Ball) bool { return lowerLess(a.Core, b.Core) }
	case SortByFinish:
		return func(a, b models.Ball) bool { return lowerLess(a.Finish, b.Finish) }
	default:
		return func(a, b models.Ball) bool { return a.CreatedAt < b.CreatedAt }
	}
}

func lowerLess(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

// Paginate slices one page out of items. Pages are 1-based; out-of-range
// pages yield an empty slice.
func Paginate[T any](items []T, page, limit int) []T {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		return []T{}
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return append([]T(nil), items[start:end]...)
}
