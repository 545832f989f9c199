// internal/views/filter_test.go
package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nplsapp/npls-backend/internal/models"
)

func catalog() []models.Ball {
	return []models.Ball{
		{ID: "ball-1", BallName: "Hy-Road Pearl", Brand: "Storm", Coverstock: "R2S Pearl", CoverstockType: "Pearl Reactive", ReleaseType: models.ReleaseTypeOEM, CreatedAt: "2024-03-01T00:00:00Z"},
		{ID: "ball-2", BallName: "Zen", Brand: "900 Global", Coverstock: "S84 Pearl", CoverstockType: "Pearl Reactive", ReleaseType: models.ReleaseTypeWWR, CreatedAt: "2024-02-01T00:00:00Z"},
		{ID: "ball-3", BallName: "Clone", Brand: "Roto Grip", Coverstock: "eTrax Solid", CoverstockType: "Solid Reactive", ReleaseType: models.ReleaseTypeOEM, CreatedAt: "2024-01-01T00:00:00Z"},
	}
}

func TestFilterCompositeCriteria(t *testing.T) {
	// Free text AND categorical must both match
	filter := BallFilter{Search: "pearl", Brand: "Storm"}

	matched := filter.Apply(catalog())
	require.Len(t, matched, 1)
	assert.Equal(t, "ball-1", matched[0].ID)
}

func TestFilterEmptyMatchesAll(t *testing.T) {
	matched := BallFilter{}.Apply(catalog())
	assert.Len(t, matched, 3)
}

func TestFilterSearchTrimsAndIgnoresCase(t *testing.T) {
	matched := BallFilter{Search: "  HY-ROAD  "}.Apply(catalog())
	require.Len(t, matched, 1)
	assert.Equal(t, "ball-1", matched[0].ID)
}

func TestFilterSearchCoversAllFields(t *testing.T) {
	// Coverstock and brand are searchable too
	assert.Len(t, BallFilter{Search: "etrax"}.Apply(catalog()), 1)
	assert.Len(t, BallFilter{Search: "roto"}.Apply(catalog()), 1)
}

func TestFilterCategoricalsAreExact(t *testing.T) {
	assert.Len(t, BallFilter{CoverstockType: "Pearl Reactive"}.Apply(catalog()), 2)
	assert.Len(t, BallFilter{ReleaseType: "WWR"}.Apply(catalog()), 1)
	assert.Empty(t, BallFilter{Brand: "storm"}.Apply(catalog()))
}

func TestFilterNoMatches(t *testing.T) {
	assert.Empty(t, BallFilter{Search: "hammer"}.Apply(catalog()))
}

func TestSortBallsByName(t *testing.T) {
	sorted := SortBalls(catalog(), SortByName, "asc")
	assert.Equal(t, "Clone", sorted[0].BallName)
	assert.Equal(t, "Hy-Road Pearl", sorted[1].BallName)
	assert.Equal(t, "Zen", sorted[2].BallName)

	desc := SortBalls(catalog(), SortByName, "desc")
	assert.Equal(t, "Zen", desc[0].BallName)
}

func TestSortBallsUnknownKeyFallsBackToCreatedAt(t *testing.T) {
	sorted := SortBalls(catalog(), "bogus", "asc")
	assert.Equal(t, "ball-3", sorted[0].ID)
	assert.Equal(t, "ball-1", sorted[2].ID)
}

func TestSortBallsDoesNotMutateInput(t *testing.T) {
	balls := catalog()
	SortBalls(balls, SortByName, "asc")
	assert.Equal(t, "ball-1", balls[0].ID)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Paginate(items, 1, 2))
	assert.Equal(t, []int{3, 4}, Paginate(items, 2, 2))
	assert.Equal(t, []int{5}, Paginate(items, 3, 2))
	assert.Empty(t, Paginate(items, 4, 2))
	assert.Equal(t, []int{1, 2}, Paginate(items, 0, 2))
	assert.Empty(t, Paginate(items, 1, 0))
}
