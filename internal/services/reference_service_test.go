// internal/services/reference_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nplsapp/npls-backend/internal/models"
)

func referenceSeed() models.ReferenceData {
	return models.ReferenceData{
		Coverstocks:     []string{"R2S Pearl", "GI-20"},
		Finishes:        []string{"1500 Polished"},
		WeightBlocks:    []string{"WB-1"},
		Brands:          []string{"Storm"},
		Lines:           []string{"Premier"},
		CoverstockTypes: []string{"Pearl Reactive"},
	}
}

func TestReferenceServiceLoadFromSeed(t *testing.T) {
	store := newTestStore(t)
	seedDir := t.TempDir()
	writeSeedFile(t, seedDir, "reference-data.json", referenceSeed())

	svc := NewReferenceDataService(store, seedDir, time.Hour)
	svc.Load()

	data := svc.Get()
	assert.Equal(t, []string{"R2S Pearl", "GI-20"}, data.Coverstocks)
	assert.False(t, svc.Loading())
}

func TestReferenceServiceLoadPrefersCacheWithinTTL(t *testing.T) {
	store := newTestStore(t)
	seedDir := t.TempDir()
	writeSeedFile(t, seedDir, "reference-data.json", referenceSeed())

	first := NewReferenceDataService(store, seedDir, time.Hour)
	first.Load()

	// Second service has no seed file; a fresh cached snapshot must carry it
	second := NewReferenceDataService(store, t.TempDir(), time.Hour)
	second.Load()
	assert.Equal(t, referenceSeed().Coverstocks, second.Get().Coverstocks)
}

func TestReferenceServiceExpiredCacheFallsThrough(t *testing.T) {
	store := newTestStore(t)
	seedDir := t.TempDir()
	writeSeedFile(t, seedDir, "reference-data.json", referenceSeed())

	first := NewReferenceDataService(store, seedDir, 10*time.Millisecond)
	first.Load()
	time.Sleep(20 * time.Millisecond)

	// Cache window closed and no seed file: built-in defaults apply
	second := NewReferenceDataService(store, t.TempDir(), 10*time.Millisecond)
	second.Load()
	assert.Equal(t, DefaultReferenceData().Brands, second.Get().Brands)
	assert.Empty(t, second.Get().Coverstocks)
}

func TestReferenceServiceDefaultsWhenSeedMissing(t *testing.T) {
	store := newTestStore(t)

	svc := NewReferenceDataService(store, t.TempDir(), time.Hour)
	svc.Load()

	data := svc.Get()
	assert.Equal(t, []string{"Storm", "Roto Grip", "900 Global"}, data.Brands)
	assert.Equal(t, []string{"Premier", "Prime", "Hot"}, data.Lines)
	assert.Empty(t, data.Coverstocks)
}

func TestReferenceServiceAddIsAppendIfAbsent(t *testing.T) {
	store := newTestStore(t)
	seedDir := t.TempDir()
	writeSeedFile(t, seedDir, "reference-data.json", referenceSeed())

	svc := NewReferenceDataService(store, seedDir, time.Hour)
	svc.Load()

	svc.AddCoverstock("AX-16")
	svc.AddCoverstock("AX-16")
	svc.AddCoverstock("R2S Pearl")
	assert.Equal(t, []string{"R2S Pearl", "GI-20", "AX-16"}, svc.Get().Coverstocks)

	svc.AddFinish("2000 Sanded")
	assert.Equal(t, []string{"1500 Polished", "2000 Sanded"}, svc.Get().Finishes)

	svc.AddWeightBlock("WB-2")
	assert.Equal(t, []string{"WB-1", "WB-2"}, svc.Get().WeightBlocks)

	// Appends persist; a cache-backed reload keeps them
	next := NewReferenceDataService(store, t.TempDir(), time.Hour)
	next.Load()
	assert.Contains(t, next.Get().Coverstocks, "AX-16")
}

func TestReferenceServiceAddEmptyIsNoOp(t *testing.T) {
	store := newTestStore(t)
	svc := NewReferenceDataService(store, t.TempDir(), time.Hour)
	svc.Load()

	before := svc.Get()
	svc.AddCoverstock("")
	assert.Equal(t, before.Coverstocks, svc.Get().Coverstocks)
}

func TestReferenceServiceRefreshBypassesCache(t *testing.T) {
	store := newTestStore(t)
	seedDir := t.TempDir()
	writeSeedFile(t, seedDir, "reference-data.json", referenceSeed())

	svc := NewReferenceDataService(store, seedDir, time.Hour)
	svc.Load()
	svc.AddCoverstock("AX-16")
	require.Contains(t, svc.Get().Coverstocks, "AX-16")

	svc.Refresh()
	assert.Equal(t, referenceSeed().Coverstocks, svc.Get().Coverstocks)
}

func TestReferenceServiceSubscribe(t *testing.T) {
	store := newTestStore(t)
	svc := NewReferenceDataService(store, t.TempDir(), time.Hour)
	svc.Load()

	var snapshots []models.ReferenceData
	unsubscribe := svc.Subscribe(func(d models.ReferenceData) {
		snapshots = append(snapshots, d)
	})
	require.Len(t, snapshots, 1)

	svc.AddCoverstock("Fresh")
	require.Len(t, snapshots, 2)
	assert.Contains(t, snapshots[1].Coverstocks, "Fresh")

	unsubscribe()
	svc.AddCoverstock("Unseen")
	assert.Len(t, snapshots, 2)
}

func TestReferenceServiceClearCache(t *testing.T) {
	store := newTestStore(t)
	seedDir := t.TempDir()
	writeSeedFile(t, seedDir, "reference-data.json", referenceSeed())

	svc := NewReferenceDataService(store, seedDir, time.Hour)
	svc.Load()

	svc.ClearCache()
	assert.Empty(t, svc.Get().Brands)

	next := NewReferenceDataService(store, t.TempDir(), time.Hour)
	next.Load()
	assert.Equal(t, DefaultReferenceData().Brands, next.Get().Brands)
}
