// internal/services/reference_service.go
package services

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nplsapp/npls-backend/internal/models"
	"github.com/nplsapp/npls-backend/internal/seed"
	"github.com/nplsapp/npls-backend/internal/storage"
)

const (
	referenceStorageKey = "reference_data"

	// DefaultReferenceTTL is the cache window for the vocabulary snapshot.
	DefaultReferenceTTL = 24 * time.Hour
)

// ReferenceDataService holds the controlled vocabulary behind a time-boxed
// cache. Load prefers a non-expired cached snapshot and otherwise reads the
// reference file, falling back to a small built-in vocabulary when that
// fails. Additive updates append-if-absent and refresh the TTL window.
type ReferenceDataService struct {
	storage *storage.Store
	seedDir string
	ttl     time.Duration

	mu      sync.RWMutex
	data    models.ReferenceData
	loading bool

	pub *publisher[models.ReferenceData]
}

func NewReferenceDataService(store *storage.Store, seedDir string, ttl time.Duration) *ReferenceDataService {
	if ttl <= 0 {
		ttl = DefaultReferenceTTL
	}
	return &ReferenceDataService{
		storage: store,
		seedDir: seedDir,
		ttl:     ttl,
		pub:     newPublisher[models.ReferenceData](),
	}
}

// Load populates the vocabulary, reading the cached snapshot when its TTL
// window is still open.
func (s *ReferenceDataService) Load() {
	var cached models.ReferenceData
	found, err := s.storage.GetWithExpiry(referenceStorageKey, &cached)
	if err != nil {
		logrus.WithError(err).Warn("reference cache read failed, reloading")
	}
	if found {
		s.replace(cached, false)
		return
	}
	s.loadFromSeed()
}

// Refresh forces cache invalidation and a reload, bypassing the TTL check.
func (s *ReferenceDataService) Refresh() {
	if err := s.storage.Remove(referenceStorageKey); err != nil {
		logrus.WithError(err).Warn("failed to invalidate reference cache")
	}
	s.loadFromSeed()
}

func (s *ReferenceDataService) loadFromSeed() {
	s.setLoading(true)
	defer s.setLoading(false)

	path := filepath.Join(s.seedDir, seed.ReferenceFile)
	data, err := seed.LoadReferenceData(path)
	if err != nil {
		logrus.WithError(err).Error("failed to load reference data, using defaults")
		s.replace(DefaultReferenceData(), false)
		return
	}
	s.replace(data, true)
}

func (s *ReferenceDataService) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *ReferenceDataService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *ReferenceDataService) Subscribe(fn func(models.ReferenceData)) Unsubscribe {
	return s.pub.Subscribe(fn)
}

// Get returns the current vocabulary snapshot.
func (s *ReferenceDataService) Get() models.ReferenceData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// AddCoverstock appends a coverstock unless it already exists (exact,
// case-sensitive match).
func (s *ReferenceDataService) AddCoverstock(value string) {
	s.addTo(func(d *models.ReferenceData) *[]string { return &d.Coverstocks }, value)
}

func (s *ReferenceDataService) AddFinish(value string) {
	s.addTo(func(d *models.ReferenceData) *[]string { return &d.Finishes }, value)
}

func (s *ReferenceDataService) AddWeightBlock(value string) {
	s.addTo(func(d *models.ReferenceData) *[]string { return &d.WeightBlocks }, value)
}

func (s *ReferenceDataService) addTo(list func(*models.ReferenceData) *[]string, value string) {
	if value == "" {
		return
	}
	s.mu.Lock()
	target := list(&s.data)
	for _, existing := range *target {
		if existing == value {
			s.mu.Unlock()
			return
		}
	}
	*target = append(*target, value)
	snapshot := s.data
	s.mu.Unlock()

	s.pub.Publish(snapshot)
	s.persist(snapshot)
}

// ClearCache drops the persisted snapshot and resets to an empty vocabulary.
func (s *ReferenceDataService) ClearCache() {
	if err := s.storage.Remove(referenceStorageKey); err != nil {
		logrus.WithError(err).Warn("failed to clear reference cache")
	}
	s.mu.Lock()
	s.data = models.ReferenceData{}
	snapshot := s.data
	s.mu.Unlock()
	s.pub.Publish(snapshot)
}

// replace swaps in a vocabulary snapshot; persist controls whether the TTL
// window is (re)opened in storage. Cached reads skip the rewrite since the
// snapshot came from storage moments ago.
func (s *ReferenceDataService) replace(data models.ReferenceData, persist bool) {
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	s.pub.Publish(data)
	if persist {
		s.persist(data)
	}
}

func (s *ReferenceDataService) persist(snapshot models.ReferenceData) {
	if err := s.storage.SetWithExpiry(referenceStorageKey, snapshot, s.ttl); err != nil {
		logrus.WithError(err).Warn("reference cache write failed, continuing in-memory")
	}
}

// DefaultReferenceData is the built-in fallback vocabulary used when the
// reference file cannot be read.
func DefaultReferenceData() models.ReferenceData {
	return models.ReferenceData{
		Coverstocks:     []string{},
		Finishes:        []string{},
		WeightBlocks:    []string{},
		Brands:          []string{"Storm", "Roto Grip", "900 Global"},
		Lines:           []string{"Premier", "Prime", "Hot"},
		CoverstockTypes: []string{"Pearl Reactive", "Solid Reactive", "Hybrid Reactive"},
	}
}
