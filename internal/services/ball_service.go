// internal/services/ball_service.go
package services

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nplsapp/npls-backend/internal/models"
	"github.com/nplsapp/npls-backend/internal/seed"
	"github.com/nplsapp/npls-backend/internal/storage"
)

const ballsStorageKey = "balls"

// BallService owns the authoritative in-memory product catalog. On Init it
// loads from the cache when one exists, otherwise ingests the seed file and
// writes through. Every mutation updates memory, republishes the full
// collection, and then mirrors to storage best-effort; a failed cache write
// never rolls back the in-memory change.
type BallService struct {
	storage *storage.Store
	seedDir string

	mu      sync.RWMutex
	balls   []models.Ball
	loading bool

	pub *publisher[[]models.Ball]
}

// BallStats summarizes the catalog for the dashboard.
type BallStats struct {
	Total   int            `json:"total"`
	ByBrand map[string]int `json:"byBrand"`
	ByType  map[string]int `json:"byType"`
}

func NewBallService(store *storage.Store, seedDir string) *BallService {
	return &BallService{
		storage: store,
		seedDir: seedDir,
		pub:     newPublisher[[]models.Ball](),
	}
}

// Init populates the collection from cache or seed. Reads issued while the
// seed load is running observe an empty collection.
func (s *BallService) Init() {
	var cached []models.Ball
	found, err := s.storage.Get(ballsStorageKey, &cached)
	if err != nil {
		logrus.WithError(err).Warn("ball cache read failed, falling back to seed")
	}
	if found && len(cached) > 0 {
		s.replace(cached)
		return
	}
	s.loadSeed()
}

// RefreshFromSeed re-ingests the seed file, overwriting the cache and
// republishing. Stands in for the future remote refresh.
func (s *BallService) RefreshFromSeed() {
	s.loadSeed()
}

func (s *BallService) loadSeed() {
	s.setLoading(true)
	defer s.setLoading(false)

	rows, err := seed.LoadRawRows(filepath.Join(s.seedDir, seed.BallsFile))
	if err != nil {
		logrus.WithError(err).Error("failed to load ball seed data")
		s.replace([]models.Ball{})
		return
	}
	s.replace(seed.TransformBalls(rows))
}

func (s *BallService) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Loading reports whether the seed ingestion is still running.
func (s *BallService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Subscribe registers an observer for full-collection snapshots. The latest
// snapshot is delivered immediately.
func (s *BallService) Subscribe(fn func([]models.Ball)) Unsubscribe {
	return s.pub.Subscribe(fn)
}

// GetAll returns the current collection, insertion-order preserved.
func (s *BallService) GetAll() []models.Ball {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Ball(nil), s.balls...)
}

func (s *BallService) GetByID(id string) (models.Ball, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.balls {
		if b.ID == id {
			return b, true
		}
	}
	return models.Ball{}, false
}

// Search matches the query as a case-insensitive substring of name, brand,
// coverstock or core. An empty query matches everything.
func (s *BallService) Search(query string) []models.Ball {
	q := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := []models.Ball{}
	for _, b := range s.balls {
		if q == "" ||
			strings.Contains(strings.ToLower(b.BallName), q) ||
			strings.Contains(strings.ToLower(b.Brand), q) ||
			strings.Contains(strings.ToLower(b.Coverstock), q) ||
			strings.Contains(strings.ToLower(b.Core), q) {
			matches = append(matches, b)
		}
	}
	return matches
}

// Create assigns a fresh identifier and creation stamp, prepends the ball
// (newest first) and persists.
func (s *BallService) Create(ball models.Ball) models.Ball {
	ball.ID = "ball-" + uuid.NewString()
	ball.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	ball.UpdatedAt = ""

	s.mu.Lock()
	s.balls = append([]models.Ball{ball}, s.balls...)
	snapshot := append([]models.Ball(nil), s.balls...)
	s.mu.Unlock()

	s.pub.Publish(snapshot)
	s.persist(snapshot)
	return ball
}

// Update replaces the stored ball with the patch, keeping only the identity
// and creation stamp and refreshing the update stamp. The patch is
// authoritative for every editable field, so a field cleared on the form
// persists as cleared. The ball keeps its position; only Create affects
// ordering. Returns false when id is unknown.
func (s *BallService) Update(id string, updates models.Ball) (models.Ball, bool) {
	s.mu.Lock()
	idx := -1
	for i, b := range s.balls {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return models.Ball{}, false
	}
	merged := updates
	merged.ID = s.balls[idx].ID
	merged.CreatedAt = s.balls[idx].CreatedAt
	merged.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	s.balls[idx] = merged
	snapshot := append([]models.Ball(nil), s.balls...)
	s.mu.Unlock()

	s.pub.Publish(snapshot)
	s.persist(snapshot)
	return merged, true
}

// Delete removes the ball with the given id. Deleting an unknown id is a
// successful no-op.
func (s *BallService) Delete(id string) bool {
	s.mu.Lock()
	kept := s.balls[:0]
	for _, b := range s.balls {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	s.balls = kept
	snapshot := append([]models.Ball(nil), s.balls...)
	s.mu.Unlock()

	s.pub.Publish(snapshot)
	s.persist(snapshot)
	return true
}

// Duplicate copies an existing ball into a new record, stripping identifier
// and audit stamps and marking the name.
func (s *BallService) Duplicate(id string) (models.Ball, bool) {
	src, ok := s.GetByID(id)
	if !ok {
		return models.Ball{}, false
	}
	src.ID = ""
	src.CreatedAt = ""
	src.UpdatedAt = ""
	src.BallName = src.BallName + " (Copy)"
	return s.Create(src), true
}

// Stats counts the catalog by brand and coverstock type.
func (s *BallService) Stats() BallStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := BallStats{
		Total:   len(s.balls),
		ByBrand: map[string]int{},
		ByType:  map[string]int{},
	}
	for _, b := range s.balls {
		stats.ByBrand[b.Brand]++
		if b.CoverstockType != "" {
			stats.ByType[b.CoverstockType]++
		}
	}
	return stats
}

// ClearCache drops the persisted copy and resets the collection.
func (s *BallService) ClearCache() {
	if err := s.storage.Remove(ballsStorageKey); err != nil {
		logrus.WithError(err).Warn("failed to clear ball cache")
	}
	s.mu.Lock()
	s.balls = []models.Ball{}
	snapshot := []models.Ball{}
	s.mu.Unlock()
	s.pub.Publish(snapshot)
}

// replace swaps in a full collection, publishes it and writes through.
func (s *BallService) replace(balls []models.Ball) {
	s.mu.Lock()
	s.balls = balls
	snapshot := append([]models.Ball(nil), balls...)
	s.mu.Unlock()
	s.pub.Publish(snapshot)
	s.persist(snapshot)
}

func (s *BallService) persist(snapshot []models.Ball) {
	if err := s.storage.Set(ballsStorageKey, snapshot); err != nil {
		logrus.WithError(err).Warn("ball cache write failed, continuing in-memory")
	}
}
