// internal/services/core_service.go
package services

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nplsapp/npls-backend/internal/models"
	"github.com/nplsapp/npls-backend/internal/seed"
	"github.com/nplsapp/npls-backend/internal/storage"
)

const coresStorageKey = "cores"

// CoreService owns the in-memory core-specification catalog. Same lifecycle
// as BallService: cache-or-seed on Init, full-snapshot publish on every
// mutation, best-effort write-through. Cores are mostly read-only after
// ingestion but CRUD is kept symmetric with balls.
type CoreService struct {
	storage *storage.Store
	seedDir string

	mu      sync.RWMutex
	cores   []models.Core
	loading bool

	pub *publisher[[]models.Core]
}

func NewCoreService(store *storage.Store, seedDir string) *CoreService {
	return &CoreService{
		storage: store,
		seedDir: seedDir,
		pub:     newPublisher[[]models.Core](),
	}
}

func (s *CoreService) Init() {
	var cached []models.Core
	found, err := s.storage.Get(coresStorageKey, &cached)
	if err != nil {
		logrus.WithError(err).Warn("core cache read failed, falling back to seed")
	}
	if found && len(cached) > 0 {
		s.replace(cached)
		return
	}
	s.loadSeed()
}

func (s *CoreService) RefreshFromSeed() {
	s.loadSeed()
}

func (s *CoreService) loadSeed() {
	s.setLoading(true)
	defer s.setLoading(false)

	rows, err := seed.LoadRawRows(filepath.Join(s.seedDir, seed.CoresFile))
	if err != nil {
		logrus.WithError(err).Error("failed to load core seed data")
		s.replace([]models.Core{})
		return
	}
	s.replace(seed.TransformCores(rows))
}

func (s *CoreService) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *CoreService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *CoreService) Subscribe(fn func([]models.Core)) Unsubscribe {
	return s.pub.Subscribe(fn)
}

func (s *CoreService) GetAll() []models.Core {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Core(nil), s.cores...)
}

func (s *CoreService) GetByID(id string) (models.Core, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.cores {
		if c.ID == id {
			return c, true
		}
	}
	return models.Core{}, false
}

// GetByName returns the first core whose marketing name contains the query
// as a case-insensitive substring.
func (s *CoreService) GetByName(name string) (models.Core, bool) {
	q := strings.ToLower(name)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.cores {
		if strings.Contains(strings.ToLower(c.MarketingName), q) {
			return c, true
		}
	}
	return models.Core{}, false
}

// Search matches name, line and core number as case-insensitive substrings.
// An empty query matches everything.
func (s *CoreService) Search(query string) []models.Core {
	q := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := []models.Core{}
	for _, c := range s.cores {
		if q == "" ||
			strings.Contains(strings.ToLower(c.MarketingName), q) ||
			strings.Contains(strings.ToLower(c.Line), q) ||
			strings.Contains(strings.ToLower(c.CoreNumber), q) {
			matches = append(matches, c)
		}
	}
	return matches
}

func (s *CoreService) GetByLine(line string) []models.Core {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := []models.Core{}
	for _, c := range s.cores {
		if c.Line == line {
			matches = append(matches, c)
		}
	}
	return matches
}

func (s *CoreService) GetSymmetric() []models.Core {
	return s.partition(true)
}

func (s *CoreService) GetAsymmetric() []models.Core {
	return s.partition(false)
}

func (s *CoreService) partition(symmetric bool) []models.Core {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := []models.Core{}
	for _, c := range s.cores {
		if c.IsSymmetric == symmetric {
			matches = append(matches, c)
		}
	}
	return matches
}

func (s *CoreService) Create(core models.Core) models.Core {
	core.ID = "core-" + uuid.NewString()

	s.mu.Lock()
	s.cores = append([]models.Core{core}, s.cores...)
	snapshot := append([]models.Core(nil), s.cores...)
	s.mu.Unlock()

	s.pub.Publish(snapshot)
	s.persist(snapshot)
	return core
}

// Update replaces the stored core with the patch, keeping the identifier.
// The patch is authoritative; a cleared field persists as cleared.
func (s *CoreService) Update(id string, updates models.Core) (models.Core, bool) {
	s.mu.Lock()
	idx := -1
	for i, c := range s.cores {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return models.Core{}, false
	}
	merged := updates
	merged.ID = s.cores[idx].ID
	s.cores[idx] = merged
	snapshot := append([]models.Core(nil), s.cores...)
	s.mu.Unlock()

	s.pub.Publish(snapshot)
	s.persist(snapshot)
	return merged, true
}

func (s *CoreService) Delete(id string) bool {
	s.mu.Lock()
	kept := s.cores[:0]
	for _, c := range s.cores {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.cores = kept
	snapshot := append([]models.Core(nil), s.cores...)
	s.mu.Unlock()

	s.pub.Publish(snapshot)
	s.persist(snapshot)
	return true
}

func (s *CoreService) ClearCache() {
	if err := s.storage.Remove(coresStorageKey); err != nil {
		logrus.WithError(err).Warn("failed to clear core cache")
	}
	s.mu.Lock()
	s.cores = []models.Core{}
	snapshot := []models.Core{}
	s.mu.Unlock()
	s.pub.Publish(snapshot)
}

func (s *CoreService) replace(cores []models.Core) {
	s.mu.Lock()
	s.cores = cores
	snapshot := append([]models.Core(nil), cores...)
	s.mu.Unlock()
	s.pub.Publish(snapshot)
	s.persist(snapshot)
}

func (s *CoreService) persist(snapshot []models.Core) {
	if err := s.storage.Set(coresStorageKey, snapshot); err != nil {
		logrus.WithError(err).Warn("core cache write failed, continuing in-memory")
	}
}
