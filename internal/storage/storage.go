// internal/storage/storage.go
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// keyPrefix namespaces every entry so unrelated data in the same database
// file cannot collide with catalog state.
const keyPrefix = "npls_"

// Store is a best-effort durable key-value mirror of the in-memory stores.
// Values are JSON blobs in a single table; a failed read is a miss and a
// failed write is reported to the caller, who logs and moves on. The store
// never owns the data it holds.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// expiryEnvelope wraps TTL-bound values with an absolute expiry timestamp
// in milliseconds since epoch.
type expiryEnvelope struct {
	Value  json.RawMessage `json:"value"`
	Expiry int64           `json:"expiry"`
}

// Open creates or opens the backing database file and ensures the state
// table exists.
func Open(path string) (*Store, error) {
	if path == "" {
		path = "npls.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		key TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get reads key into out. A missing key, a read error, or an undecodable
// payload all count as a miss; only real I/O or decode problems are
// returned so the caller can log them.
func (s *Store) Get(key string, out interface{}) (bool, error) {
	payload, ok, err := s.read(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Set writes key as a JSON blob.
func (s *Store) Set(key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.write(key, payload)
}

// Remove deletes key. Removing an absent key is not an error.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec(`DELETE FROM state WHERE key = ?`, keyPrefix+key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// Exists reports whether key currently holds a value. Errors degrade to
// false since callers only use this as a hint.
func (s *Store) Exists(key string) bool {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(1) FROM state WHERE key = ?`, keyPrefix+key).Scan(&n)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("storage exists check failed")
		return false
	}
	return n > 0
}

// GetWithExpiry reads a TTL-bound entry. Expired entries are deleted on
// access and reported as a miss; expiry is lazy, there is no sweeper.
func (s *Store) GetWithExpiry(key string, out interface{}) (bool, error) {
	payload, ok, err := s.read(key)
	if err != nil || !ok {
		return false, err
	}
	var env expiryEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return false, fmt.Errorf("decode %s envelope: %w", key, err)
	}
	if env.Expiry > 0 && time.Now().UnixMilli() > env.Expiry {
		if err := s.Remove(key); err != nil {
			logrus.WithError(err).WithField("key", key).Warn("failed to evict expired entry")
		}
		return false, nil
	}
	if err := json.Unmarshal(env.Value, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// SetWithExpiry writes a TTL-bound entry expiring ttl from now.
func (s *Store) SetWithExpiry(key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	payload, err := json.Marshal(expiryEnvelope{
		Value:  raw,
		Expiry: time.Now().Add(ttl).UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("encode %s envelope: %w", key, err)
	}
	return s.write(key, payload)
}

// Clear removes every namespaced entry.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec(`DELETE FROM state WHERE key LIKE ?`, keyPrefix+"%"); err != nil {
		return fmt.Errorf("clear storage: %w", err)
	}
	return nil
}

func (s *Store) read(key string) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM state WHERE key = ?`, keyPrefix+key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return payload, true, nil
}

func (s *Store) write(key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(
		`INSERT INTO state(key, payload) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET payload = excluded.payload`,
		keyPrefix+key, payload,
	)
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
