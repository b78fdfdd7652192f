package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/vburojevic/errlens/internal/domain"
)

// SignatureStore remembers every signature seen in the log across runs.
//
// Counts are kept per log day. A day's count only ever moves up to the
// largest value observed for it, so re-running over overlapping periods
// never counts the same log line twice.
type SignatureStore struct {
	mu         sync.RWMutex
	path       string
	clk        clock.Clock
	signatures map[string]*StoredSignature
}

// StoredSignature is the persisted history of one signature. FirstSeen and
// LastSeen are log dates (YYYY-MM-DD), not run times.
type StoredSignature struct {
	Signature  string         `json:"signature"`
	FirstSeen  string         `json:"first_seen"`
	LastSeen   string         `json:"last_seen"`
	TotalCount int            `json:"total_count"`
	Days       map[string]int `json:"days"`
}

// signaturesFile is the structure stored on disk
type signaturesFile struct {
	Version    int                         `json:"version"`
	UpdatedAt  time.Time                   `json:"updated_at"`
	Signatures map[string]*StoredSignature `json:"signatures"`
}

// DefaultStorePath returns ~/.errlens/signatures.json
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".errlens", "signatures.json")
}

// NewSignatureStore creates a store backed by path and loads it.
// If path is empty, uses DefaultStorePath. A nil clock uses the wall clock.
func NewSignatureStore(path string, clk clock.Clock) (*SignatureStore, error) {
	if path == "" {
		path = DefaultStorePath()
	}
	if clk == nil {
		clk = clock.New()
	}

	store := &SignatureStore{
		path:       path,
		clk:        clk,
		signatures: make(map[string]*StoredSignature),
	}
	if err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}

// Path returns the backing file path
func (s *SignatureStore) Path() string { return s.path }

// Load reads signatures from disk
func (s *SignatureStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No file yet, that's fine
		}
		return err
	}

	var file signaturesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return err
	}

	s.signatures = file.Signatures
	if s.signatures == nil {
		s.signatures = make(map[string]*StoredSignature)
	}
	return nil
}

// Save writes signatures to disk
func (s *SignatureStore) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	file := signaturesFile{
		Version:    1,
		UpdatedAt:  s.clk.Now().UTC(),
		Signatures: s.signatures,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// Record merges an aggregation into the store and returns the signatures it
// had never seen, in the aggregation's signature order
func (s *SignatureStore) Record(agg *domain.Aggregation) []string {
	if agg == nil || agg.BySignature == nil || agg.ByDay == nil {
		return nil
	}

	var fresh []string
	for _, e := range agg.BySignature.Entries() {
		if !s.IsKnown(e.Key) {
			fresh = append(fresh, e.Key)
		}
	}

	for _, day := range agg.Days {
		summary := agg.ByDay.Get(day)
		if summary == nil {
			continue
		}
		for _, e := range summary.Signatures.Entries() {
			s.recordDay(e.Key, day, e.Count)
		}
	}
	return fresh
}

// recordDay raises the count of sig on day to count if it is higher
func (s *SignatureStore) recordDay(sig, day string, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.signatures[sig]
	if !ok {
		entry = &StoredSignature{Signature: sig}
		s.signatures[sig] = entry
	}
	if entry.Days == nil {
		entry.Days = make(map[string]int)
	}

	if prev := entry.Days[day]; count > prev {
		entry.Days[day] = count
		entry.TotalCount += count - prev
	}
	if entry.FirstSeen == "" || day < entry.FirstSeen {
		entry.FirstSeen = day
	}
	if day > entry.LastSeen {
		entry.LastSeen = day
	}
}

// IsKnown returns true if the signature has been seen before
func (s *SignatureStore) IsKnown(sig string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.signatures[sig]
	return ok
}

// Count returns the number of stored signatures
func (s *SignatureStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.signatures)
}
