package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"profilecheck/internal/profile"
)

// ErrInvalidImport is returned when an import blob lacks the entries map.
var ErrInvalidImport = errors.New("cache: invalid import data")

// ExportVersion tags exported blobs for future migration.
const ExportVersion = 1

// Config carries the store's TTL tiers and bounds. The tier ordering
// Negative < Default <= Verified is validated at construction.
type Config struct {
	Path        string
	DefaultTTL  time.Duration
	VerifiedTTL time.Duration
	NegativeTTL time.Duration
	MaxEntries  int
}

// Entry is a cached profile record plus the bookkeeping the store owns.
// Timestamps are unix milliseconds, TTL is milliseconds; the flat layout
// round-trips through export/import unchanged.
type Entry struct {
	profile.Record
	FetchedAt    int64 `json:"fetchedAt"`
	LastAccessed int64 `json:"lastAccessed"`
	TTL          int64 `json:"ttl"`
	IsNegative   bool  `json:"isNegative"`
}

func (e *Entry) expired(nowMs int64) bool {
	return nowMs-e.FetchedAt > e.TTL
}

// Stats summarizes the store contents, classified against the clock at the
// time of the call.
type Stats struct {
	TotalEntries    int `json:"totalEntries"`
	ValidEntries    int `json:"validEntries"`
	ExpiredEntries  int `json:"expiredEntries"`
	NegativeEntries int `json:"negativeEntries"`
	SizeBytes       int `json:"sizeBytes"`
	MaxEntries      int `json:"maxEntries"`
}

// Export is the versioned interchange blob.
type Export struct {
	Version    int               `json:"version"`
	ExportedAt int64             `json:"exportedAt"`
	Entries    map[string]*Entry `json:"entries"`
}

// Store is a persistent map of profile records keyed by normalized
// username, with per-entry TTL, LRU eviction and full-store persistence.
// Every mutation rewrites the whole serialized map; the write rate is tiny
// next to the read rate, so the simplicity is worth the O(size) cost.
type Store struct {
	mu      sync.Mutex
	entries map[string]*Entry
	cfg     Config
	log     *logrus.Entry
	now     func() time.Time
}

// New loads the persisted map from cfg.Path. A missing file starts empty;
// a corrupt file is discarded rather than failing startup.
func New(cfg Config, log *logrus.Entry) (*Store, error) {
	if cfg.MaxEntries <= 0 {
		return nil, errors.New("cache: MaxEntries must be positive")
	}
	if !(cfg.NegativeTTL < cfg.DefaultTTL && cfg.DefaultTTL <= cfg.VerifiedTTL) {
		return nil, fmt.Errorf("cache: TTL tiers must satisfy negative < default <= verified, got %v/%v/%v",
			cfg.NegativeTTL, cfg.DefaultTTL, cfg.VerifiedTTL)
	}
	if log == nil {
		log = logrus.WithField("component", "cache")
	}

	s := &Store{
		entries: map[string]*Entry{},
		cfg:     cfg,
		log:     log,
		now:     time.Now,
	}

	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		// A corrupted cache is dropped rather than failing the service.
		log.WithError(err).Warn("discarding corrupt cache file")
		s.entries = map[string]*Entry{}
	}
	log.WithField("entries", len(s.entries)).Debug("cache loaded")
	return s, nil
}

// Get returns the entry for a username, or nil when absent or expired.
// Expiry is checked lazily here; an expired entry is removed on sight.
// A hit refreshes the entry's LastAccessed time.
func (s *Store) Get(username string) *Entry {
	key := profile.NormalizeUsername(username)
	nowMs := s.now().UnixMilli()

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return nil
	}
	if entry.expired(nowMs) {
		delete(s.entries, key)
		if err := s.persistLocked(); err != nil {
			s.log.WithError(err).Warn("persist after expiry eviction failed")
		}
		return nil
	}

	entry.LastAccessed = nowMs
	copied := *entry
	return &copied
}

// GetMultiple performs an independent Get per username. Misses map to nil.
func (s *Store) GetMultiple(usernames []string) map[string]*Entry {
	results := make(map[string]*Entry, len(usernames))
	for _, username := range usernames {
		results[profile.NormalizeUsername(username)] = s.Get(username)
	}
	return results
}

// Set stores a record under the username's normalized key, choosing the TTL
// tier from the flags: negative results get the short retry window, verified
// accounts the long one, everything else the default. Breaching MaxEntries
// triggers LRU eviction before the store is persisted.
func (s *Store) Set(username string, rec *profile.Record, isVerified, isNegative bool) (*Entry, error) {
	key := profile.NormalizeUsername(username)
	nowMs := s.now().UnixMilli()

	ttl := s.cfg.DefaultTTL
	if isNegative {
		ttl = s.cfg.NegativeTTL
	} else if isVerified {
		ttl = s.cfg.VerifiedTTL
	}

	record := profile.Record{Username: key}
	if rec != nil {
		record = *rec
		record.Username = key
	}

	entry := &Entry{
		Record:       record,
		FetchedAt:    nowMs,
		LastAccessed: nowMs,
		TTL:          ttl.Milliseconds(),
		IsNegative:   isNegative,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry
	if len(s.entries) > s.cfg.MaxEntries {
		s.evictLRULocked()
	}

	if err := s.persistLocked(); err != nil {
		if errors.Is(err, syscall.ENOSPC) {
			// Out of space: evict more aggressively and retry once.
			s.log.Warn("persist hit storage quota, evicting and retrying")
			s.evictLRULocked()
			s.evictLRULocked()
			if err = s.persistLocked(); err != nil {
				return nil, fmt.Errorf("persist after eviction: %w", err)
			}
		} else {
			// In-memory state stays authoritative until the next
			// successful persist.
			s.log.WithError(err).Error("cache persist failed")
		}
	}

	copied := *entry
	return &copied, nil
}

// Remove deletes a single entry.
func (s *Store) Remove(username string) {
	key := profile.NormalizeUsername(username)

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	if err := s.persistLocked(); err != nil {
		s.log.WithError(err).Warn("persist after remove failed")
	}
}

// Clear drops every entry and the backing file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = map[string]*Entry{}
	if err := os.Remove(s.cfg.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	s.log.Info("cache cleared")
	return nil
}

// GetStats scans all entries and classifies them against the current clock.
// Size is measured by serializing the full store.
func (s *Store) GetStats() Stats {
	nowMs := s.now().UnixMilli()

	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Stats{
		TotalEntries: len(s.entries),
		MaxEntries:   s.cfg.MaxEntries,
	}
	for _, entry := range s.entries {
		if entry.expired(nowMs) {
			stats.ExpiredEntries++
			continue
		}
		stats.ValidEntries++
		if entry.IsNegative {
			stats.NegativeEntries++
		}
	}
	if data, err := json.Marshal(s.entries); err == nil {
		stats.SizeBytes = len(data)
	}
	return stats
}

// ExportData snapshots the store into a versioned blob.
func (s *Store) ExportData() *Export {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make(map[string]*Entry, len(s.entries))
	for key, entry := range s.entries {
		copied := *entry
		entries[key] = &copied
	}
	return &Export{
		Version:    ExportVersion,
		ExportedAt: s.now().UnixMilli(),
		Entries:    entries,
	}
}

// ImportData admits entries from an exported blob, skipping any already
// expired relative to their own embedded timestamps, and returns the count
// admitted. MaxEntries is not enforced here; the next eviction-triggering
// write corrects a transient overrun.
func (s *Store) ImportData(data *Export) (int, error) {
	if data == nil || data.Entries == nil {
		return 0, ErrInvalidImport
	}
	nowMs := s.now().UnixMilli()

	s.mu.Lock()
	defer s.mu.Unlock()

	imported := 0
	for username, entry := range data.Entries {
		if entry == nil || entry.expired(nowMs) {
			continue
		}
		copied := *entry
		s.entries[profile.NormalizeUsername(username)] = &copied
		imported++
	}

	if err := s.persistLocked(); err != nil {
		s.log.WithError(err).Warn("persist after import failed")
	}
	s.log.WithField("imported", imported).Info("cache import finished")
	return imported, nil
}

// UsefulEntries returns every non-negative entry that carries a join year
// or a declared location, keyed by username.
func (s *Store) UsefulEntries() map[string]*Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := map[string]*Entry{}
	for key, entry := range s.entries {
		if entry.IsNegative {
			continue
		}
		if entry.JoinedYear == 0 && entry.BasedIn == nil {
			continue
		}
		copied := *entry
		results[key] = &copied
	}
	return results
}

// evictLRULocked removes the oldest-accessed ceil(10%) of entries.
func (s *Store) evictLRULocked() {
	if len(s.entries) == 0 {
		return
	}

	type keyed struct {
		key          string
		lastAccessed int64
	}
	all := make([]keyed, 0, len(s.entries))
	for key, entry := range s.entries {
		all = append(all, keyed{key: key, lastAccessed: entry.LastAccessed})
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].lastAccessed < all[j].lastAccessed
	})

	toRemove := (len(all) + 9) / 10
	for _, victim := range all[:toRemove] {
		delete(s.entries, victim.key)
	}
	s.log.WithField("evicted", toRemove).Debug("LRU eviction")
}

// persistLocked writes the full serialized map via a temp file and rename,
// so a crash mid-write never leaves a torn cache on disk.
func (s *Store) persistLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.cfg.Path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(s.entries)
	if err != nil {
		return err
	}
	tmp := s.cfg.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.cfg.Path)
}
