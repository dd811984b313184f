package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"profilecheck/internal/profile"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		Path:        filepath.Join(t.TempDir(), "profiles.json"),
		DefaultTTL:  30 * 24 * time.Hour,
		VerifiedTTL: 90 * 24 * time.Hour,
		NegativeTTL: 7 * 24 * time.Hour,
		MaxEntries:  50,
	}
}

func newTestStore(t *testing.T, cfg Config) (*Store, *time.Time) {
	t.Helper()
	s, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	now := time.Now()
	s.now = func() time.Time { return now }
	return s, &now
}

func usefulRecord(username string) *profile.Record {
	return &profile.Record{
		Username: username,
		BasedIn:  &profile.Place{Country: "Japan", Raw: "Japan"},
	}
}

func TestTTLTierSelection(t *testing.T) {
	cfg := testConfig(t)
	s, _ := newTestStore(t, cfg)

	neg, err := s.Set("alice", nil, true, true)
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if neg.TTL != cfg.NegativeTTL.Milliseconds() {
		t.Errorf("negative entry ttl = %d, want %d regardless of isVerified", neg.TTL, cfg.NegativeTTL.Milliseconds())
	}

	ver, _ := s.Set("bob", usefulRecord("bob"), true, false)
	if ver.TTL != cfg.VerifiedTTL.Milliseconds() {
		t.Errorf("verified entry ttl = %d, want %d", ver.TTL, cfg.VerifiedTTL.Milliseconds())
	}

	def, _ := s.Set("carol", usefulRecord("carol"), false, false)
	if def.TTL != cfg.DefaultTTL.Milliseconds() {
		t.Errorf("default entry ttl = %d, want %d", def.TTL, cfg.DefaultTTL.Milliseconds())
	}
}

func TestTTLTierValidation(t *testing.T) {
	cfg := testConfig(t)
	cfg.NegativeTTL = cfg.VerifiedTTL + time.Hour
	if _, err := New(cfg, nil); err == nil {
		t.Error("expected an error for inverted TTL tiers")
	}
}

func TestGetLazyExpiry(t *testing.T) {
	cfg := testConfig(t)
	s, now := newTestStore(t, cfg)

	if _, err := s.Set("alice", usefulRecord("alice"), false, false); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Exactly at the TTL boundary the entry is still valid: expiry is
	// strictly greater-than.
	*now = now.Add(cfg.DefaultTTL)
	if got := s.Get("alice"); got == nil {
		t.Fatal("entry at exact TTL boundary should still be valid")
	}

	*now = now.Add(time.Millisecond)
	if got := s.Get("alice"); got != nil {
		t.Fatalf("entry past TTL should be gone, got %+v", got)
	}

	// The expired entry was removed, not just hidden.
	stats := s.GetStats()
	if stats.TotalEntries != 0 {
		t.Errorf("expired entry still occupies a slot: %+v", stats)
	}
}

func TestGetNormalizesKey(t *testing.T) {
	s, _ := newTestStore(t, testConfig(t))
	if _, err := s.Set("Alice", usefulRecord("alice"), false, false); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if s.Get("@ALICE") == nil {
		t.Error("lookup through @-prefixed uppercase handle should hit")
	}
}

func TestGetMultiple(t *testing.T) {
	s, _ := newTestStore(t, testConfig(t))
	s.Set("alice", usefulRecord("alice"), false, false)

	results := s.GetMultiple([]string{"alice", "nobody"})
	if results["alice"] == nil {
		t.Error("expected hit for alice")
	}
	if results["nobody"] != nil {
		t.Error("expected nil for unknown username")
	}
}

func TestLRUEvictionCountAndVictims(t *testing.T) {
	cfg := testConfig(t)
	cfg.MaxEntries = 20
	s, now := newTestStore(t, cfg)

	names := make([]string, 0, 21)
	for i := 0; i < 20; i++ {
		name := string(rune('a'+i)) + "user"
		names = append(names, name)
		if _, err := s.Set(name, usefulRecord(name), false, false); err != nil {
			t.Fatalf("Set: %v", err)
		}
		*now = now.Add(time.Second)
	}

	// The 21st write breaches the bound: exactly ceil(21 * 0.1) = 3
	// entries go, and they are the three with the oldest access times.
	if _, err := s.Set("overflow", usefulRecord("overflow"), false, false); err != nil {
		t.Fatalf("Set: %v", err)
	}

	stats := s.GetStats()
	if stats.TotalEntries != 18 {
		t.Fatalf("after eviction totalEntries = %d, want 18", stats.TotalEntries)
	}
	for _, victim := range names[:3] {
		if s.Get(victim) != nil {
			t.Errorf("oldest entry %q should have been evicted", victim)
		}
	}
	for _, survivor := range names[3:] {
		if s.Get(survivor) == nil {
			t.Errorf("entry %q should have survived eviction", survivor)
		}
	}
	if s.Get("overflow") == nil {
		t.Error("the triggering write must survive its own eviction")
	}
}

func TestGetRefreshesLRUOrder(t *testing.T) {
	cfg := testConfig(t)
	cfg.MaxEntries = 10
	s, now := newTestStore(t, cfg)

	for i := 0; i < 10; i++ {
		name := string(rune('a'+i)) + "user"
		s.Set(name, usefulRecord(name), false, false)
		*now = now.Add(time.Second)
	}

	// Touch the oldest entry; it should no longer be the eviction victim.
	if s.Get("auser") == nil {
		t.Fatal("expected auser to be present")
	}
	*now = now.Add(time.Second)
	s.Set("overflow", usefulRecord("overflow"), false, false)

	if s.Get("auser") == nil {
		t.Error("recently accessed entry should survive eviction")
	}
	if s.Get("buser") != nil {
		t.Error("stalest unaccessed entry should have been evicted")
	}
}

func TestNegativeEntryVisible(t *testing.T) {
	s, _ := newTestStore(t, testConfig(t))
	s.Set("ghost", nil, false, true)

	entry := s.Get("ghost")
	if entry == nil {
		t.Fatal("negative entry should occupy a cache slot")
	}
	if !entry.IsNegative {
		t.Error("entry should be marked negative")
	}
	if entry.HasUsefulData() {
		t.Error("negative placeholder must not count as useful data")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	cfg := testConfig(t)
	s, now := newTestStore(t, cfg)

	s.Set("alice", usefulRecord("alice"), false, false)
	s.Set("bob", usefulRecord("bob"), true, false)
	s.Set("stale", usefulRecord("stale"), false, true)

	// Let the negative-tier entry expire before the import.
	*now = now.Add(cfg.NegativeTTL + time.Minute)
	blob := s.ExportData()
	if blob.Version != ExportVersion {
		t.Errorf("export version = %d", blob.Version)
	}

	dst, _ := newTestStore(t, testConfig(t))
	imported, err := dst.ImportData(blob)
	if err != nil {
		t.Fatalf("ImportData: %v", err)
	}
	if imported != 2 {
		t.Errorf("imported = %d, want 2 (expired entry dropped)", imported)
	}
	if dst.Get("alice") == nil || dst.Get("bob") == nil {
		t.Error("imported entries missing")
	}
	if dst.Get("stale") != nil {
		t.Error("expired entry should not have been admitted")
	}
}

func TestImportInvalid(t *testing.T) {
	s, _ := newTestStore(t, testConfig(t))
	if _, err := s.ImportData(nil); err != ErrInvalidImport {
		t.Errorf("nil blob: err = %v, want ErrInvalidImport", err)
	}
	if _, err := s.ImportData(&Export{Version: 1}); err != ErrInvalidImport {
		t.Errorf("missing entries: err = %v, want ErrInvalidImport", err)
	}
}

func TestStatsClassification(t *testing.T) {
	cfg := testConfig(t)
	s, now := newTestStore(t, cfg)

	s.Set("live", usefulRecord("live"), false, false)
	s.Set("negative", nil, false, true)
	s.Set("verified", usefulRecord("verified"), true, false)
	*now = now.Add(cfg.NegativeTTL + time.Minute)
	s.Set("fresh", usefulRecord("fresh"), false, false)

	stats := s.GetStats()
	if stats.TotalEntries != 4 {
		t.Errorf("totalEntries = %d", stats.TotalEntries)
	}
	if stats.ExpiredEntries != 1 {
		t.Errorf("expiredEntries = %d, want 1 (the negative entry aged out)", stats.ExpiredEntries)
	}
	if stats.ValidEntries != 3 {
		t.Errorf("validEntries = %d", stats.ValidEntries)
	}
	if stats.NegativeEntries != 0 {
		t.Errorf("negativeEntries = %d, expired negatives do not count", stats.NegativeEntries)
	}
	if stats.SizeBytes == 0 {
		t.Error("sizeBytes should reflect the serialized store")
	}
}

func TestPersistenceAcrossRestart(t *testing.T) {
	cfg := testConfig(t)
	s, _ := newTestStore(t, cfg)
	s.Set("alice", usefulRecord("alice"), false, false)

	reopened, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	entry := reopened.Get("alice")
	if entry == nil {
		t.Fatal("entry lost across restart")
	}
	if entry.BasedIn == nil || entry.BasedIn.Country != "Japan" {
		t.Errorf("record fields lost: %+v", entry)
	}
}

func TestCorruptCacheFileTolerated(t *testing.T) {
	cfg := testConfig(t)
	if err := os.WriteFile(cfg.Path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("corrupt cache file should not fail startup: %v", err)
	}
	if stats := s.GetStats(); stats.TotalEntries != 0 {
		t.Errorf("corrupt file should load empty, got %d entries", stats.TotalEntries)
	}
}

func TestRemoveAndClear(t *testing.T) {
	cfg := testConfig(t)
	s, _ := newTestStore(t, cfg)
	s.Set("alice", usefulRecord("alice"), false, false)
	s.Set("bob", usefulRecord("bob"), false, false)

	s.Remove("alice")
	if s.Get("alice") != nil {
		t.Error("removed entry still present")
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if stats := s.GetStats(); stats.TotalEntries != 0 {
		t.Errorf("clear left %d entries", stats.TotalEntries)
	}
	if _, err := os.Stat(cfg.Path); !os.IsNotExist(err) {
		t.Error("clear should drop the backing file")
	}
}
