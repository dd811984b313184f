package app

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"profilecheck/internal/cache"
	"profilecheck/internal/fetch"
	"profilecheck/internal/profile"
)

// ErrNoScrapedData rejects a scrape handoff that carried neither a
// pre-parsed record nor raw text the page parser could use.
var ErrNoScrapedData = errors.New("scraped payload contains no usable data")

// Service is the acquisition entry point. Callers ask for usernames; the
// service answers from the cache when it can and delegates to the fetch
// coordinator otherwise. It also owns the cache-management and settings
// surfaces so transports stay thin.
type Service struct {
	store    *cache.Store
	coord    *fetch.Coordinator
	settings *SettingsStore
	log      *logrus.Entry
}

func NewService(store *cache.Store, coord *fetch.Coordinator, settings *SettingsStore, log *logrus.Entry) *Service {
	if log == nil {
		log = logrus.WithField("component", "service")
	}
	return &Service{store: store, coord: coord, settings: settings, log: log}
}

// FetchProfile returns the profile for one username, fetching upstream on
// a cache miss.
func (s *Service) FetchProfile(ctx context.Context, username string) (*profile.Record, error) {
	return s.coord.FetchProfile(ctx, username)
}

// FetchProfiles resolves a batch, answering hits from cache and fetching
// the misses concurrently. Per-username failures stay in their own slot.
func (s *Service) FetchProfiles(ctx context.Context, usernames []string) map[string]fetch.Result {
	return s.coord.FetchProfiles(ctx, usernames)
}

// GetCached returns the cached entry for a username without any network
// activity, or nil when nothing fresh is stored.
func (s *Service) GetCached(username string) *cache.Entry {
	return s.store.Get(username)
}

// GetCachedMultiple is the batch form of GetCached. Misses are absent
// from the returned map.
func (s *Service) GetCachedMultiple(usernames []string) map[string]*cache.Entry {
	return s.store.GetMultiple(usernames)
}

// AllUsefulProfiles returns every fresh non-negative entry that carries a
// joined year or a declared location.
func (s *Service) AllUsefulProfiles() map[string]*cache.Entry {
	return s.store.UsefulEntries()
}

// ScrapedPayload is what a page-scraping collaborator hands over for one
// username: either a pre-parsed record or the raw visible text of the
// rendered profile page.
type ScrapedPayload struct {
	Record *profile.Record `json:"record,omitempty"`
	Text   string          `json:"text,omitempty"`
}

// StoreScraped merges externally scraped data into the cache. A record in
// the payload wins over raw text; raw text goes through the page parser
// first. The result is merged against any existing entry so scraped data
// never erases facts an earlier fetch established.
func (s *Service) StoreScraped(username string, payload ScrapedPayload) (*cache.Entry, error) {
	key := profile.NormalizeUsername(username)

	fresh := payload.Record
	if fresh == nil && payload.Text != "" {
		parsed := profile.ParseText(payload.Text, key)
		if parsed.HasUsefulData() || parsed.IsSuspended || parsed.DisplayName != "" {
			fresh = parsed
		}
	}
	if fresh == nil {
		return nil, ErrNoScrapedData
	}
	fresh.Username = key

	var existing *profile.Record
	if entry := s.store.Get(key); entry != nil {
		rec := entry.Record
		existing = &rec
	}
	merged := profile.Merge(existing, fresh)

	s.log.WithFields(logrus.Fields{
		"username": key,
		"useful":   merged.HasUsefulData(),
	}).Debug("storing scraped profile")
	return s.store.Set(key, merged, merged.IsVerified, false)
}

// StatusReport bundles the coordinator snapshot with cache statistics.
type StatusReport struct {
	Fetcher fetch.Status `json:"fetcher"`
	Cache   cache.Stats  `json:"cache"`
}

func (s *Service) Status() StatusReport {
	return StatusReport{
		Fetcher: s.coord.Status(),
		Cache:   s.store.GetStats(),
	}
}

func (s *Service) CacheStats() cache.Stats {
	return s.store.GetStats()
}

func (s *Service) ClearCache() error {
	return s.store.Clear()
}

func (s *Service) ExportCache() *cache.Export {
	return s.store.ExportData()
}

func (s *Service) ImportCache(data *cache.Export) (int, error) {
	return s.store.ImportData(data)
}

func (s *Service) Settings() Settings {
	return s.settings.Get()
}

func (s *Service) UpdateSettings(patch map[string]any) (Settings, error) {
	return s.settings.Update(patch)
}
