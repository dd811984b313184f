package fetch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"profilecheck/internal/cache"
	"profilecheck/internal/profile"
)

// ErrClosed is returned to waiters when the coordinator shuts down with
// their request still queued.
var ErrClosed = errors.New("fetch: coordinator closed")

// Fetcher produces a profile record for a username, or nil when no source
// yielded anything renderable.
type Fetcher interface {
	FetchProfile(ctx context.Context, username string) (*profile.Record, error)
}

// Config carries the coordinator's pacing knobs.
type Config struct {
	MinDelay          time.Duration
	MaxDelay          time.Duration
	BackoffMultiplier int
	MaxConcurrent     int
}

// Result is one username's slot in a batch response. Exactly one of the
// fields is set.
type Result struct {
	Record *profile.Record `json:"record,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// Status is a point-in-time snapshot of the coordinator's bookkeeping.
type Status struct {
	QueueLength    int      `json:"queueLength"`
	ActiveRequests int      `json:"activeRequests"`
	CurrentDelay   int64    `json:"currentDelay"`
	InFlight       []string `json:"inFlight"`
}

type opState int

const (
	opQueued opState = iota
	opInFlight
)

type settled struct {
	rec *profile.Record
	err error
}

// operation is the per-username state-machine entry: its queue state plus
// every waiter sharing the outcome. Settling an operation drains and
// removes the entry atomically.
type operation struct {
	state   opState
	waiters []chan settled
}

// Coordinator serializes profile fetches: at most one in-flight operation
// per username (every concurrent requester fans in on it), at most
// MaxConcurrent distinct usernames in flight, and a pacing delay between
// queue admissions that doubles on upstream rate limits.
//
// The delay never decays back toward MinDelay on success; once the
// upstream has rate-limited us, admission stays conservative for the
// process lifetime.
type Coordinator struct {
	cfg     Config
	store   *cache.Store
	fetcher Fetcher
	log     *logrus.Entry

	mu           sync.Mutex
	queue        []string
	ops          map[string]*operation
	active       int
	currentDelay time.Duration
	processing   bool
	closed       bool
}

func NewCoordinator(cfg Config, store *cache.Store, fetcher Fetcher, log *logrus.Entry) *Coordinator {
	if cfg.MinDelay <= 0 {
		cfg.MinDelay = 500 * time.Millisecond
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = 30 * time.Second
	}
	if cfg.BackoffMultiplier <= 1 {
		cfg.BackoffMultiplier = 2
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 3
	}
	if log == nil {
		log = logrus.WithField("component", "coordinator")
	}
	return &Coordinator{
		cfg:          cfg,
		store:        store,
		fetcher:      fetcher,
		log:          log,
		ops:          map[string]*operation{},
		currentDelay: cfg.MinDelay,
	}
}

// FetchProfile returns cached data when a fresh entry exists, otherwise
// joins or starts the single fetch operation for the username and waits
// for it to settle. A fresh negative entry answers directly too: its
// shorter TTL is what throttles repeat attempts for dead lookups.
func (c *Coordinator) FetchProfile(ctx context.Context, username string) (*profile.Record, error) {
	key := profile.NormalizeUsername(username)

	if entry := c.store.Get(key); entry != nil {
		rec := entry.Record
		return &rec, nil
	}

	ch := make(chan settled, 1)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}
	op, ok := c.ops[key]
	if !ok {
		op = &operation{state: opQueued}
		c.ops[key] = op
		c.queue = append(c.queue, key)
	}
	op.waiters = append(op.waiters, ch)
	c.mu.Unlock()

	go c.processQueue()

	select {
	case res := <-ch:
		return res.rec, res.err
	case <-ctx.Done():
		// The fetch runs to completion regardless; only this caller
		// stops waiting.
		return nil, ctx.Err()
	}
}

// FetchProfiles partitions usernames into cache hits and misses; misses
// run concurrently through FetchProfile and settle independently, so one
// failure fills only its own slot with an error marker.
func (c *Coordinator) FetchProfiles(ctx context.Context, usernames []string) map[string]Result {
	results := make(map[string]Result, len(usernames))
	var toFetch []string

	for _, username := range usernames {
		key := profile.NormalizeUsername(username)
		if _, done := results[key]; done {
			continue
		}
		if entry := c.store.Get(key); entry != nil && !entry.IsNegative {
			rec := entry.Record
			results[key] = Result{Record: &rec}
			continue
		}
		toFetch = append(toFetch, key)
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, key := range toFetch {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			rec, err := c.FetchProfile(ctx, key)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				results[key] = Result{Error: err.Error()}
				return
			}
			results[key] = Result{Record: rec}
		}(key)
	}
	wg.Wait()

	return results
}

// Status reports queue depth, in-flight usernames and the current pacing
// delay in milliseconds.
func (c *Coordinator) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	inFlight := make([]string, 0, len(c.ops))
	for key, op := range c.ops {
		if op.state == opInFlight {
			inFlight = append(inFlight, key)
		}
	}
	return Status{
		QueueLength:    len(c.queue),
		ActiveRequests: c.active,
		CurrentDelay:   c.currentDelay.Milliseconds(),
		InFlight:       inFlight,
	}
}

// Close stops admitting work and fails every queued waiter. Operations
// already in flight run to completion.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.queue = nil
	for key, op := range c.ops {
		if op.state != opQueued {
			continue
		}
		for _, ch := range op.waiters {
			ch <- settled{err: ErrClosed}
		}
		delete(c.ops, key)
	}
}

// processQueue drains the queue while concurrency slots are free. Each
// admission launches its fetch without waiting for it and then sleeps the
// current delay: the delay paces admission, not completion. Completions
// re-invoke the drain so a freed slot refills promptly.
func (c *Coordinator) processQueue() {
	c.mu.Lock()
	if c.processing || c.closed {
		c.mu.Unlock()
		return
	}
	c.processing = true

	for len(c.queue) > 0 && c.active < c.cfg.MaxConcurrent {
		key := c.queue[0]
		c.queue = c.queue[1:]

		op, ok := c.ops[key]
		if !ok || op.state != opQueued {
			continue
		}
		op.state = opInFlight
		c.active++
		go c.doFetch(key)

		delay := c.currentDelay
		c.mu.Unlock()
		time.Sleep(delay)
		c.mu.Lock()
		if c.closed {
			break
		}
	}

	c.processing = false
	c.mu.Unlock()
}

func (c *Coordinator) doFetch(key string) {
	// No per-fetch timeout: a hung upstream call occupies its slot until
	// the transport gives up.
	rec, err := c.fetcher.FetchProfile(context.Background(), key)

	rateLimited := errors.Is(err, ErrRateLimited)
	if rateLimited {
		c.mu.Lock()
		c.currentDelay = min(c.currentDelay*time.Duration(c.cfg.BackoffMultiplier), c.cfg.MaxDelay)
		c.log.WithField("delay", c.currentDelay).Warn("rate limited, backing off")
		c.mu.Unlock()
		err = nil
	}

	var res settled
	switch {
	case err != nil:
		c.log.WithField("username", key).WithError(err).Error("fetch failed")
		res = settled{err: err}
	case rec != nil && (rec.HasUsefulData() || rec.IsSuspended):
		stored, serr := c.store.Set(key, rec, rec.IsVerified, false)
		if serr != nil {
			c.log.WithField("username", key).WithError(serr).Warn("caching fetched profile failed")
		}
		out := rec
		if stored != nil {
			r := stored.Record
			out = &r
		}
		res = settled{rec: out}
	default:
		// Nothing renderable from any source. A genuine empty result is
		// cached as a negative entry so repeat lookups wait out the
		// shorter retry window; a rate-limited round is not an answer and
		// leaves the cache alone. Either way the waiters get a
		// placeholder pointing at a manual profile visit.
		placeholder := &profile.Record{Username: key, NeedsManualVisit: true}
		if !rateLimited {
			if _, serr := c.store.Set(key, placeholder, false, true); serr != nil {
				c.log.WithField("username", key).WithError(serr).Warn("caching negative result failed")
			}
		}
		res = settled{rec: placeholder}
	}

	c.mu.Lock()
	c.active--
	op := c.ops[key]
	delete(c.ops, key)
	c.mu.Unlock()

	if op != nil {
		for _, ch := range op.waiters {
			ch <- res
		}
	}

	go c.processQueue()
}
