package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"profilecheck/internal/profile"
)

// ErrRateLimited signals an upstream 429. It is not a hard failure: the
// coordinator grows its pacing delay and treats the round as "no data".
var ErrRateLimited = errors.New("fetch: upstream rate limited")

// Feature flags the UserByScreenName endpoint insists on receiving. The
// set mirrors what the upstream web client sends and changes when they
// ship; it is opaque to us.
const userLookupFeatures = `{"hidden_profile_subscriptions_enabled":true,"rweb_tipjar_consumption_enabled":true,"responsive_web_graphql_exclude_directive_enabled":true,"verified_phone_label_enabled":false,"subscriptions_verification_info_is_identity_verified_enabled":true,"subscriptions_verification_info_verified_since_enabled":true,"highlights_tweets_tab_ui_enabled":true,"responsive_web_twitter_article_notes_tab_enabled":true,"subscriptions_feature_can_gift_premium":true,"creator_subscriptions_tweet_preview_api_enabled":true,"responsive_web_graphql_skip_user_profile_image_extensions_enabled":false,"responsive_web_graphql_timeline_navigation_enabled":true}`

// ClientConfig identifies the upstream GraphQL endpoints and the
// credentials that ride on every call. Query IDs rotate upstream and are
// therefore configuration, not code.
type ClientConfig struct {
	BaseURL           string
	BearerToken       string
	CSRFToken         string
	UserQueryID       string
	AboutQueryID      string
	Timeout           time.Duration
	PauseBetweenCalls time.Duration
}

// Client fetches profile data by combining two GraphQL lookups per
// username: UserByScreenName for join date and account flags, then
// AboutAccountQuery for the location block, with the about result winning
// on overlap. A 429 from either endpoint suppresses all upstream calls
// until the reset time the response advertises.
type Client struct {
	http *http.Client
	cfg  ClientConfig
	log  *logrus.Entry

	mu           sync.Mutex
	limitedUntil time.Time

	now func() time.Time
}

// NewClient builds a Client; zero config fields fall back to upstream
// defaults where one exists.
func NewClient(cfg ClientConfig, log *logrus.Entry) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://x.com"
	}
	// The URL builders append the GraphQL prefix; a base URL configured
	// with it would double the path.
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/i/api/graphql")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.PauseBetweenCalls <= 0 {
		cfg.PauseBetweenCalls = 300 * time.Millisecond
	}
	if log == nil {
		log = logrus.WithField("component", "fetch")
	}
	return &Client{
		http: &http.Client{Timeout: cfg.Timeout},
		cfg:  cfg,
		log:  log,
		now:  time.Now,
	}
}

// FetchProfile runs both lookups for a username and merges the results
// into one record. Either endpoint failing degrades to the other's data;
// a record with nothing renderable comes back nil.
func (c *Client) FetchProfile(ctx context.Context, username string) (*profile.Record, error) {
	username = profile.NormalizeUsername(username)

	if c.suppressed() {
		return nil, ErrRateLimited
	}

	combined := &profile.Record{Username: username}
	rateLimited := false

	userRaw, err := c.get(ctx, c.userLookupURL(username))
	switch {
	case errors.Is(err, ErrRateLimited):
		rateLimited = true
	case err != nil:
		c.log.WithField("username", username).WithError(err).Debug("user lookup failed")
	default:
		if rec := profile.ParseUserLookup(userRaw, username); rec != nil {
			if rec.IsSuspended {
				return rec, nil
			}
			combined = profile.Merge(combined, rec)
		}
	}

	if err := sleepCtx(ctx, c.cfg.PauseBetweenCalls); err != nil {
		return nil, err
	}

	aboutRaw, err := c.get(ctx, c.aboutAccountURL(username))
	switch {
	case errors.Is(err, ErrRateLimited):
		rateLimited = true
	case err != nil:
		c.log.WithField("username", username).WithError(err).Debug("about account lookup failed")
	default:
		// The about result wins the location fields on overlap.
		if rec := profile.ParseAboutAccount(aboutRaw, username); rec != nil {
			if rec.IsSuspended {
				return rec, nil
			}
			combined = profile.Merge(combined, rec)
		}
	}

	if !combined.HasUsefulData() {
		if rateLimited {
			return nil, ErrRateLimited
		}
		return nil, nil
	}
	return combined, nil
}

func (c *Client) userLookupURL(username string) string {
	variables, _ := json.Marshal(map[string]any{
		"screen_name":              username,
		"withSafetyModeUserFields": true,
	})
	return fmt.Sprintf("%s/i/api/graphql/%s/UserByScreenName?variables=%s&features=%s",
		c.cfg.BaseURL, c.cfg.UserQueryID,
		url.QueryEscape(string(variables)), url.QueryEscape(userLookupFeatures))
}

func (c *Client) aboutAccountURL(username string) string {
	variables, _ := json.Marshal(map[string]string{"screenName": username})
	return fmt.Sprintf("%s/i/api/graphql/%s/AboutAccountQuery?variables=%s",
		c.cfg.BaseURL, c.cfg.AboutQueryID, url.QueryEscape(string(variables)))
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Twitter-Active-User", "yes")
	req.Header.Set("X-Twitter-Client-Language", "en")
	if c.cfg.CSRFToken != "" {
		req.Header.Set("X-Csrf-Token", c.cfg.CSRFToken)
	}
	if c.cfg.BearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.BearerToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		c.noteRateLimit(resp)
		return nil, ErrRateLimited
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("upstream status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// noteRateLimit honors the reset header when present (unix epoch seconds);
// without one, back off a flat five minutes.
func (c *Client) noteRateLimit(resp *http.Response) {
	until := c.now().Add(5 * time.Minute)
	if reset := resp.Header.Get("x-rate-limit-reset"); reset != "" {
		if epoch, err := strconv.ParseInt(reset, 10, 64); err == nil {
			until = time.Unix(epoch, 0)
		}
	}

	c.mu.Lock()
	if until.After(c.limitedUntil) {
		c.limitedUntil = until
	}
	c.mu.Unlock()
	c.log.WithField("until", until).Warn("upstream rate limited, suppressing calls")
}

func (c *Client) suppressed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now().Before(c.limitedUntil)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
