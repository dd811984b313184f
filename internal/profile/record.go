package profile

import (
	"regexp"
	"strings"
)

// Place is a declared or inferred location. Country is the usable value,
// Raw preserves the upstream string it was derived from.
type Place struct {
	Country string `json:"country"`
	Raw     string `json:"raw"`
}

// Record is the canonical per-username profile data unit. All sources
// (the two GraphQL query shapes and the rendered-page scrape) converge
// on this shape.
type Record struct {
	Username      string `json:"username"`
	DisplayName   string `json:"displayName,omitempty"`
	BasedIn       *Place `json:"basedIn,omitempty"`
	ConnectedVia  *Place `json:"connectedVia,omitempty"`
	HasVpnWarning bool   `json:"hasVpnWarning"`
	JoinedYear    int    `json:"joinedYear,omitempty"`
	JoinedMonth   string `json:"joinedMonth,omitempty"`
	IsProtected   bool   `json:"isProtected"`
	IsVerified    bool   `json:"isVerified"`
	IsSuspended   bool   `json:"isSuspended"`

	// NeedsManualVisit marks a placeholder returned when no source produced
	// data; visiting the profile page will feed the scrape handoff.
	NeedsManualVisit bool `json:"needsManualVisit,omitempty"`
}

// Matches the trailing platform-store marker in "Connected via" strings,
// e.g. "Europe Android App" or "Japan iOS App Store".
var reRegion = regexp.MustCompile(`(?i)^([A-Za-z\s]+?)(?:\s+(?:Android|iOS|Web|App|Store|iPhone|iPad))`)

// NormalizeUsername lowercases a handle and strips a leading "@".
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(username), "@"))
}

// ExtractRegion derives the region part of a "Connected via" string by
// cutting at the first platform-store marker. Strings without a marker are
// returned unchanged.
func ExtractRegion(raw string) string {
	raw = strings.TrimSpace(raw)
	if m := reRegion.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return raw
}

// HasUsefulData reports whether the record carries anything worth rendering.
// A record with no location, no connected-via region and no join year is
// equivalent to a lookup miss regardless of its boolean flags.
func (r *Record) HasUsefulData() bool {
	if r == nil {
		return false
	}
	return r.BasedIn != nil || r.ConnectedVia != nil || r.JoinedYear != 0
}

// Merge combines a fresh observation with a previously known record.
// Known facts never regress to unknown: when the fresh record lacks a
// location, warning flag, join date or account flag the existing value is
// preserved. Everything the fresh record does carry overwrites.
func Merge(existing, fresh *Record) *Record {
	if fresh == nil {
		return existing
	}
	if existing == nil {
		return fresh
	}

	merged := *fresh
	if merged.BasedIn == nil {
		merged.BasedIn = existing.BasedIn
	}
	if merged.ConnectedVia == nil {
		merged.ConnectedVia = existing.ConnectedVia
	}
	if !merged.HasVpnWarning {
		merged.HasVpnWarning = existing.HasVpnWarning
	}
	if merged.JoinedYear == 0 {
		merged.JoinedYear = existing.JoinedYear
		merged.JoinedMonth = existing.JoinedMonth
	}
	if merged.DisplayName == "" {
		merged.DisplayName = existing.DisplayName
	}
	if !merged.IsProtected {
		merged.IsProtected = existing.IsProtected
	}
	if !merged.IsVerified {
		merged.IsVerified = existing.IsVerified
	}
	return &merged
}
