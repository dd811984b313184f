package flags

import (
	"regexp"
	"strings"
)

var (
	reAppStore  = regexp.MustCompile(`(?i)^(.+?)\s+app\s+store$`)
	rePlayStore = regexp.MustCompile(`(?i)^(.+?)\s+(?:play|google)\s+store$`)
	reStoreTail = regexp.MustCompile(`(?i)\s+(app|play|google)\s+store$`)
)

// Lookup returns the flag glyph for a country or region name, or an ISO
// 3166-1 alpha-2 code. "United States", "US" and "us" all resolve to the
// same glyph. Store-region strings like "Japan App Store" resolve to the
// underlying country.
func Lookup(input string) (string, bool) {
	q := strings.TrimSpace(input)
	if q == "" {
		return "", false
	}

	if f, ok := countryFlags[strings.ToLower(q)]; ok {
		return f, true
	}
	if f, ok := countryCodes[strings.ToUpper(q)]; ok {
		return f, true
	}

	if m := reAppStore.FindStringSubmatch(q); m != nil {
		return Lookup(m[1])
	}
	if m := rePlayStore.FindStringSubmatch(q); m != nil {
		return Lookup(m[1])
	}

	return "", false
}

// NormalizeCountry strips a trailing "App Store"/"Play Store"/"Google Store"
// marker from a raw country string without attempting a flag lookup.
func NormalizeCountry(input string) string {
	q := strings.TrimSpace(input)
	if q == "" {
		return ""
	}
	return reStoreTail.ReplaceAllString(q, "")
}
