package profile

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
)

var (
	// Inline label patterns: value on the same or next line, bounded length.
	reBasedIn      = regexp.MustCompile(`(?i)Account based in\s*\n?\s*([A-Za-z\s]+?)(?:\n|$)`)
	reConnectedVia = regexp.MustCompile(`(?i)Connected via\s*\n?\s*([A-Za-z\s]+(?:App|Store)?)`)
	reJoined       = regexp.MustCompile(`(?i)Joined\s+([A-Za-z]+)\s+(\d{4})`)
)

var suspensionBanners = []string{
	"Account suspended",
	"This account has been suspended",
}

// ParsePage extracts profile data from rendered profile-page HTML. Location
// and connected-via values are taken from the literal "Account based in" /
// "Connected via" labels, first by inline pattern match over the visible
// text and then by a line-by-line fallback scan. The join date comes from a
// "Joined Month Year" occurrence anywhere in the text.
func ParsePage(html string, username string) *Record {
	rec := &Record{Username: NormalizeUsername(username)}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		logrus.WithField("component", "parser").WithError(err).Debug("profile page not parseable")
		return ParseText(html, username)
	}

	// Prefer the primary column when the page structure carries it; fall
	// back to the whole document text.
	text := doc.Find(`[data-testid="primaryColumn"]`).Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Find("body").Text()
	}
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}

	parseVisibleText(rec, text)

	if doc.Find(`[data-testid="icon-lock"]`).Length() > 0 {
		rec.IsProtected = true
	}
	if doc.Find(`[data-testid="icon-verified"]`).Length() > 0 ||
		doc.Find(`[aria-label="Verified account"]`).Length() > 0 {
		rec.IsVerified = true
	}
	if rec.DisplayName == "" {
		name := strings.TrimSpace(doc.Find(`[data-testid="UserName"] span`).First().Text())
		if name != "" {
			rec.DisplayName = name
		}
	}

	return rec
}

// ParseText extracts profile data from already-flattened visible page text,
// for callers that hand over innerText rather than markup.
func ParseText(text string, username string) *Record {
	rec := &Record{Username: NormalizeUsername(username)}
	parseVisibleText(rec, text)
	return rec
}

func parseVisibleText(rec *Record, text string) {
	for _, banner := range suspensionBanners {
		if strings.Contains(text, banner) {
			rec.IsSuspended = true
			return
		}
	}

	if m := reBasedIn.FindStringSubmatch(text); m != nil {
		if loc := strings.TrimSpace(m[1]); loc != "" && len(loc) < 50 {
			rec.BasedIn = &Place{Country: loc, Raw: loc}
		}
	}
	if m := reConnectedVia.FindStringSubmatch(text); m != nil {
		if conn := strings.TrimSpace(m[1]); conn != "" {
			rec.ConnectedVia = &Place{Country: ExtractRegion(conn), Raw: conn}
		}
	}

	if rec.BasedIn == nil || rec.ConnectedVia == nil {
		scanLabelLines(rec, text)
	}

	if m := reJoined.FindStringSubmatch(text); m != nil {
		rec.JoinedMonth = m[1]
		rec.JoinedYear, _ = strconv.Atoi(m[2])
	}

	// The circled-i marker next to "Account based in" flags an unreliable
	// location.
	if strings.Contains(text, "ⓘ") {
		rec.HasVpnWarning = true
	}

	if strings.Contains(text, "These Tweets are protected") ||
		strings.Contains(text, "These posts are protected") {
		rec.IsProtected = true
	}
}

// scanLabelLines is the fallback for when the inline patterns miss: take
// the next non-empty line after a label line, unless that line itself looks
// like a different label.
func scanLabelLines(rec *Record, text string) {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}

	for i, line := range lines {
		if i+1 >= len(lines) {
			break
		}
		next := lines[i+1]

		if rec.BasedIn == nil && strings.Contains(line, "Account based in") {
			if !looksLikeLabel(next) {
				rec.BasedIn = &Place{Country: next, Raw: next}
			}
		}
		if rec.ConnectedVia == nil && strings.Contains(line, "Connected via") {
			if !looksLikeLabel(next) {
				rec.ConnectedVia = &Place{Country: ExtractRegion(next), Raw: next}
			}
		}
	}
}

func looksLikeLabel(line string) bool {
	for _, label := range []string{"Account based in", "Connected via", "Joined", "Verified", "username"} {
		if strings.Contains(line, label) {
			return true
		}
	}
	return false
}
