package profile

import "testing"

func TestNormalizeUsername(t *testing.T) {
	cases := map[string]string{
		"@Alice":   "alice",
		"BOB":      "bob",
		" @Carol ": "carol",
		"dave":     "dave",
	}
	for in, want := range cases {
		if got := NormalizeUsername(in); got != want {
			t.Errorf("NormalizeUsername(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExtractRegion(t *testing.T) {
	cases := map[string]string{
		"Europe Android App":      "Europe",
		"Singapore":               "Singapore",
		"Japan iOS App Store":     "Japan",
		"United States iPhone":    "United States",
		"North America Web":       "North America",
		"middle east android app": "middle east",
	}
	for in, want := range cases {
		if got := ExtractRegion(in); got != want {
			t.Errorf("ExtractRegion(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHasUsefulData(t *testing.T) {
	empty := &Record{Username: "alice", IsVerified: true, IsProtected: true}
	if empty.HasUsefulData() {
		t.Error("record with only boolean flags should not count as useful")
	}

	if (&Record{JoinedYear: 2009}).HasUsefulData() == false {
		t.Error("join year alone should count as useful")
	}
	if (&Record{BasedIn: &Place{Country: "Japan", Raw: "Japan"}}).HasUsefulData() == false {
		t.Error("location alone should count as useful")
	}
	var nilRec *Record
	if nilRec.HasUsefulData() {
		t.Error("nil record should not count as useful")
	}
}

func TestMergePreservesKnownFacts(t *testing.T) {
	existing := &Record{
		Username:      "alice",
		BasedIn:       &Place{Country: "Japan", Raw: "Japan"},
		ConnectedVia:  &Place{Country: "Asia", Raw: "Asia Android App"},
		HasVpnWarning: true,
		JoinedYear:    2015,
		JoinedMonth:   "Mar",
		DisplayName:   "Alice",
	}
	fresh := &Record{Username: "alice", IsVerified: true}

	merged := Merge(existing, fresh)

	if merged.BasedIn == nil || merged.BasedIn.Country != "Japan" {
		t.Errorf("basedIn regressed: %+v", merged.BasedIn)
	}
	if merged.ConnectedVia == nil || merged.ConnectedVia.Country != "Asia" {
		t.Errorf("connectedVia regressed: %+v", merged.ConnectedVia)
	}
	if !merged.HasVpnWarning {
		t.Error("vpn warning regressed")
	}
	if merged.JoinedYear != 2015 || merged.JoinedMonth != "Mar" {
		t.Errorf("join date regressed: %d %s", merged.JoinedYear, merged.JoinedMonth)
	}
	if merged.DisplayName != "Alice" {
		t.Errorf("display name regressed: %q", merged.DisplayName)
	}
	if !merged.IsVerified {
		t.Error("fresh verification flag lost")
	}
}

func TestMergeFreshValuesWin(t *testing.T) {
	existing := &Record{
		Username: "bob",
		BasedIn:  &Place{Country: "Germany", Raw: "Germany"},
	}
	fresh := &Record{
		Username:   "bob",
		BasedIn:    &Place{Country: "France", Raw: "France"},
		JoinedYear: 2020,
	}

	merged := Merge(existing, fresh)
	if merged.BasedIn.Country != "France" {
		t.Errorf("fresh basedIn should win, got %q", merged.BasedIn.Country)
	}
	if merged.JoinedYear != 2020 {
		t.Errorf("fresh join year should win, got %d", merged.JoinedYear)
	}
}

func TestMergeNilSides(t *testing.T) {
	rec := &Record{Username: "carol"}
	if Merge(nil, rec) != rec {
		t.Error("merge with nil existing should return fresh")
	}
	if Merge(rec, nil) != rec {
		t.Error("merge with nil fresh should return existing")
	}
}
