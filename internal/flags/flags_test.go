package flags

import "testing"

func TestLookupNameAndCodeAgree(t *testing.T) {
	byName, ok := Lookup("United States")
	if !ok {
		t.Fatal("expected a flag for United States")
	}
	byCode, ok := Lookup("US")
	if !ok {
		t.Fatal("expected a flag for US")
	}
	byLowerCode, ok := Lookup("us")
	if !ok {
		t.Fatal("expected a flag for us")
	}
	if byName != byCode || byCode != byLowerCode {
		t.Errorf("name/code lookups disagree: %q %q %q", byName, byCode, byLowerCode)
	}
}

func TestLookupUnknown(t *testing.T) {
	if f, ok := Lookup("Nonexistent Country"); ok {
		t.Errorf("expected no flag, got %q", f)
	}
	if _, ok := Lookup(""); ok {
		t.Error("expected no flag for empty input")
	}
}

func TestLookupStoreSuffix(t *testing.T) {
	plain, _ := Lookup("Japan")
	appStore, ok := Lookup("Japan App Store")
	if !ok || appStore != plain {
		t.Errorf("Japan App Store = %q, want %q", appStore, plain)
	}
	playStore, ok := Lookup("Brazil Play Store")
	if !ok {
		t.Fatal("expected a flag for Brazil Play Store")
	}
	brazil, _ := Lookup("Brazil")
	if playStore != brazil {
		t.Errorf("Brazil Play Store = %q, want %q", playStore, brazil)
	}
}

func TestLookupRegions(t *testing.T) {
	for _, region := range []string{"Europe", "Asia", "Middle East", "Worldwide"} {
		if _, ok := Lookup(region); !ok {
			t.Errorf("expected a flag for region %q", region)
		}
	}
}

func TestNormalizeCountry(t *testing.T) {
	cases := map[string]string{
		"Japan App Store":     "Japan",
		"Brazil Play Store":   "Brazil",
		"Canada Google Store": "Canada",
		"Singapore":           "Singapore",
		"  France  ":          "France",
		"":                    "",
	}
	for in, want := range cases {
		if got := NormalizeCountry(in); got != want {
			t.Errorf("NormalizeCountry(%q) = %q, want %q", in, got, want)
		}
	}
}
