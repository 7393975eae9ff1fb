package niutrans

import (
	"sort"
	"testing"
)

func TestSupportedLanguageCodes_SortedAndDocumented(t *testing.T) {
	t.Parallel()

	codes := SupportedLanguageCodes()
	if !sort.StringsAreSorted(codes) {
		t.Fatalf("codes are not sorted: %v", codes)
	}

	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		seen[code] = struct{}{}
	}
	for _, required := range []string{"zh", "en", "ja", "ko"} {
		if _, ok := seen[required]; !ok {
			t.Errorf("documented code %q is missing", required)
		}
	}
}

func TestLanguageLabel(t *testing.T) {
	t.Parallel()

	if got := LanguageLabel("zh"); got != "Chinese" {
		t.Errorf("LanguageLabel(zh) = %q, want Chinese", got)
	}
	if got := LanguageLabel(" EN "); got != "English" {
		t.Errorf("LanguageLabel(\" EN \") = %q, want English", got)
	}
	if got := LanguageLabel("xx"); got != "xx" {
		t.Errorf("LanguageLabel(xx) = %q, want passthrough", got)
	}
}

func TestLanguageHint(t *testing.T) {
	t.Parallel()

	got := LanguageHint("zh", "en", "ja", "ko")
	want := "zh(Chinese), en(English), ja(Japanese), ko(Korean)"
	if got != want {
		t.Errorf("LanguageHint() = %q, want %q", got, want)
	}
}
