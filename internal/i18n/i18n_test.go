package i18n

import (
	"strings"
	"testing"
)

func TestResolveFallsBackToDefault(t *testing.T) {
	got := Resolve("Klingon", KeyWelcome, nil)
	want := Resolve(Default, KeyWelcome, nil)
	if got != want {
		t.Errorf("Resolve(unknown language) = %q, want default %q", got, want)
	}
}

func TestResolveUnknownKeyReturnsKey(t *testing.T) {
	if got := Resolve("English", "no-such-key", nil); got != "no-such-key" {
		t.Errorf("Resolve(unknown key) = %q, want the key itself", got)
	}
}

func TestResolveSubstitutesPlaceholders(t *testing.T) {
	got := Resolve("English", KeySoldOut, map[string]string{
		"type": "Guided Tour",
		"date": "2026-09-10",
	})
	if !strings.Contains(got, "Guided Tour") || !strings.Contains(got, "2026-09-10") {
		t.Errorf("Resolve(soldOut) = %q, missing substituted values", got)
	}
	if strings.Contains(got, "{type}") || strings.Contains(got, "{date}") {
		t.Errorf("Resolve(soldOut) = %q, placeholders not substituted", got)
	}
}

func TestResolveLeavesUnresolvedPlaceholdersVerbatim(t *testing.T) {
	got := Resolve("English", KeySoldOut, map[string]string{"type": "Guided Tour"})
	if !strings.Contains(got, "{date}") {
		t.Errorf("Resolve(soldOut, partial params) = %q, want {date} left verbatim", got)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		input string
		want  string
		found bool
	}{
		{"English", "English", true},
		{"english", "English", true},
		{"  French  ", "French", true},
		{"je voudrais continuer en français", "French", true},
		{"español por favor", "Spanish", true},
		{"日本語でお願いします", "Japanese", true},
		{"deutsch bitte", "German", true},
		{"hi", "Hindi", true},
		{"de", "German", true},
		{"klingon", "English", false},
		{"", "English", false},
	}

	for _, tt := range tests {
		got, found := Match(tt.input)
		if got != tt.want || found != tt.found {
			t.Errorf("Match(%q) = (%q, %v), want (%q, %v)", tt.input, got, found, tt.want, tt.found)
		}
	}
}

func TestLanguagesOrder(t *testing.T) {
	langs := Languages()
	if len(langs) != 7 {
		t.Fatalf("Languages() returned %d entries, want 7", len(langs))
	}
	wantFirst := []string{"English", "French", "Spanish", "Hindi"}
	for i, want := range wantFirst {
		if langs[i] != want {
			t.Errorf("Languages()[%d] = %q, want %q", i, langs[i], want)
		}
	}
}

func TestGenders(t *testing.T) {
	fr := Genders("French")
	if len(fr) != 3 {
		t.Fatalf("Genders(French) returned %d entries, want 3", len(fr))
	}
	if fr[0] != "Masculin" || fr[1] != "Féminin" || fr[2] != "Autre" {
		t.Errorf("Genders(French) = %v, wrong labels or order", fr)
	}

	unknown := Genders("Klingon")
	english := Genders(Default)
	for i := range english {
		if unknown[i] != english[i] {
			t.Errorf("Genders(unknown)[%d] = %q, want English fallback %q", i, unknown[i], english[i])
		}
	}
}
