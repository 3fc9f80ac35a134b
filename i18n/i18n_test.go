package i18n_test

import (
	"testing"

	"github.com/tomatoplanet/leads-go/i18n"
)

func TestMatchLocale(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"en", "en"},
		{"en-US,en;q=0.9", "en"},
		{"zh-TW,zh;q=0.9,en;q=0.8", "zh"},
		{"ZH-CN", "zh"},
		{"fr-FR,fr;q=0.9", "en"},
		{"", "en"},
	}
	for _, c := range cases {
		if got := i18n.MatchLocale(c.header); got != c.want {
			t.Errorf("MatchLocale(%q) = %q, want %q", c.header, got, c.want)
		}
	}
}

func TestMessage(t *testing.T) {
	if got := i18n.Message("en", "brand_submitted"); got != "Brand application submitted successfully!" {
		t.Errorf("en brand_submitted = %q", got)
	}
	if got := i18n.Message("en", "creator_submitted"); got != "Creator application submitted successfully!" {
		t.Errorf("en creator_submitted = %q", got)
	}
	// zh catalog carries its own translation
	if got := i18n.Message("zh", "brand_submitted"); got == "" || got == "brand_submitted" {
		t.Errorf("zh brand_submitted missing, got %q", got)
	}
}

func TestMessageFallback(t *testing.T) {
	// unknown locale falls back to en
	if got := i18n.Message("fr", "brand_submitted"); got != "Brand application submitted successfully!" {
		t.Errorf("fallback = %q", got)
	}
	// unknown key falls back to the key itself
	if got := i18n.Message("en", "no_such_key"); got != "no_such_key" {
		t.Errorf("unknown key = %q", got)
	}
}
