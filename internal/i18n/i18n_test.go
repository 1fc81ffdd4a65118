package i18n

import "testing"

func TestResolveHonorsQValues(t *testing.T) {
	b, err := Load("locales", "zh", []string{"zh", "en"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got := b.Resolve("ja;q=0.8, en;q=0.9")
	if got != "en" {
		t.Fatalf("expected en, got %s", got)
	}
}

func TestResolveFallsBackForUnsupported(t *testing.T) {
	b := Default()
	if got := b.Resolve("fr-FR, de;q=0.5"); got != "zh" {
		t.Fatalf("expected fallback zh, got %s", got)
	}
	if got := b.Resolve(""); got != "zh" {
		t.Fatalf("expected fallback for empty header, got %s", got)
	}
	if got := b.Resolve("zh-CN,zh;q=0.9,en;q=0.8"); got != "zh" {
		t.Fatalf("expected zh, got %s", got)
	}
}

func TestMatchReportsMisses(t *testing.T) {
	b := Default()
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{header: "", ok: false},
		{header: "*", ok: false},
		{header: "fr-FR", ok: false},
		{header: "de, fr;q=0.5", ok: false},
		{header: "en-GB,en;q=0.9", want: "en", ok: true},
		{header: "zh-TW", want: "zh", ok: true},
		{header: "fr, en;q=0.4", want: "en", ok: true},
	}
	for _, tc := range tests {
		got, ok := b.Match(tc.header)
		if ok != tc.ok || got != tc.want {
			t.Errorf("Match(%q) = (%q, %v), want (%q, %v)", tc.header, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNormalize(t *testing.T) {
	b := Default()
	cases := map[string]string{
		"zh-CN": "zh",
		"EN":    "en",
		"en_US": "en",
		"ko":    "zh",
		"":      "zh",
	}
	for in, want := range cases {
		if got := b.Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTFallsBackToDefaultThenKey(t *testing.T) {
	b := Default()
	if got := b.T("en", "card.section.echo"); got != "Emotional Echo" {
		t.Fatalf("unexpected en translation %q", got)
	}
	if got := b.T("ko", "card.default_title"); got != "心灵之卡" {
		t.Fatalf("expected zh fallback, got %q", got)
	}
	if got := b.T("en", "missing.key"); got != "missing.key" {
		t.Fatalf("expected key echo, got %q", got)
	}
}

func TestLoadRequiresFallbackFile(t *testing.T) {
	if _, err := Load(t.TempDir(), "zh", []string{"zh"}); err == nil {
		t.Fatal("expected error when fallback locale file is missing")
	}
}
