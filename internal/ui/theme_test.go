package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	for _, name := range names {
		if GetTheme(name).Name != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, GetTheme(name).Name)
		}
	}
}

func TestNextTheme(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Nightfox", "Kanagawa"},
		{"Kanagawa", "Slate"},
		{"Slate", "Nightfox"},
		{"Unknown", "Nightfox"},
	}
	for _, tc := range cases {
		if got := NextTheme(tc.in); got != tc.want {
			t.Fatalf("NextTheme(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGetTheme_UnknownFallsBack(t *testing.T) {
	if got := GetTheme("Dracula").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Dracula).Name = %q, want Nightfox (fallback)", got)
	}
}

func TestThemesDefineHighlightColors(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		if th.HighlightBg == "" || th.HighlightFg == "" {
			t.Fatalf("theme %s lacks highlight colors", name)
		}
	}
}
