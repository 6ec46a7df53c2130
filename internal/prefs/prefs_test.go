package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func openStore(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open(%q) returned error: %v", path, err)
	}
	return s
}

func TestOpen_EmptyPathUsesDefaultUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s := openStore(t, "")
	want := filepath.Join(home, ".config", "searchly", "prefs.toml")
	if s.Path() != want {
		t.Fatalf("Path = %q, want %q", s.Path(), want)
	}
	if p := s.Load(); p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = \"Slate\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if p := openStore(t, path).Load(); p.Theme != "Slate" {
		t.Fatalf("Theme = %q, want Slate", p.Theme)
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "prefs.toml")
	s := openStore(t, path)

	if err := s.Save(Prefs{Theme: "Kanagawa"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if p := openStore(t, path).Load(); p.Theme != "Kanagawa" {
		t.Fatalf("Theme = %q, want Kanagawa", p.Theme)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("prefs dir has %d entries, want only prefs.toml", len(entries))
	}
}

func TestSetTheme(t *testing.T) {
	s := openStore(t, filepath.Join(t.TempDir(), "prefs.toml"))
	if err := s.SetTheme("Slate"); err != nil {
		t.Fatalf("SetTheme returned error: %v", err)
	}
	if p := s.Load(); p.Theme != "Slate" {
		t.Fatalf("Theme = %q, want Slate", p.Theme)
	}
}

func TestLoad_FallsBackToDefault(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"empty theme", "theme = \"\"\n"},
		{"invalid toml", "not valid toml {{{\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prefs.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			if p := openStore(t, path).Load(); p.Theme != defaultTheme {
				t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
			}
		})
	}
}
