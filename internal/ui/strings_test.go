package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"  short  ", 10, "short"},
		{"abcdef", 3, "abc"},
		{"abcdefghij", 6, "abc..."},
		{"anything", 0, "anything"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.limit); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestWrapIndented(t *testing.T) {
	text := strings.Repeat("word ", 20)
	out := wrapIndented(text, 4, 30)
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "    ") {
			t.Fatalf("line %q is not indented", line)
		}
		if w := ansi.StringWidth(line); w > 30 {
			t.Fatalf("line %q is %d cells wide, want <= 30", line, w)
		}
	}
	if lineCount(out) < 2 {
		t.Fatalf("wrapIndented produced one line for long input")
	}
}

func TestHyperlink(t *testing.T) {
	link := hyperlink("https://www.nature.com/#guide-7", "Sample")
	if !strings.Contains(link, "https://www.nature.com/#guide-7") {
		t.Fatalf("hyperlink %q lacks the target", link)
	}
	if got := ansi.Strip(link); got != "Sample" {
		t.Fatalf("ansi.Strip(hyperlink) = %q, want Sample", got)
	}
	if got := hyperlink("", "plain"); got != "plain" {
		t.Fatalf("hyperlink without url = %q, want plain", got)
	}
}
