package catalog

import (
	"reflect"
	"strings"
	"testing"
)

func TestGenerate_IDsAreContiguous(t *testing.T) {
	records := Generate(DefaultSettings())
	if len(records) != DefaultTotal {
		t.Fatalf("len(Generate) = %d, want %d", len(records), DefaultTotal)
	}
	seen := make(map[int64]bool, len(records))
	for i, r := range records {
		if r.ID != int64(i+1) {
			t.Fatalf("records[%d].ID = %d, want %d", i, r.ID, i+1)
		}
		if seen[r.ID] {
			t.Fatalf("duplicate ID %d", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestGenerate_IsDeterministic(t *testing.T) {
	a := Generate(DefaultSettings())
	b := Generate(DefaultSettings())
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("Generate returned different datasets for identical settings")
	}
}

func TestGenerate_TagsComeFromTopics(t *testing.T) {
	s := DefaultSettings()
	allowed := make(map[string]bool, len(s.Topics))
	for _, topic := range s.Topics {
		allowed[topic] = true
	}
	counts := make(map[string]int)
	for _, r := range Generate(s) {
		if !allowed[r.Tag] {
			t.Fatalf("record %d has tag %q outside topic set", r.ID, r.Tag)
		}
		counts[r.Tag]++
	}
	for _, topic := range s.Topics {
		if counts[topic] != DefaultTotal/len(s.Topics) {
			t.Fatalf("count[%q] = %d, want %d", topic, counts[topic], DefaultTotal/len(s.Topics))
		}
	}
}

func TestGenerate_ReferenceRecord(t *testing.T) {
	records := Generate(DefaultSettings())

	first := records[0]
	if first.Tag != "javascript" {
		t.Fatalf("records[0].Tag = %q, want javascript", first.Tag)
	}
	if first.Title != "Sample Result 1 — Javascript guide " {
		t.Fatalf("records[0].Title = %q", first.Title)
	}
	if first.URL != "https://developer.mozilla.org/en-US/docs/Web/JavaScript/#guide-1" {
		t.Fatalf("records[0].URL = %q", first.URL)
	}
	if first.Site != "developer.mozilla.org" {
		t.Fatalf("records[0].Site = %q, want developer.mozilla.org", first.Site)
	}
	if first.Color != "#4285F4" {
		t.Fatalf("records[0].Color = %q, want #4285F4", first.Color)
	}
	if !strings.Contains(first.Snippet, `Try searching by "javascript" or "result 1".`) {
		t.Fatalf("records[0].Snippet = %q", first.Snippet)
	}
	if !strings.HasPrefix(first.Info, `Full info for "Sample Result 1 — Javascript guide ": `) {
		t.Fatalf("records[0].Info = %q", first.Info)
	}

	seventh := records[6]
	if !strings.HasSuffix(seventh.Title, " (advanced)") {
		t.Fatalf("records[6].Title = %q, want advanced suffix", seventh.Title)
	}
	if seventh.Tag != "science" {
		t.Fatalf("records[6].Tag = %q, want science", seventh.Tag)
	}
}

func TestGenerate_UnmappedTopicUsesFallback(t *testing.T) {
	s := Settings{Total: 2, Topics: []string{"knitting"}, Palette: []string{"#000000"}}
	records := Generate(s)
	if len(records) != 2 {
		t.Fatalf("len(Generate) = %d, want 2", len(records))
	}
	if records[0].URL != DefaultFallback+"/#guide-1" {
		t.Fatalf("URL = %q, want fallback resource", records[0].URL)
	}
	if records[0].Site != "example.com" {
		t.Fatalf("Site = %q, want example.com", records[0].Site)
	}
}

func TestGenerate_EmptySettings(t *testing.T) {
	if got := Generate(Settings{}); got != nil {
		t.Fatalf("Generate(empty) = %v, want nil", got)
	}
}

func TestDefaultSettings_ReturnsCopies(t *testing.T) {
	s := DefaultSettings()
	s.Topics[0] = "mutated"
	s.Resources["design"] = "https://mutated.example"
	fresh := DefaultSettings()
	if fresh.Topics[0] != "design" {
		t.Fatalf("DefaultSettings topics were shared: %q", fresh.Topics[0])
	}
	if fresh.Resources["design"] != "https://www.smashingmagazine.com" {
		t.Fatalf("DefaultSettings resources were shared: %q", fresh.Resources["design"])
	}
}

func TestHost(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://www.nature.com", "www.nature.com"},
		{"https://developer.mozilla.org/en-US/docs/Web/JavaScript", "developer.mozilla.org"},
		{"not a url", "not a url"},
	}
	for _, tc := range cases {
		if got := Host(tc.in); got != tc.want {
			t.Fatalf("Host(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
