package catalog

import (
	"fmt"
	"net/url"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Record is one synthetic search result. Records are never mutated after Generate.
type Record struct {
	ID      int64
	Title   string
	URL     string
	Site    string
	Snippet string
	Info    string
	Tag     string
	Color   string
}

// Settings are the fixed constants the dataset is derived from.
type Settings struct {
	Total     int
	Topics    []string
	Resources map[string]string
	Fallback  string
	Palette   []string
}

const (
	// DefaultTotal is the reference dataset size.
	DefaultTotal = 150

	// DefaultFallback is used for topics missing from the resource map.
	DefaultFallback = "https://example.com"

	advancedSuffix = " (advanced)"
)

var defaultTopics = []string{
	"design",
	"javascript",
	"cooking",
	"travel",
	"fitness",
	"movies",
	"music",
	"science",
	"history",
	"photography",
}

var defaultResources = map[string]string{
	"design":      "https://www.smashingmagazine.com",
	"javascript":  "https://developer.mozilla.org/en-US/docs/Web/JavaScript",
	"cooking":     "https://www.seriouseats.com",
	"travel":      "https://www.lonelyplanet.com",
	"fitness":     "https://www.acefitness.org",
	"movies":      "https://www.imdb.com",
	"music":       "https://www.allmusic.com",
	"science":     "https://www.nature.com",
	"history":     "https://www.britannica.com",
	"photography": "https://www.dpreview.com",
}

var defaultPalette = []string{
	"#EA4335",
	"#4285F4",
	"#FBBC05",
	"#34A853",
	"#7C4DFF",
	"#FF7043",
}

// DefaultSettings returns the reference configuration: 150 records over ten topics.
func DefaultSettings() Settings {
	resources := make(map[string]string, len(defaultResources))
	for topic, base := range defaultResources {
		resources[topic] = base
	}
	return Settings{
		Total:     DefaultTotal,
		Topics:    append([]string(nil), defaultTopics...),
		Resources: resources,
		Fallback:  DefaultFallback,
		Palette:   append([]string(nil), defaultPalette...),
	}
}

// Generate builds records 1..s.Total. The result depends only on s.
func Generate(s Settings) []Record {
	if s.Total <= 0 || len(s.Topics) == 0 {
		return nil
	}
	caser := cases.Title(language.English)
	records := make([]Record, 0, s.Total)
	for i := 1; i <= s.Total; i++ {
		topic := s.Topics[i%len(s.Topics)]
		base := s.ResourceFor(topic)
		site := Host(base)

		suffix := ""
		if i%7 == 0 {
			suffix = advancedSuffix
		}
		title := fmt.Sprintf("Sample Result %d — %s guide %s", i, caser.String(topic), suffix)
		link := fmt.Sprintf("%s/#guide-%d", base, i)

		records = append(records, Record{
			ID:    int64(i),
			Title: title,
			URL:   link,
			Site:  site,
			Snippet: fmt.Sprintf("This is a short snippet for sample result %d. It demonstrates search preview text for the %s topic. For real reference material, see %s. Try searching by %q or \"result %d\".",
				i, topic, site, topic, i),
			Info: fmt.Sprintf("Full info for %q: This demo entry points you to %s — a real resource for %s. It includes a helpful starting page (%s), a short snippet, and this longer info block with tips and background details. Use it to test link behavior, info toggles, and highlighting.",
				title, site, topic, link),
			Tag:   topic,
			Color: s.color(i),
		})
	}
	return records
}

// ResourceFor returns the base resource for topic, or the fallback when unmapped.
func (s Settings) ResourceFor(topic string) string {
	if base, ok := s.Resources[topic]; ok && base != "" {
		return base
	}
	if s.Fallback != "" {
		return s.Fallback
	}
	return DefaultFallback
}

func (s Settings) color(i int) string {
	if len(s.Palette) == 0 {
		return ""
	}
	return s.Palette[i%len(s.Palette)]
}

// Host returns the host portion of base, or base itself when it does not parse.
func Host(base string) string {
	u, err := url.Parse(base)
	if err != nil || u.Host == "" {
		return base
	}
	return u.Host
}
