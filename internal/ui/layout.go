package ui

import "time"

// Screen rows reserved around the results viewport: header, result count,
// pager and footer.
const chromeHeight = 4

// Result block geometry.
const (
	// gutterWidth holds the cursor glyph and a space.
	gutterWidth = 2

	// bodyIndent aligns site, snippet and info under the title text.
	bodyIndent = gutterWidth + 4

	// minBodyWidth keeps wrapping sane on very narrow terminals.
	minBodyWidth = 20
)

// Timing constants.
const (
	// statusTTL is how long a footer status message stays visible.
	statusTTL = 3 * time.Second
)
