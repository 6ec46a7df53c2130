package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/searchly/internal/highlight"
	"github.com/five82/searchly/internal/state"
)

const (
	markerGlyph = "▶"
	cursorGlyph = "›"
	infoOpen    = "[info ▾]"
	infoClosed  = "[info ▸]"
	itemSpacing = 1 // blank rows between results
)

// refreshResults re-renders the results pane from the current page view.
func (m *Model) refreshResults() {
	if !m.ready {
		return
	}
	content, spans := m.renderResults()
	m.itemSpans = spans
	m.results.SetContent(content)
}

// renderResults draws every visible result and records the rows each occupies.
func (m Model) renderResults() (string, []itemSpan) {
	styles := m.theme.Styles()
	width := max(m.results.Width, minBodyWidth+bodyIndent)

	if m.view.Empty {
		msg := styles.MutedText.Render(state.EmptyMessage)
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, msg), nil
	}

	blocks := make([]string, 0, len(m.view.Items))
	spans := make([]itemSpan, 0, len(m.view.Items))
	row := 0
	for i, item := range m.view.Items {
		block := m.renderResult(item, i == m.cursor, width, styles)
		n := lineCount(block)
		spans = append(spans, itemSpan{start: row, end: row + n - 1})
		row += n + itemSpacing
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, strings.Repeat("\n", itemSpacing+1)), spans
}

// renderResult draws one record: marker and title, site, snippet, and the
// info panel when open. Every field is highlighted from its raw spans.
func (m Model) renderResult(item state.ResultView, selected bool, width int, styles Styles) string {
	gutter := "  "
	if selected {
		gutter = styles.Cursor.Render(cursorGlyph) + " "
	}

	toggle := infoClosed
	if item.InfoVisible {
		toggle = infoOpen
	}
	toggleStyle := styles.FaintText
	if selected {
		toggleStyle = styles.AccentText
	}

	title := highlight.Render(item.Title, with(styles.Title), with(styles.Highlight))
	head := gutter +
		m.theme.Marker(item.Color).Render(markerGlyph) + " " +
		hyperlink(item.URL, title) + " " +
		toggleStyle.Render(toggle)

	site := highlight.Render(item.Site, with(styles.SiteText), with(styles.Highlight))
	snippet := highlight.Render(item.Snippet, with(styles.Text), with(styles.Highlight))

	lines := []string{
		head,
		strings.Repeat(" ", bodyIndent) + hyperlink(item.URL, site),
		wrapIndented(snippet, bodyIndent, width),
	}

	if item.InfoVisible {
		info := highlight.Render(item.Info, plainText, with(styles.Highlight))
		panelWidth := max(width-bodyIndent-1, minBodyWidth)
		panel := styles.InfoPanel.Width(panelWidth).Render(info)
		lines = append(lines, indentLines(panel, bodyIndent))
	}

	return strings.Join(lines, "\n")
}

func plainText(s string) string { return s }

// with adapts a style to the span renderer signature.
func with(style lipgloss.Style) func(string) string {
	return func(s string) string { return style.Render(s) }
}

func indentLines(block string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
