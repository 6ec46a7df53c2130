package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderMain renders the full screen: header, count, results, pager, footer.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderMeta())
	b.WriteString("\n")
	b.WriteString(m.results.View())
	b.WriteString("\n")
	b.WriteString(m.renderPager())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader renders the logo and the query box on the surface bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	content := bg.Spaces(1) + bg.Render("searchly", styles.Logo) + bg.Spaces(2) + m.input.View()
	return bg.FillLine(content, m.width)
}

// renderMeta renders the result count. It is blank when nothing matched.
func (m Model) renderMeta() string {
	if m.view.Empty {
		return ""
	}
	styles := m.theme.Styles()
	return lipgloss.NewStyle().Padding(0, 1).Render(styles.MutedText.Render(m.view.CountLine()))
}

// renderPager renders "← Prev  Page n of m  Next →". It is blank for a single page.
func (m Model) renderPager() string {
	if !m.view.ShowPager {
		return ""
	}
	styles := m.theme.Styles()

	prev := styles.Disabled.Render("← Prev")
	if m.view.HasPrev {
		prev = styles.Enabled.Render("← Prev")
	}
	next := styles.Disabled.Render("Next →")
	if m.view.HasNext {
		next = styles.Enabled.Render("Next →")
	}
	label := styles.Text.Render(m.view.PagerLabel())

	pager := prev + "  " + label + "  " + next
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, pager)
}

// renderFooter renders the transient status or the command hints.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if m.status != "" {
		style := styles.MutedText
		if m.statusErr {
			style = styles.DangerText
		}
		return styles.Footer.Width(m.width).Render(style.Render(m.status))
	}

	hints := m.keys.ShortHelp()
	if m.input.Focused() {
		hints = []key.Binding{m.keys.Submit, m.keys.Clear}
	}
	content := commandHints(hints, styles) + "  " +
		styles.AccentText.Render("T") + styles.FaintText.Render(":"+m.theme.Name)
	return styles.Footer.Width(m.width).Render(ansi.Truncate(content, max(m.width-2, 1), "…"))
}
