// Package ui provides the terminal interface for searchly.
//
// The UI is a Bubble Tea program. Model owns a state.Session and never
// mutates it directly: every key that changes search state is turned into a
// state.Action and run through state.Reduce. The rendered page comes from
// Session.View, so highlighting and pagination live outside this package.
//
// # Package Structure
//
//   - app.go: Model, Update loop, key routing and the Run entry point
//   - header.go: query bar, result count, pager and footer
//   - results.go: result list rendering into the scrollable viewport
//   - help.go: keyboard shortcut overlay
//   - theme.go: color themes and derived lipgloss styles
//   - keys.go: key bindings
//
// # Key Bindings
//
//   - /: Focus the query box
//   - Enter: Submit the query (in the query box)
//   - Esc: Clear the query
//   - j/k: Move between results
//   - i or Enter: Toggle the info panel of the selected result
//   - n/p: Next/previous page
//   - r: Random pick
//   - y: Copy the selected URL
//   - T: Cycle theme
//   - ?: Help
//   - q or Ctrl+C: Quit
package ui
