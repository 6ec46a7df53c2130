// Package state holds the search session and the transitions that change it.
//
// # Overview
//
// The session is the single piece of mutable UI state: the current query, the
// filtered records, the page number, and the set of records whose info panel
// is open. It is a plain value. Every change goes through Reduce, which takes
// a Session and an Action and returns the next Session without modifying the
// input. Rendering is a separate pure step, Session.View.
//
//	┌──────────┐  Action   ┌──────────┐   View()   ┌──────────┐
//	│ Session  │──────────→│ Reduce   │───────────→│ PageView │
//	└──────────┘           └────┬─────┘            └──────────┘
//	     ↑                      │
//	     └──────────────────────┘
//
// # Transitions
//
//   - Submit(q): query = q, refilter, page = 1
//   - Clear(): Submit("")
//   - NextPage/PrevPage: page ± 1, clamped to [1, TotalPages]; no refilter
//   - ToggleInfo(id): flip id in Expanded
//   - RandomPick(i): Submit(records[i].Tag), move to the page containing
//     records[i], open its info panel, and set Focus and ScrollTop
//
// Randomness is kept out of Reduce. Callers choose the index with PickRandom
// and pass it in the action, so a recorded action list always replays to the
// same session (see Replay).
//
// # Rendering
//
// View paginates the filtered set and highlights title, site, snippet and, for
// expanded records only, info. Highlighting is recomputed from raw record
// fields on every call. When nothing matches, View reports Empty and no pager.
//
// # Concurrency
//
// None. The UI event loop is the only caller and runs one transition at a time.
package state
