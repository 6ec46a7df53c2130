package state

import (
	"fmt"
	"math/rand/v2"
)

// ActionKind enumerates the inputs the session reacts to.
type ActionKind int

const (
	ActionSubmit ActionKind = iota
	ActionClear
	ActionNextPage
	ActionPrevPage
	ActionToggleInfo
	ActionRandomPick
)

func (k ActionKind) String() string {
	switch k {
	case ActionSubmit:
		return "submit"
	case ActionClear:
		return "clear"
	case ActionNextPage:
		return "next"
	case ActionPrevPage:
		return "prev"
	case ActionToggleInfo:
		return "toggle-info"
	case ActionRandomPick:
		return "random-pick"
	default:
		return fmt.Sprintf("action(%d)", int(k))
	}
}

// Action is one input to Reduce. Only the fields relevant to Kind are read.
type Action struct {
	Kind  ActionKind
	Query string // ActionSubmit
	ID    int64  // ActionToggleInfo
	Index int    // ActionRandomPick: position in the full dataset
}

// Submit filters by query and returns to page 1.
func Submit(query string) Action { return Action{Kind: ActionSubmit, Query: query} }

// Clear is Submit("").
func Clear() Action { return Action{Kind: ActionClear} }

// NextPage advances one page, stopping at the last.
func NextPage() Action { return Action{Kind: ActionNextPage} }

// PrevPage goes back one page, stopping at the first.
func PrevPage() Action { return Action{Kind: ActionPrevPage} }

// ToggleInfo flips the info panel of record id.
func ToggleInfo(id int64) Action { return Action{Kind: ActionToggleInfo, ID: id} }

// RandomPick jumps to the dataset record at index.
func RandomPick(index int) Action { return Action{Kind: ActionRandomPick, Index: index} }

// PickRandom chooses a uniform index in [0, n). The choice lives outside
// Reduce so transitions stay deterministic.
func PickRandom(rng *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}
