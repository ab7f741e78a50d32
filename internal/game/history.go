package game

import (
	"fmt"
	"strings"
)

// Entry is one applied move in the game record.
type Entry struct {
	Mover     PlayerType
	Take      Move
	Remaining int
}

// History is the in-memory record of a game's moves. It lives only for
// the session; nothing is persisted.
type History struct {
	starting int
	entries  []Entry
}

// NewHistory creates an empty history for a game starting at count.
func NewHistory(count int) *History {
	return &History{starting: count}
}

// Record appends an applied move.
func (h *History) Record(mover PlayerType, take Move, remaining int) {
	h.entries = append(h.entries, Entry{Mover: mover, Take: take, Remaining: remaining})
}

// Moves returns a copy of the recorded entries in play order.
func (h *History) Moves() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of recorded moves.
func (h *History) Len() int {
	return len(h.entries)
}

// Transcript renders the game record as a readable summary, one line
// per move plus the result line once the pile is empty.
func (h *History) Transcript() string {
	var b strings.Builder
	fmt.Fprintf(&b, "*** GAME of %d sticks ***\n", h.starting)

	for i, e := range h.entries {
		fmt.Fprintf(&b, "%2d. %s took %d, %d left\n", i+1, e.Mover, e.Take, e.Remaining)
	}

	if n := len(h.entries); n > 0 && h.entries[n-1].Remaining == 0 {
		if h.entries[n-1].Mover == AI {
			b.WriteString("Computer took the last stick and loses. You win!\n")
		} else {
			b.WriteString("You took the last stick and lose. Computer wins!\n")
		}
	}
	return b.String()
}
