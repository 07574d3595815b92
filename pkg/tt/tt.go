// Package tt implements the search's transposition table: a fixed-size, open-addressed
// array of entries keyed by Zobrist hash, with a depth/age replacement policy and
// bound-flagged cutoff logic.
package tt

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/herohde/kestrel/pkg/board"
	"github.com/seekerror/logw"
)

// Bound classifies a stored score: whether it is exact, or only a bound found during
// an alpha-beta cutoff.
type Bound uint8

const (
	// Exact means the stored score is the position's true minimax value.
	Exact Bound = iota
	// Lower means the true value is at least the stored score (a beta cutoff occurred).
	Lower
	// Upper means the true value is at most the stored score (no move raised alpha).
	Upper
)

func (b Bound) String() string {
	switch b {
	case Exact:
		return "exact"
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	default:
		return "?"
	}
}

// Entry is one transposition table slot.
type Entry struct {
	Hash  uint64
	Score board.Score
	Move  board.Move
	Depth int
	Bound Bound
	Age   uint32
}

// empty reports whether the slot has never been written.
func (e *Entry) empty() bool {
	return e.Hash == 0
}

// Table is a fixed-size, open-addressed transposition table. Not safe for concurrent
// use: the engine's search is single-threaded, per design.
type Table struct {
	entries []Entry
	mask    uint64
	age     uint32
	used    int
}

// New allocates a table sized to the largest power of two number of entries that fits
// within sizeBytes.
func New(ctx context.Context, sizeBytes uint64) *Table {
	entrySize := uint64(40)
	n := sizeBytes / entrySize
	if n == 0 {
		n = 1
	}
	shift := bits.Len64(n) - 1
	count := uint64(1) << shift

	logw.Infof(ctx, "Allocating %vMB TT with %v entries", sizeBytes>>20, count)

	return &Table{
		entries: make([]Entry, count),
		mask:    count - 1,
	}
}

func (t *Table) slot(hash uint64) *Entry {
	return &t.entries[hash&t.mask]
}

// Probe returns the entry stored for hash, if its stored hash matches.
func (t *Table) Probe(hash uint64) (Entry, bool) {
	e := t.slot(hash)
	if e.empty() || e.Hash != hash {
		return Entry{}, false
	}
	return *e, true
}

// Store writes an entry for hash, replacing the current occupant if: the slot is
// empty, the slot's age differs from the table's current generation (stale), or the
// incoming depth is at least the stored depth.
func (t *Table) Store(hash uint64, score board.Score, move board.Move, depth int, bound Bound) {
	e := t.slot(hash)
	if !e.empty() && e.Age == t.age && depth < e.Depth {
		return
	}
	if e.empty() {
		t.used++
	}
	*e = Entry{
		Hash:  hash,
		Score: score,
		Move:  move,
		Depth: depth,
		Bound: bound,
		Age:   t.age,
	}
}

// NewGeneration increments the table's age, making entries from the previous root
// search freely replaceable. Called once at the start of each root search.
func (t *Table) NewGeneration() {
	t.age++
}

// ProbeCutoff reports whether the probed entry permits an immediate cutoff at the
// given query depth and alpha-beta window, and if so, the usable score.
func ProbeCutoff(e Entry, depth int, alpha, beta board.Score) (board.Score, bool) {
	if e.Depth < depth {
		return 0, false
	}
	switch {
	case e.Bound == Exact:
		return e.Score, true
	case e.Bound == Lower && e.Score >= beta:
		return e.Score, true
	case e.Bound == Upper && e.Score <= alpha:
		return e.Score, true
	default:
		return 0, false
	}
}

// ToTT normalizes a mate score for storage by adding the current ply, so that "mate in
// N from root" is stored independent of the distance to the node where it was found.
func ToTT(score board.Score, ply int) board.Score {
	if score > board.Mate-1000 {
		return score + board.Score(ply)
	}
	if score < -board.Mate+1000 {
		return score - board.Score(ply)
	}
	return score
}

// FromTT reverses ToTT's normalization when retrieving a stored mate score.
func FromTT(score board.Score, ply int) board.Score {
	if score > board.Mate-1000 {
		return score - board.Score(ply)
	}
	if score < -board.Mate+1000 {
		return score + board.Score(ply)
	}
	return score
}

// Size returns the table's capacity in bytes.
func (t *Table) Size() uint64 {
	return uint64(len(t.entries)) * 40
}

// Used returns the table's occupancy fraction in [0,1].
func (t *Table) Used() float64 {
	return float64(t.used) / float64(len(t.entries))
}

func (t *Table) String() string {
	return fmt.Sprintf("TT[%d entries @ %d%%]", len(t.entries), int(100*t.Used()))
}
