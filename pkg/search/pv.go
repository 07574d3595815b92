package search

import (
	"github.com/herohde/kestrel/pkg/board"
	"github.com/herohde/kestrel/pkg/tt"
)

// extractPV walks the transposition table from pos along each position's stored best
// move, up to maxLen plies, to reconstruct the principal variation found by the last
// completed search. Stops early on a TT miss, a stored NoMove, or a repeated hash (a
// cycle in the stored moves, which would otherwise walk forever). Makes and unmakes
// each move along the way; pos is restored to its original state before returning.
func extractPV(table *tt.Table, pos *board.Position, maxLen int) []board.Move {
	var pv []board.Move
	seen := make(map[uint64]bool)

	for i := 0; i < maxLen; i++ {
		e, ok := table.Probe(pos.Hash())
		if !ok || e.Move == board.NoMove || seen[pos.Hash()] {
			break
		}
		seen[pos.Hash()] = true

		pv = append(pv, e.Move)
		pos.MakeMove(e.Move)
	}

	for i := len(pv) - 1; i >= 0; i-- {
		pos.UnmakeMove(pv[i])
	}
	return pv
}
