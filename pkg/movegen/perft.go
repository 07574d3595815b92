package movegen

import "github.com/herohde/kestrel/pkg/board"

// Perft counts the number of leaf nodes reachable from pos at the given depth by making
// and unmaking every legal move in turn. Depth 0 always returns 1. Used to validate move
// generation against known node counts for standard test positions.
func Perft(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var list board.MoveList
	Generate(pos, &list)

	if depth == 1 {
		return uint64(list.Len())
	}

	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		pos.MakeMove(m)
		nodes += Perft(pos, depth-1)
		pos.UnmakeMove(m)
	}
	return nodes
}

// Divide returns the perft count at depth-1 for each legal root move, keyed by the move's
// coordinate string. Used to localize a move generator discrepancy against a reference
// engine's per-move breakdown.
func Divide(pos *board.Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth < 1 {
		return result
	}

	var list board.MoveList
	Generate(pos, &list)

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		pos.MakeMove(m)
		result[m.String()] = Perft(pos, depth-1)
		pos.UnmakeMove(m)
	}
	return result
}
