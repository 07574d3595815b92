package search

import "github.com/herohde/kestrel/pkg/board"

// historyMax caps a history_table entry so it never dominates MVV-LVA/killer ordering
// regardless of how many cutoffs accumulate over a long search.
const historyMax = 10000

// historyTable scores quiet moves by how often they have caused a beta cutoff in the
// past, indexed by side to move, origin, and destination square.
type historyTable struct {
	scores [board.NumColors][64][64]int
}

func (h *historyTable) probe(us board.Color, m board.Move) int {
	return h.scores[us][m.From()][m.To()]
}

// update adds depth*depth to the move's history score, capped at historyMax.
func (h *historyTable) update(us board.Color, m board.Move, depth int) {
	v := h.scores[us][m.From()][m.To()] + depth*depth
	if v > historyMax {
		v = historyMax
	}
	h.scores[us][m.From()][m.To()] = v
}

func (h *historyTable) clear() {
	h.scores = [board.NumColors][64][64]int{}
}
