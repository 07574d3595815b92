package search

import (
	"github.com/herohde/kestrel/pkg/board"
	"github.com/herohde/kestrel/pkg/eval"
)

// Move ordering tiers, highest first. Each tier's score occupies a disjoint range so a
// single integer comparison orders across tiers and within them.
const (
	tierHashMove  = 1 << 24
	tierCapture   = 1 << 20
	tierPromotion = 1 << 16
	// tierKiller must clear historyMax (pkg/search's history.go cap on a quiet move's
	// learned score) so a heavily-rewarded history move never outranks an actual killer.
	tierKiller = historyMax + 1024
)

// orderMoves assigns each move in list a priority per spec: the hash move first, then
// captures by MVV-LVA, then promotions, then killer moves for this ply, then the
// remaining quiets by history score. It then selection-sorts list in place by that
// priority, highest first, reusing the list's own backing array (no allocation).
func orderMoves(list *board.MoveList, pos *board.Position, hashMove board.Move, killer1, killer2 board.Move, hist *historyTable) {
	n := list.Len()
	var scoreBuf [board.MaxMoves]int
	scores := scoreBuf[:n]
	us := pos.SideToMove()

	for i := 0; i < n; i++ {
		scores[i] = scoreMove(list.At(i), pos, hashMove, killer1, killer2, hist, us)
	}

	for i := 0; i < n; i++ {
		best := i
		for j := i + 1; j < n; j++ {
			if scores[j] > scores[best] {
				best = j
			}
		}
		if best != i {
			scores[i], scores[best] = scores[best], scores[i]
			list.Swap(i, best)
		}
	}
}

func scoreMove(m board.Move, pos *board.Position, hashMove, killer1, killer2 board.Move, hist *historyTable, us board.Color) int {
	if m == hashMove {
		return tierHashMove
	}

	if m.IsCapture() {
		_, victim, _ := pos.PieceOn(m.To())
		if m.Flag() == board.EnPassant {
			victim = board.Pawn
		}
		_, attacker, _ := pos.PieceOn(m.From())
		return tierCapture + 10*int(eval.PieceValue(victim)) - int(eval.PieceValue(attacker))
	}

	if m.IsPromotion() {
		return tierPromotion + int(eval.PieceValue(m.Flag().PromotionPiece()))
	}

	if m == killer1 {
		return tierKiller + 1
	}
	if m == killer2 {
		return tierKiller
	}

	return hist.probe(us, m)
}
