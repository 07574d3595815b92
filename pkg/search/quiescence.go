package search

import (
	"github.com/herohde/kestrel/pkg/board"
	"github.com/herohde/kestrel/pkg/eval"
	"github.com/herohde/kestrel/pkg/movegen"
)

// quiescence extends search past the nominal horizon along capturing lines only, to
// avoid misjudging positions mid-exchange. Standard fail-hard alpha-beta bookkeeping;
// no transposition table interaction.
func (s *Searcher) quiescence(pos *board.Position, alpha, beta board.Score, ply int) board.Score {
	s.nodes++
	if ply > s.selDepth {
		s.selDepth = ply
	}

	if s.isCanceled() {
		return 0
	}

	standPat := eval.Evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var list board.MoveList
	movegen.GenerateCaptures(pos, &list)
	orderMoves(&list, pos, board.NoMove, board.NoMove, board.NoMove, &s.history)

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)

		pos.MakeMove(m)
		score := -s.quiescence(pos, -beta, -alpha, ply+1)
		pos.UnmakeMove(m)

		if s.canceled {
			return 0
		}

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
