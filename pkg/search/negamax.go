package search

import (
	"github.com/herohde/kestrel/pkg/board"
	"github.com/herohde/kestrel/pkg/movegen"
	"github.com/herohde/kestrel/pkg/tt"
)

// negamax returns pos's score at depth from the side-to-move's perspective, within
// window (alpha, beta), recording results in the transposition table. ply is the
// distance from the search root, used for mate-distance scoring, the killer table, and
// draw detection (never declared a draw at the root itself).
func (s *Searcher) negamax(pos *board.Position, depth int, alpha, beta board.Score, ply int) board.Score {
	s.nodes++
	if ply > s.selDepth {
		s.selDepth = ply
	}

	if s.isCanceled() {
		return 0
	}

	if ply > 0 && (pos.IsFiftyMoveDraw() || pos.IsRepetition() || pos.IsInsufficientMaterial()) {
		return board.Draw
	}

	if depth <= 0 {
		return s.quiescence(pos, alpha, beta, ply)
	}

	var hashMove board.Move
	if e, ok := s.tt.Probe(pos.Hash()); ok {
		hashMove = e.Move
		if score, ok := tt.ProbeCutoff(e, depth, alpha, beta); ok {
			return tt.FromTT(score, ply)
		}
	}

	var list board.MoveList
	movegen.Generate(pos, &list)
	if list.Len() == 0 {
		if movegen.IsInCheck(pos, pos.SideToMove()) {
			return -board.Mate + board.Score(ply)
		}
		return board.Draw
	}

	k1, k2 := s.killers.probe(ply)
	orderMoves(&list, pos, hashMove, k1, k2, &s.history)

	us := pos.SideToMove()
	best := board.NoMove
	bestScore := -board.Infinite
	bound := tt.Upper

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)

		pos.MakeMove(m)
		score := -s.negamax(pos, depth-1, -beta, -alpha, ply+1)
		pos.UnmakeMove(m)

		if s.canceled {
			return 0
		}

		if score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
			bound = tt.Exact
		}
		if alpha >= beta {
			bound = tt.Lower
			if !m.IsCapture() && !m.IsPromotion() {
				s.killers.update(ply, m)
				s.history.update(us, m, depth)
			}
			break
		}
	}

	s.tt.Store(pos.Hash(), tt.ToTT(bestScore, ply), best, depth, bound)
	return bestScore
}
