// Package search implements alpha-beta game tree search over a mutable board.Position:
// negamax with quiescence, iterative deepening with aspiration windows, a
// transposition table, killer moves, history heuristic, and MVV-LVA capture ordering.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/herohde/kestrel/pkg/board"
	"github.com/herohde/kestrel/pkg/eval"
	"github.com/herohde/kestrel/pkg/movegen"
	"github.com/herohde/kestrel/pkg/tt"
	"github.com/seekerror/logw"
)

// MaxPly bounds search recursion depth and the per-ply killer move table.
const MaxPly = 128

// aspirationWindow is the half-width of the initial alpha-beta window placed around
// the previous iteration's score, widened on fail-high/fail-low.
const aspirationWindow = board.Score(50)

// cancelCheckInterval is how often, in nodes, the search polls the cancellation flag.
const cancelCheckInterval = 2048

// Params configures one search call.
type Params struct {
	// MaxDepth bounds iterative deepening. 0 means unlimited.
	MaxDepth int
	// Cancel is polled periodically during search; once it returns true, the search
	// unwinds and returns the best result found so far. May be nil.
	Cancel func() bool
}

// Stats summarizes a completed search.
type Stats struct {
	Depth    int
	SelDepth int
	Nodes    uint64
	Score    board.Score
	PV       []board.Move
	Time     time.Duration
	HashFull float64
}

func (s Stats) String() string {
	return fmt.Sprintf("depth=%d seldepth=%d nodes=%d score=%v time=%v hashfull=%d%% pv=%v",
		s.Depth, s.SelDepth, s.Nodes, s.Score, s.Time, int(100*s.HashFull), s.PV)
}

// Searcher runs alpha-beta search against a transposition table and move-ordering
// heuristics that persist across iterative-deepening iterations but are cleared at the
// start of each root search, per spec.
type Searcher struct {
	tt      *tt.Table
	eval    eval.Evaluator
	killers killerTable
	history historyTable

	nodes    uint64
	selDepth int
	cancel   func() bool
	canceled bool
}

// NewSearcher allocates a Searcher with a transposition table sized to ttSizeBytes.
func NewSearcher(ctx context.Context, ttSizeBytes uint64) *Searcher {
	return &Searcher{
		tt:   tt.New(ctx, ttSizeBytes),
		eval: eval.Tapered{},
	}
}

// Search runs iterative deepening from pos up to params.MaxDepth (or until canceled),
// and returns the best move found plus search statistics. pos is mutated during search
// via make/unmake but is restored to its original state before Search returns.
func (s *Searcher) Search(ctx context.Context, pos *board.Position, params Params) (board.Move, Stats) {
	start := time.Now()

	s.tt.NewGeneration()
	s.killers.clear()
	s.history.clear()
	s.nodes = 0
	s.selDepth = 0
	s.cancel = params.Cancel
	s.canceled = false

	if !legalMoveExists(pos) {
		sc := board.Draw
		if movegen.IsInCheck(pos, pos.SideToMove()) {
			sc = -board.Mate
		}
		return board.NoMove, Stats{Score: sc, Time: time.Since(start)}
	}

	maxDepth := params.MaxDepth
	if maxDepth <= 0 || maxDepth > MaxPly {
		maxDepth = MaxPly
	}

	var best board.Move
	var stats Stats
	score := board.Score(0)

	for depth := 1; depth <= maxDepth; depth++ {
		alpha, beta := -board.Infinite, board.Infinite
		if depth > 1 {
			alpha, beta = score-aspirationWindow, score+aspirationWindow
		}

		var s1 board.Score
		for {
			s1 = s.negamax(pos, depth, alpha, beta, 0)
			if s.canceled {
				break
			}
			if s1 <= alpha {
				alpha = -board.Infinite
				continue
			}
			if s1 >= beta {
				beta = board.Infinite
				continue
			}
			break
		}
		if s.canceled {
			logw.Debugf(ctx, "Search canceled on %v at depth=%v", pos, depth)
			break
		}

		score = s1
		best = s.bestRootMove(pos)
		stats = Stats{
			Depth:    depth,
			SelDepth: s.selDepth,
			Nodes:    s.nodes,
			Score:    score,
			PV:       extractPV(s.tt, pos, depth),
			Time:     time.Since(start),
			HashFull: s.tt.Used(),
		}

		logw.Debugf(ctx, "Searched %v: %v", pos, stats)

		if score.IsMateScore() {
			break
		}
	}

	return best, stats
}

// bestRootMove reads the move stored for the root position from the transposition
// table, after a completed root search. Returns NoMove if the table has nothing for
// this hash (can only happen if every root move failed to be legal, i.e. checkmate or
// stalemate, which Search checks for before searching).
func (s *Searcher) bestRootMove(pos *board.Position) board.Move {
	if e, ok := s.tt.Probe(pos.Hash()); ok {
		return e.Move
	}
	return board.NoMove
}

func (s *Searcher) isCanceled() bool {
	if s.canceled {
		return true
	}
	if s.cancel != nil && s.nodes%cancelCheckInterval == 0 && s.cancel() {
		s.canceled = true
	}
	return s.canceled
}

// legalMoveExists reports whether pos has at least one legal move, used to distinguish
// checkmate from stalemate when a search finds no moves to try.
func legalMoveExists(pos *board.Position) bool {
	var list board.MoveList
	movegen.Generate(pos, &list)
	return list.Len() > 0
}
