// Package engine ties board, movegen, and search together into the synchronous
// game-playing façade a UI driver talks to: reset to a position, play a move, and run a
// bounded search for the engine's own move.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/herohde/kestrel/pkg/board"
	"github.com/herohde/kestrel/pkg/board/fen"
	"github.com/herohde/kestrel/pkg/movegen"
	"github.com/herohde/kestrel/pkg/notation"
	"github.com/herohde/kestrel/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Options are default search options applied when a Params field is left zero.
type Options struct {
	// Depth is the default search depth limit. Zero means search.MaxPly.
	Depth int
	// Hash is the transposition table size in MB.
	Hash uint
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v, hash=%vMB}", o.Depth, o.Hash)
}

// Engine wraps one exclusively-owned board.Position plus a search.Searcher, serializing
// all access with a mutex so a driver goroutine (such as the console driver) never races a caller
// inspecting Position mid-search. Search itself remains single-threaded; the mutex only
// protects the Engine's own state transitions (Reset/Move/Go).
type Engine struct {
	name, author string
	opts         Options

	mu      sync.Mutex
	pos     *board.Position
	history []board.Move
	s       *search.Searcher
}

// New creates an Engine at the standard starting position.
func New(ctx context.Context, name, author string, opts Options) *Engine {
	e := &Engine{name: name, author: author, opts: opts}
	e.s = search.NewSearcher(ctx, uint64(opts.Hash)<<20)
	_ = e.Reset(fen.Initial)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine's display name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the engine's author.
func (e *Engine) Author() string {
	return e.author
}

// Position returns the current position. The returned pointer is owned by the Engine
// and must not be mutated by the caller.
func (e *Engine) Position() *board.Position {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pos
}

// Reset replaces the current position with the one described by the given FEN record.
func (e *Engine) Reset(position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos, err := fen.Decode(position)
	if err != nil {
		return fmt.Errorf("invalid position: %w", err)
	}
	e.pos = pos
	e.history = nil
	return nil
}

// Move plays a single move, given in coordinate or short algebraic notation, against
// the current position. Returns an error if the text does not parse or does not match a
// legal move.
func (e *Engine) Move(text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, err := notation.ParseAlgebraic(e.pos, text)
	if err != nil {
		return fmt.Errorf("invalid move %q: %w", text, err)
	}
	e.pos.MakeMove(m)
	e.history = append(e.history, m)
	return nil
}

// TakeBack undoes the most recently played move. Returns an error if there is none.
func (e *Engine) TakeBack() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.history) == 0 {
		return fmt.Errorf("no move to take back")
	}
	last := e.history[len(e.history)-1]
	e.history = e.history[:len(e.history)-1]
	e.pos.UnmakeMove(last)
	return nil
}

// Go runs a search from the current position and returns the best move found plus
// search statistics. If params.MaxDepth is zero, the Engine's configured default depth
// is used.
func (e *Engine) Go(ctx context.Context, params search.Params) (board.Move, search.Stats) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if params.MaxDepth == 0 {
		params.MaxDepth = e.opts.Depth
	}

	logw.Infof(ctx, "Searching %v, params=%+v", e.pos, params)
	best, stats := e.s.Search(ctx, e.pos, params)
	logw.Infof(ctx, "Search result: %v, best=%v", stats, best)
	return best, stats
}

// LegalMoves returns every legal move from the current position.
func (e *Engine) LegalMoves() []board.Move {
	e.mu.Lock()
	defer e.mu.Unlock()

	var list board.MoveList
	movegen.Generate(e.pos, &list)
	return list.Slice()
}
