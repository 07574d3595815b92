// Package console implements a line-oriented debugging driver for engine.Engine: read a
// command from stdin, execute it synchronously, print the result, repeat.
package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/herohde/kestrel/pkg/board"
	"github.com/herohde/kestrel/pkg/board/fen"
	"github.com/herohde/kestrel/pkg/engine"
	"github.com/herohde/kestrel/pkg/notation"
	"github.com/herohde/kestrel/pkg/search"
	"github.com/seekerror/logw"
)

// ProtocolName is the name of this driver's protocol.
const ProtocolName = "console"

// Driver runs one console session against an Engine. Unlike the teacher's async,
// channel-based driver, command handling here is synchronous: a "go" command blocks
// until the search returns (the spec's non-goal on concurrent search means there is no
// separate cancellation path to race against input).
type Driver struct {
	e     *engine.Engine
	depth int
}

// NewDriver creates a console driver bound to e.
func NewDriver(e *engine.Engine) *Driver {
	return &Driver{e: e, depth: 0}
}

// Run reads commands from in and writes responses to out until in is closed or a "quit"
// command is read.
func (d *Driver) Run(ctx context.Context, in <-chan string, out chan<- string) {
	defer close(out)

	out <- fmt.Sprintf("engine %v (%v)", d.e.Name(), d.e.Author())
	d.printBoard(out)

	for line := range in {
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "reset", "r":
			d.handleReset(ctx, args, out)

		case "undo", "u":
			if err := d.e.TakeBack(); err != nil {
				logw.Errorf(ctx, "Undo failed: %v", err)
			}
			d.printBoard(out)

		case "print", "p":
			d.printBoard(out)

		case "go", "g":
			d.handleGo(ctx, out)

		case "depth", "d":
			if len(args) > 0 {
				if n, err := strconv.Atoi(args[0]); err == nil {
					d.depth = n
				}
			}

		case "quit", "exit", "q":
			return

		default:
			// Assume a move if not a recognized command.
			if err := d.e.Move(cmd); err != nil {
				out <- fmt.Sprintf("invalid move: %v", err)
			} else {
				d.printBoard(out)
			}
		}
	}
}

func (d *Driver) handleReset(ctx context.Context, args []string, out chan<- string) {
	pos := fen.Initial
	rest := args
	if len(args) >= 6 && args[0] != "moves" {
		pos = strings.Join(args[0:6], " ")
		rest = args[6:]
	}
	if err := d.e.Reset(pos); err != nil {
		logw.Errorf(ctx, "Invalid position %q: %v", pos, err)
		return
	}

	play := false
	for _, arg := range rest {
		if arg == "moves" {
			play = true
			continue
		}
		if !play {
			continue
		}
		if err := d.e.Move(arg); err != nil {
			logw.Errorf(ctx, "Invalid move %q: %v", arg, err)
			return
		}
	}
	d.printBoard(out)
}

func (d *Driver) handleGo(ctx context.Context, out chan<- string) {
	best, stats := d.e.Go(ctx, search.Params{MaxDepth: d.depth})
	out <- stats.String()

	if best == board.NoMove {
		out <- "no legal move"
		return
	}
	out <- fmt.Sprintf("bestmove %v", notation.Algebraic(d.e.Position(), best))
	_ = d.e.Move(best.String())
	d.printBoard(out)
}

const (
	files      = "    a   b   c   d   e   f   g   h"
	horizontal = "  ---------------------------------"
	vertical   = " | "
)

func (d *Driver) printBoard(out chan<- string) {
	pos := d.e.Position()

	out <- ""
	out <- files
	out <- horizontal

	for r := int(board.Rank8); r >= int(board.Rank1); r-- {
		var sb strings.Builder
		sb.WriteString(board.Rank(r).String())
		sb.WriteString(vertical)
		for f := board.FileA; f <= board.FileH; f++ {
			sq := board.NewSquare(f, board.Rank(r))
			if color, piece, ok := pos.PieceOn(sq); ok {
				sb.WriteString(printPiece(color, piece))
			} else {
				sb.WriteString(" ")
			}
			sb.WriteString(vertical)
		}
		out <- sb.String()
		out <- horizontal
	}

	out <- files
	out <- ""
	out <- fmt.Sprintf("fen:  %v", fen.Encode(pos))
	out <- fmt.Sprintf("hash: 0x%x", pos.Hash())
	out <- ""
}

func printPiece(c board.Color, p board.Piece) string {
	if c == board.White {
		return strings.ToUpper(p.String())
	}
	return p.String()
}
