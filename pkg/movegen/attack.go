// Package movegen generates pseudo-legal and legal moves for a position, classifies
// squares as attacked, and counts perft nodes. It is the sole consumer of pkg/attacks
// outside of tests: the board package stays free of the magic tables so that Position
// can be unit-tested in isolation from attack generation.
package movegen

import (
	"github.com/herohde/kestrel/pkg/attacks"
	"github.com/herohde/kestrel/pkg/board"
)

// IsSquareAttacked returns true iff any piece of color by attacks sq. Computed by
// launching reverse attacks from sq in each piece's pattern and intersecting with by's
// piece sets; pawn attacks are read from the opposite color's table since a pawn of
// color by attacking sq looks, from sq, like sq attacking back along by's own pattern.
func IsSquareAttacked(pos *board.Position, sq board.Square, by board.Color) bool {
	occ := pos.AllOccupied()

	if attacks.Knight(sq)&pos.Pieces(by, board.Knight) != 0 {
		return true
	}
	if attacks.King(sq)&pos.Pieces(by, board.King) != 0 {
		return true
	}
	if rooks := pos.Pieces(by, board.Rook) | pos.Pieces(by, board.Queen); rooks != 0 && attacks.Rook(sq, occ)&rooks != 0 {
		return true
	}
	if bishops := pos.Pieces(by, board.Bishop) | pos.Pieces(by, board.Queen); bishops != 0 && attacks.Bishop(sq, occ)&bishops != 0 {
		return true
	}
	return attacks.Pawn(by.Opponent(), sq)&pos.Pieces(by, board.Pawn) != 0
}

// IsInCheck returns true iff the given color's king is attacked.
func IsInCheck(pos *board.Position, c board.Color) bool {
	return IsSquareAttacked(pos, pos.KingSquare(c), c.Opponent())
}
