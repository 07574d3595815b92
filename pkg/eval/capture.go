package eval

import (
	"sort"

	"github.com/herohde/kestrel/pkg/attacks"
	"github.com/herohde/kestrel/pkg/board"
)

// FindAttackers returns the pieces of the given color that directly attack sq, computed
// by launching reverse attacks from sq against that color's piece sets (the same
// technique movegen.IsSquareAttacked uses). Pins are not considered: a listed attacker
// may be unable to move legally to sq.
func FindAttackers(pos *board.Position, side board.Color, sq board.Square) []board.Placement {
	var ret []board.Placement

	occ := pos.AllOccupied()
	for _, from := range (attacks.Knight(sq) & pos.Pieces(side, board.Knight)).ToSquares() {
		ret = append(ret, board.Placement{Piece: board.Knight, Color: side, Square: from})
	}
	for _, from := range (attacks.King(sq) & pos.Pieces(side, board.King)).ToSquares() {
		ret = append(ret, board.Placement{Piece: board.King, Color: side, Square: from})
	}
	for _, from := range (attacks.Rook(sq, occ) & pos.Pieces(side, board.Rook)).ToSquares() {
		ret = append(ret, board.Placement{Piece: board.Rook, Color: side, Square: from})
	}
	for _, from := range (attacks.Bishop(sq, occ) & pos.Pieces(side, board.Bishop)).ToSquares() {
		ret = append(ret, board.Placement{Piece: board.Bishop, Color: side, Square: from})
	}
	for _, from := range (attacks.Queen(sq, occ) & pos.Pieces(side, board.Queen)).ToSquares() {
		ret = append(ret, board.Placement{Piece: board.Queen, Color: side, Square: from})
	}
	for _, from := range (attacks.Pawn(side.Opponent(), sq) & pos.Pieces(side, board.Pawn)).ToSquares() {
		ret = append(ret, board.Placement{Piece: board.Pawn, Color: side, Square: from})
	}

	return ret
}

// SortByValue orders the placement list in place by nominal material value, low to high,
// so the least valuable attacker comes first.
func SortByValue(pieces []board.Placement) []board.Placement {
	sort.SliceStable(pieces, func(i, j int) bool {
		return PieceValue(pieces[i].Piece) < PieceValue(pieces[j].Piece)
	})
	return pieces
}
