// Package eval implements static position evaluation: material, tapered piece-square
// tables, mobility, pawn structure, and king safety, combined into a single centipawn
// score from the side-to-move's perspective.
package eval

import "github.com/herohde/kestrel/pkg/board"

// pieceValue holds the nominal centipawn value of each piece type, indexed by
// board.Piece. The king's value is used only by MVV-LVA capture ordering in search,
// never added into the material balance (a king is never captured).
var pieceValue = [board.NumPieces]board.Score{
	board.Pawn:   100,
	board.Knight: 320,
	board.Bishop: 330,
	board.Rook:   500,
	board.Queen:  900,
	board.King:   20000,
}

// PieceValue returns the nominal centipawn value of a piece type.
func PieceValue(p board.Piece) board.Score {
	return pieceValue[p]
}

// nonPawnValue mirrors pieceValue but zeroes the pawn and king entries, since only
// knight/bishop/rook/queen material contributes to the game-phase computation.
var nonPawnValue = [board.NumPieces]int{
	board.Knight: 320,
	board.Bishop: 330,
	board.Rook:   500,
	board.Queen:  900,
}

// material returns the white-minus-black material balance, excluding the king.
func material(pos *board.Position) board.Score {
	var total board.Score
	for p := board.ZeroPiece; p < board.King; p++ {
		white := pos.Pieces(board.White, p).PopCount()
		black := pos.Pieces(board.Black, p).PopCount()
		total += board.Score(white-black) * pieceValue[p]
	}
	return total
}

// nonPawnMaterial sums the non-pawn, non-king material of both sides, used to derive
// the game phase for tapered evaluation.
func nonPawnMaterial(pos *board.Position) int {
	total := 0
	for p := board.Knight; p < board.King; p++ {
		count := pos.Pieces(board.White, p).PopCount() + pos.Pieces(board.Black, p).PopCount()
		total += count * nonPawnValue[p]
	}
	return total
}
