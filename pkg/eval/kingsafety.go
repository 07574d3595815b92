package eval

import "github.com/herohde/kestrel/pkg/board"

const kingOpenFilePenalty = 20

// kingSafety returns the white-minus-black king safety penalty: a king whose file
// holds no pawn of either color costs kingOpenFilePenalty.
func kingSafety(pos *board.Position) int {
	penalty := 0
	if fileHasNoPawns(pos, pos.KingSquare(board.White).File()) {
		penalty -= kingOpenFilePenalty
	}
	if fileHasNoPawns(pos, pos.KingSquare(board.Black).File()) {
		penalty += kingOpenFilePenalty
	}
	return penalty
}

func fileHasNoPawns(pos *board.Position, f board.File) bool {
	file := board.BitFile(f)
	return pos.Pieces(board.White, board.Pawn)&file == 0 && pos.Pieces(board.Black, board.Pawn)&file == 0
}
