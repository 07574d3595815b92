package eval

import "github.com/herohde/kestrel/pkg/board"

const (
	doubledPawnPenalty  = 10
	isolatedPawnPenalty = 15
)

// pawnStructure returns the white-minus-black pawn structure score: doubled pawns
// beyond the first on a file cost doubledPawnPenalty each, and a pawn with no
// same-color pawn on an adjacent file costs isolatedPawnPenalty.
func pawnStructure(pos *board.Position) int {
	return pawnStructureForColor(pos, board.Black) - pawnStructureForColor(pos, board.White)
}

func pawnStructureForColor(pos *board.Position, c board.Color) int {
	var fileCount [8]int
	pawns := pos.Pieces(c, board.Pawn)
	for pawns != 0 {
		var sq board.Square
		sq, pawns = pawns.PopLSB()
		fileCount[sq.File()]++
	}

	penalty := 0
	for f := board.FileA; f <= board.FileH; f++ {
		if fileCount[f] > 1 {
			penalty += doubledPawnPenalty * (fileCount[f] - 1)
		}
		if fileCount[f] > 0 {
			left := f > board.FileA && fileCount[f-1] > 0
			right := f < board.FileH && fileCount[f+1] > 0
			if !left && !right {
				penalty += isolatedPawnPenalty * fileCount[f]
			}
		}
	}
	return penalty
}
