package eval

import "github.com/herohde/kestrel/pkg/board"

// pst tables are indexed by square from White's point of view (A1=0..H8=63); Black
// reads the same table at the mirrored square (sq XOR 56). Values are in centipawns
// and are added on top of material. Values follow the classic tables used across
// open-source engines of this scale; they are intentionally modest in magnitude so
// material dominates the evaluation.
var (
	pawnPST = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	knightPST = [64]int{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	}
	bishopPST = [64]int{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	}
	rookPST = [64]int{
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	queenPST = [64]int{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-10, 5, 5, 5, 5, 5, 0, -10,
		0, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	}
	kingMidgamePST = [64]int{
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	}
	kingEndgamePST = [64]int{
		-50, -30, -30, -30, -30, -30, -30, -50,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-50, -40, -30, -20, -20, -30, -40, -50,
	}
)

func pstTable(p board.Piece) [64]int {
	switch p {
	case board.Pawn:
		return pawnPST
	case board.Knight:
		return knightPST
	case board.Bishop:
		return bishopPST
	case board.Rook:
		return rookPST
	case board.Queen:
		return queenPST
	default:
		return [64]int{}
	}
}

// phase returns the game-phase value in [0,256], where 256 is the full midgame and 0
// is the deepest endgame, derived from remaining non-pawn material.
func phase(pos *board.Position) int {
	p := 256 * nonPawnMaterial(pos) / 6400
	if p > 256 {
		p = 256
	}
	return p
}

// taper combines a midgame and endgame subtotal by the given phase, per
// tapered_eval(mg, eg, phase) = (mg*phase + eg*(256-phase)) / 256.
func taper(mg, eg, ph int) int {
	return (mg*ph + eg*(256-ph)) / 256
}

// pieceSquare returns the white-minus-black piece-square contribution, tapered
// between midgame and endgame by ph. Only the king uses distinct midgame/endgame
// tables; the rest reuse one table for both terms.
func pieceSquare(pos *board.Position, ph int) int {
	mg, eg := 0, 0

	for p := board.Pawn; p < board.King; p++ {
		table := pstTable(p)
		mg += sumPST(pos, p, table)
		eg += sumPST(pos, p, table)
	}

	mg += sumPST(pos, board.King, kingMidgamePST)
	eg += sumPST(pos, board.King, kingEndgamePST)

	return taper(mg, eg, ph)
}

func sumPST(pos *board.Position, p board.Piece, table [64]int) int {
	total := 0

	white := pos.Pieces(board.White, p)
	for white != 0 {
		var sq board.Square
		sq, white = white.PopLSB()
		total += table[sq]
	}

	black := pos.Pieces(board.Black, p)
	for black != 0 {
		var sq board.Square
		sq, black = black.PopLSB()
		total -= table[sq.Mirror()]
	}

	return total
}
