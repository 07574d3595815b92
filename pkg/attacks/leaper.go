// Package attacks holds precomputed attack tables: direct lookup tables for the leaper
// pieces (knight, king, pawn) and magic-multiplier perfect-hash tables for the sliders
// (bishop, rook, queen). Every table is built once in an init() function; lookups
// afterward are O(1) array reads.
package attacks

import "github.com/herohde/kestrel/pkg/board"

// KnightAttacks[sq] is the knight's attack set from sq on an empty board.
var KnightAttacks [64]board.Bitboard

// KingAttacks[sq] is the king's attack set from sq on an empty board.
var KingAttacks [64]board.Bitboard

// PawnAttacks[color][sq] is the pawn's diagonal capture set from sq, for the given color.
var PawnAttacks [board.NumColors][64]board.Bitboard

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func init() {
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		f, r := int(sq.File()), int(sq.Rank())

		var knight, king board.Bitboard
		for _, d := range knightDeltas {
			if to, ok := clippedSquare(f+d[0], r+d[1]); ok {
				knight = knight.Set(to)
			}
		}
		for _, d := range kingDeltas {
			if to, ok := clippedSquare(f+d[0], r+d[1]); ok {
				king = king.Set(to)
			}
		}
		KnightAttacks[sq] = knight
		KingAttacks[sq] = king

		var whitePawn, blackPawn board.Bitboard
		if to, ok := clippedSquare(f-1, r+1); ok {
			whitePawn = whitePawn.Set(to)
		}
		if to, ok := clippedSquare(f+1, r+1); ok {
			whitePawn = whitePawn.Set(to)
		}
		if to, ok := clippedSquare(f-1, r-1); ok {
			blackPawn = blackPawn.Set(to)
		}
		if to, ok := clippedSquare(f+1, r-1); ok {
			blackPawn = blackPawn.Set(to)
		}
		PawnAttacks[board.White][sq] = whitePawn
		PawnAttacks[board.Black][sq] = blackPawn
	}
}

func clippedSquare(f, r int) (board.Square, bool) {
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return board.NoSquare, false
	}
	return board.NewSquare(board.File(f), board.Rank(r)), true
}

// Knight returns the knight's attack set from sq.
func Knight(sq board.Square) board.Bitboard { return KnightAttacks[sq] }

// King returns the king's attack set from sq.
func King(sq board.Square) board.Bitboard { return KingAttacks[sq] }

// Pawn returns the pawn capture set from sq for the given color.
func Pawn(c board.Color, sq board.Square) board.Bitboard { return PawnAttacks[c][sq] }
