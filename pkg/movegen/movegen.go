package movegen

import (
	"github.com/herohde/kestrel/pkg/attacks"
	"github.com/herohde/kestrel/pkg/board"
)

type class int

const (
	classAll class = iota
	classCapturesOnly
	classQuietsOnly
)

// Generate fills list with every legal move in pos. Pseudo-legal moves are generated
// per piece type, then filtered via the make/check/unmake discipline: illegal ones
// (those that leave the mover's own king attacked) are never added.
func Generate(pos *board.Position, list *board.MoveList) {
	generate(pos, list, classAll)
}

// GenerateCaptures fills list with every legal capturing move (including en passant and
// capture promotions). Used by quiescence search.
func GenerateCaptures(pos *board.Position, list *board.MoveList) {
	generate(pos, list, classCapturesOnly)
}

// GenerateQuiets fills list with every legal non-capturing move (including quiet
// promotions).
func GenerateQuiets(pos *board.Position, list *board.MoveList) {
	generate(pos, list, classQuietsOnly)
}

func generate(pos *board.Position, list *board.MoveList, cls class) {
	us := pos.SideToMove()

	pawns := pos.Pieces(us, board.Pawn)
	for pawns != 0 {
		var sq board.Square
		sq, pawns = pawns.PopLSB()
		genPawnMoves(pos, sq, us, cls, list)
	}

	knights := pos.Pieces(us, board.Knight)
	for knights != 0 {
		var sq board.Square
		sq, knights = knights.PopLSB()
		genTargets(pos, sq, attacks.Knight(sq), us, cls, list)
	}

	bishops := pos.Pieces(us, board.Bishop)
	for bishops != 0 {
		var sq board.Square
		sq, bishops = bishops.PopLSB()
		genTargets(pos, sq, attacks.Bishop(sq, pos.AllOccupied()), us, cls, list)
	}

	rooks := pos.Pieces(us, board.Rook)
	for rooks != 0 {
		var sq board.Square
		sq, rooks = rooks.PopLSB()
		genTargets(pos, sq, attacks.Rook(sq, pos.AllOccupied()), us, cls, list)
	}

	queens := pos.Pieces(us, board.Queen)
	for queens != 0 {
		var sq board.Square
		sq, queens = queens.PopLSB()
		genTargets(pos, sq, attacks.Queen(sq, pos.AllOccupied()), us, cls, list)
	}

	king := pos.KingSquare(us)
	genTargets(pos, king, attacks.King(king), us, cls, list)
	if cls != classCapturesOnly {
		genCastling(pos, us, list)
	}
}

// genTargets adds one move per bit in targets, masked to exclude squares occupied by
// the mover's own pieces, classified as Capture or Normal by occupancy and filtered by
// the requested class.
func genTargets(pos *board.Position, from board.Square, targets board.Bitboard, us board.Color, cls class, list *board.MoveList) {
	targets &^= pos.Occupied(us)
	for targets != 0 {
		var to board.Square
		to, targets = targets.PopLSB()

		flag := board.Normal
		if pos.Occupied(us.Opponent()).IsSet(to) {
			flag = board.Capture
		}
		if !classAllows(cls, flag.IsCapture()) {
			continue
		}
		addIfLegal(pos, board.NewMove(from, to, flag), list)
	}
}

func classAllows(cls class, isCapture bool) bool {
	switch cls {
	case classCapturesOnly:
		return isCapture
	case classQuietsOnly:
		return !isCapture
	default:
		return true
	}
}

func genPawnMoves(pos *board.Position, from board.Square, us board.Color, cls class, list *board.MoveList) {
	them := us.Opponent()
	forward := 8
	startRank, promoRank := board.Rank2, board.Rank8
	if us == board.Black {
		forward = -8
		startRank, promoRank = board.Rank7, board.Rank1
	}

	to := board.Square(int(from) + forward)
	if cls != classCapturesOnly && pos.AllOccupied()&board.BitMask(to) == 0 {
		addPawnAdvance(pos, from, to, promoRank, list)

		if from.Rank() == startRank {
			to2 := board.Square(int(from) + 2*forward)
			if pos.AllOccupied()&board.BitMask(to2) == 0 {
				addIfLegal(pos, board.NewMove(from, to2, board.Normal), list)
			}
		}
	}

	if cls != classQuietsOnly {
		targets := attacks.Pawn(us, from) & pos.Occupied(them)
		for targets != 0 {
			var capTo board.Square
			capTo, targets = targets.PopLSB()
			addPawnCapture(pos, from, capTo, promoRank, list)
		}

		if ep, ok := pos.EnPassant(); ok && attacks.Pawn(us, from).IsSet(ep) {
			addIfLegal(pos, board.NewMove(from, ep, board.EnPassant), list)
		}
	}
}

func addPawnAdvance(pos *board.Position, from, to board.Square, promoRank board.Rank, list *board.MoveList) {
	if to.Rank() == promoRank {
		addPromotions(pos, from, to, false, list)
		return
	}
	addIfLegal(pos, board.NewMove(from, to, board.Normal), list)
}

func addPawnCapture(pos *board.Position, from, to board.Square, promoRank board.Rank, list *board.MoveList) {
	if to.Rank() == promoRank {
		addPromotions(pos, from, to, true, list)
		return
	}
	addIfLegal(pos, board.NewMove(from, to, board.Capture), list)
}

var promotionPieces = [4]board.Piece{board.Queen, board.Rook, board.Bishop, board.Knight}

func addPromotions(pos *board.Position, from, to board.Square, isCapture bool, list *board.MoveList) {
	for _, p := range promotionPieces {
		addIfLegal(pos, board.NewMove(from, to, board.PromotionFlag(p, isCapture)), list)
	}
}

func genCastling(pos *board.Position, us board.Color, list *board.MoveList) {
	them := us.Opponent()
	if IsInCheck(pos, us) {
		return
	}

	rank := board.Rank1
	if us == board.Black {
		rank = board.Rank8
	}
	e := board.NewSquare(board.FileE, rank)
	f := board.NewSquare(board.FileF, rank)
	g := board.NewSquare(board.FileG, rank)
	d := board.NewSquare(board.FileD, rank)
	c := board.NewSquare(board.FileC, rank)
	b := board.NewSquare(board.FileB, rank)

	occ := pos.AllOccupied()
	if pos.Castling().IsAllowed(board.KingSide(us)) &&
		occ&board.BitMask(f) == 0 && occ&board.BitMask(g) == 0 &&
		!IsSquareAttacked(pos, f, them) && !IsSquareAttacked(pos, g, them) {
		addIfLegal(pos, board.NewMove(e, g, board.CastleKing), list)
	}
	if pos.Castling().IsAllowed(board.QueenSide(us)) &&
		occ&board.BitMask(d) == 0 && occ&board.BitMask(c) == 0 && occ&board.BitMask(b) == 0 &&
		!IsSquareAttacked(pos, d, them) && !IsSquareAttacked(pos, c, them) {
		addIfLegal(pos, board.NewMove(e, c, board.CastleQueen), list)
	}
}

// IsLegal reports whether a pseudo-legal move leaves the mover's own king in check.
func IsLegal(pos *board.Position, m board.Move) bool {
	us := pos.SideToMove()
	pos.MakeMove(m)
	legal := !IsInCheck(pos, us)
	pos.UnmakeMove(m)
	return legal
}

func addIfLegal(pos *board.Position, m board.Move, list *board.MoveList) {
	if IsLegal(pos, m) {
		list.Add(m)
	}
}
