// Package notation formats and parses chess moves in the two textual forms engines and
// players exchange: pure coordinate notation (e2e4, e7e8q) and short algebraic notation
// (Nf3, Bxc6, e8=Q+, O-O). Both directions are consumers of pkg/movegen and pkg/board;
// neither introduces any position state of its own.
package notation

import (
	"fmt"
	"strings"

	"github.com/herohde/kestrel/pkg/board"
	"github.com/herohde/kestrel/pkg/movegen"
)

// Coordinate formats m in pure coordinate notation: from square, to square, and (for a
// promotion) a lowercase promotion-piece suffix. Equivalent to board.Move.String but
// named for symmetry with Algebraic.
func Coordinate(m board.Move) string {
	return m.String()
}

// ParseCoordinate parses pure coordinate notation, e.g. "e2e4" or "a7a8q", without
// reference to any position: the returned move carries no capture/castle/en-passant
// flag, only a From/To/promotion-piece triple suitable for matching against a
// move list produced by movegen.Generate.
func ParseCoordinate(str string) (board.Move, error) {
	return board.ParseMove(str)
}

// Algebraic formats m, played from pos (before the move is made), in short algebraic
// notation: piece letter and minimal disambiguation, capture 'x', destination square,
// promotion suffix, and a trailing '+' or '#' if the move checks or mates. Castling is
// rendered as O-O / O-O-O. pos is mutated via make/unmake and restored before return.
func Algebraic(pos *board.Position, m board.Move) string {
	if m.Flag() == board.CastleKing {
		return appendCheckSuffix(pos, m, "O-O")
	}
	if m.Flag() == board.CastleQueen {
		return appendCheckSuffix(pos, m, "O-O-O")
	}

	_, piece, _ := pos.PieceOn(m.From())

	var sb strings.Builder
	if piece != board.Pawn {
		sb.WriteString(strings.ToUpper(piece.String()))
		sb.WriteString(disambiguate(pos, m, piece))
	}

	if m.IsCapture() {
		if piece == board.Pawn {
			sb.WriteString(m.From().File().String())
		}
		sb.WriteString("x")
	}

	sb.WriteString(m.To().String())

	if promo := m.Flag().PromotionPiece(); promo != board.NoPiece {
		sb.WriteString("=")
		sb.WriteString(strings.ToUpper(promo.String()))
	}

	return appendCheckSuffix(pos, m, sb.String())
}

// disambiguate returns the minimal file/rank qualifier needed to distinguish m from
// other legal moves by a piece of the same type landing on the same square. The origin
// file is added if some other such mover stands on a different file, the origin rank is
// added if some other such mover stands on the same file, and both are added when
// movers of both kinds exist.
func disambiguate(pos *board.Position, m board.Move, piece board.Piece) string {
	var list board.MoveList
	movegen.Generate(pos, &list)

	needFile, needRank := false, false
	for i := 0; i < list.Len(); i++ {
		other := list.At(i)
		if other == m || other.To() != m.To() {
			continue
		}
		if _, op, ok := pos.PieceOn(other.From()); !ok || op != piece {
			continue
		}

		if other.From().File() == m.From().File() {
			needRank = true
		} else {
			needFile = true
		}
	}

	var sb strings.Builder
	if needFile {
		sb.WriteString(m.From().File().String())
	}
	if needRank {
		sb.WriteString(m.From().Rank().String())
	}
	return sb.String()
}

func appendCheckSuffix(pos *board.Position, m board.Move, text string) string {
	pos.MakeMove(m)
	defer pos.UnmakeMove(m)

	if !movegen.IsInCheck(pos, pos.SideToMove()) {
		return text
	}

	var list board.MoveList
	movegen.Generate(pos, &list)
	if list.Len() == 0 {
		return text + "#"
	}
	return text + "+"
}

// ParseAlgebraic resolves str against the legal moves of pos by rendering each legal
// move's algebraic form and matching (ignoring a trailing '+'/'#', since callers rarely
// type those), falling back to coordinate notation. Returns an error if no legal move
// matches.
func ParseAlgebraic(pos *board.Position, str string) (board.Move, error) {
	trimmed := strings.TrimRight(str, "+#")

	var list board.MoveList
	movegen.Generate(pos, &list)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if strings.TrimRight(Algebraic(pos, m), "+#") == trimmed {
			return m, nil
		}
	}

	if m, err := ParseCoordinate(str); err == nil {
		if lm, ok := list.Contains(m.From(), m.To(), m.Flag().PromotionPiece()); ok {
			return lm, nil
		}
	}

	return board.NoMove, fmt.Errorf("no legal move matches %q", str)
}
