package board

import "fmt"

// MoveFlag classifies a Move. It is the sole source of truth for whether a move is a
// capture, a promotion, or a castle; the target square plus the piece on the source
// square disambiguate the moving piece type.
type MoveFlag uint16

const (
	Normal MoveFlag = iota
	Capture
	EnPassant
	CastleKing
	CastleQueen
	PromoN
	PromoB
	PromoR
	PromoQ
	// CapturePromoN..CapturePromoQ mark a promotion that also captures the piece on the
	// destination square. Kept distinct from the plain PromoX flags (rather than a
	// separate capture bit alongside a promotion-piece field) so Move stays a single
	// 16-bit value.
	CapturePromoN
	CapturePromoB
	CapturePromoR
	CapturePromoQ
)

// IsCapture returns true iff the flag denotes a move that removes an enemy piece.
func (f MoveFlag) IsCapture() bool {
	return f == Capture || f == EnPassant || (f >= CapturePromoN && f <= CapturePromoQ)
}

// IsPromotion returns true iff the flag denotes a pawn promotion.
func (f MoveFlag) IsPromotion() bool {
	return (f >= PromoN && f <= PromoQ) || (f >= CapturePromoN && f <= CapturePromoQ)
}

// IsCastle returns true iff the flag denotes castling.
func (f MoveFlag) IsCastle() bool {
	return f == CastleKing || f == CastleQueen
}

// PromotionPiece returns the piece type a promotion flag (plain or capturing) promotes
// to, or NoPiece if the flag is not a promotion.
func (f MoveFlag) PromotionPiece() Piece {
	switch f {
	case PromoN, CapturePromoN:
		return Knight
	case PromoB, CapturePromoB:
		return Bishop
	case PromoR, CapturePromoR:
		return Rook
	case PromoQ, CapturePromoQ:
		return Queen
	default:
		return NoPiece
	}
}

func (f MoveFlag) String() string {
	switch f {
	case Normal:
		return "normal"
	case Capture:
		return "capture"
	case EnPassant:
		return "en-passant"
	case CastleKing:
		return "O-O"
	case CastleQueen:
		return "O-O-O"
	case PromoN:
		return "=N"
	case PromoB:
		return "=B"
	case PromoR:
		return "=R"
	case PromoQ:
		return "=Q"
	case CapturePromoN:
		return "x=N"
	case CapturePromoB:
		return "x=B"
	case CapturePromoR:
		return "x=R"
	case CapturePromoQ:
		return "x=Q"
	default:
		return "?"
	}
}

// PromotionFlag returns the MoveFlag for promoting to p, capturing or not.
func PromotionFlag(p Piece, isCapture bool) MoveFlag {
	switch p {
	case Knight:
		if isCapture {
			return CapturePromoN
		}
		return PromoN
	case Bishop:
		if isCapture {
			return CapturePromoB
		}
		return PromoB
	case Rook:
		if isCapture {
			return CapturePromoR
		}
		return PromoR
	default:
		if isCapture {
			return CapturePromoQ
		}
		return PromoQ
	}
}

// Move is a compact 16-bit move encoding: bits 0-5 are the origin square, bits 6-11 the
// destination square, and bits 12-15 the MoveFlag. Move value 0 is reserved to mean
// "no move" (A1 to A1, which is never a legal move since From must differ from To).
type Move uint16

// NoMove is the reserved "no move" sentinel.
const NoMove Move = 0

// NewMove packs a move from its parts.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(from) | Move(to)<<6 | Move(flag)<<12
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3f)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3f)
}

// Flag returns the move flag.
func (m Move) Flag() MoveFlag {
	return MoveFlag(m >> 12)
}

// IsCapture returns true iff the move captures a piece.
func (m Move) IsCapture() bool {
	return m.Flag().IsCapture()
}

// IsPromotion returns true iff the move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Flag().IsPromotion()
}

// IsCastle returns true iff the move is a castling move.
func (m Move) IsCastle() bool {
	return m.Flag().IsCastle()
}

// ParseMove parses a move in pure coordinate notation, e.g. "e2e4" or "a7a8q". The
// parsed move carries no contextual flags (capture/castle/en-passant): Flag is Normal
// unless a promotion suffix is present, in which case it is the matching PromoX. The
// move generator fills in the correct flag when matching this against legal moves.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)
	if len(runes) < 4 || len(runes) > 5 {
		return NoMove, fmt.Errorf("invalid move: %q", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return NoMove, fmt.Errorf("invalid from square in move %q: %w", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return NoMove, fmt.Errorf("invalid to square in move %q: %w", str, err)
	}

	flag := Normal
	if len(runes) == 5 {
		switch runes[4] {
		case 'n', 'N':
			flag = PromoN
		case 'b', 'B':
			flag = PromoB
		case 'r', 'R':
			flag = PromoR
		case 'q', 'Q':
			flag = PromoQ
		default:
			return NoMove, fmt.Errorf("invalid promotion in move %q", str)
		}
	}
	return NewMove(from, to, flag), nil
}

func (m Move) String() string {
	if m == NoMove {
		return "(none)"
	}
	if promo := m.Flag().PromotionPiece(); promo != NoPiece {
		return fmt.Sprintf("%v%v%v", m.From(), m.To(), promo)
	}
	return fmt.Sprintf("%v%v", m.From(), m.To())
}
