package eval

import "github.com/herohde/kestrel/pkg/board"

// Evaluator is a static position evaluator, returning a score in centipawns from the
// side-to-move's perspective.
type Evaluator interface {
	Evaluate(pos *board.Position) board.Score
}

// Tapered is the engine's default evaluator: material, tapered piece-square tables,
// mobility, pawn structure, and king safety, each computed white-minus-black and
// summed, then returned from the side-to-move's perspective.
type Tapered struct{}

// Evaluate returns the position score in centipawns from the side-to-move's
// perspective: positive favors the side to move.
func (Tapered) Evaluate(pos *board.Position) board.Score {
	ph := phase(pos)

	total := int(material(pos)) + pieceSquare(pos, ph) + mobility(pos) + pawnStructure(pos) + kingSafety(pos)

	if pos.SideToMove() == board.Black {
		total = -total
	}
	return board.Score(total)
}

// Evaluate is a package-level convenience wrapping Tapered{}.Evaluate, used by search
// when no custom evaluator is configured.
func Evaluate(pos *board.Position) board.Score {
	return Tapered{}.Evaluate(pos)
}
