package eval

import (
	"github.com/herohde/kestrel/pkg/board"
	"github.com/herohde/kestrel/pkg/movegen"
)

// mobilityWeight is applied after halving: weight = 1/2 centipawn per legal move.
const mobilityWeight = 1

// mobility returns the white-minus-black legal move count, halved. Each side's count is
// generated from a side-to-move-forced copy of the position rather than the real
// position, so the count reflects moves "available" to a side regardless of whose turn
// it actually is; this intentionally does not re-hash or otherwise validate the forced
// copy, matching the reference evaluator's behavior.
func mobility(pos *board.Position) int {
	white := pos.WithSideToMove(board.White)
	black := pos.WithSideToMove(board.Black)

	var whiteMoves, blackMoves board.MoveList
	movegen.Generate(&white, &whiteMoves)
	movegen.Generate(&black, &blackMoves)

	diff := whiteMoves.Len() - blackMoves.Len()
	return diff * mobilityWeight / 2
}
