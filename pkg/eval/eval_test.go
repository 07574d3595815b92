package eval_test

import (
	"testing"

	"github.com/herohde/kestrel/pkg/board"
	"github.com/herohde/kestrel/pkg/board/fen"
	"github.com/herohde/kestrel/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, f string) *board.Position {
	t.Helper()
	pos, err := fen.Decode(f)
	require.NoError(t, err)
	return pos
}

func TestEvaluateInitialPositionIsZero(t *testing.T) {
	pos := mustDecode(t, fen.Initial)
	assert.Equal(t, board.Score(0), eval.Evaluate(pos))
}

func TestEvaluateFavorsExtraMaterial(t *testing.T) {
	pos := mustDecode(t, "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	assert.True(t, eval.Evaluate(pos) > 0)
}

func TestEvaluateAntisymmetricUnderSideToMoveFlip(t *testing.T) {
	white := mustDecode(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	black := mustDecode(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1")

	// Flipping only side to move (same piece placement) negates the score: every term
	// is computed white-minus-black from the placement, so only the final sign changes.
	diff := int(eval.Evaluate(white)) + int(eval.Evaluate(black))
	assert.InDelta(t, 0, diff, 4)
}

func TestPieceValueOrdering(t *testing.T) {
	assert.True(t, eval.PieceValue(board.Pawn) < eval.PieceValue(board.Knight))
	assert.True(t, eval.PieceValue(board.Knight) < eval.PieceValue(board.Bishop) || eval.PieceValue(board.Bishop) < eval.PieceValue(board.Knight))
	assert.True(t, eval.PieceValue(board.Rook) < eval.PieceValue(board.Queen))
	assert.True(t, eval.PieceValue(board.Queen) < eval.PieceValue(board.King))
}

func TestFindAttackers(t *testing.T) {
	pos := mustDecode(t, "4k3/8/8/8/3r4/8/8/R3K3 w - - 0 1")
	attackers := eval.FindAttackers(pos, board.White, board.A4)
	require.Len(t, attackers, 1)
	assert.Equal(t, board.Rook, attackers[0].Piece)
	assert.Equal(t, board.A1, attackers[0].Square)
}
