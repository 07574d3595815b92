package board_test

import (
	"testing"

	"github.com/herohde/kestrel/pkg/board"
	"github.com/herohde/kestrel/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPositionValidation(t *testing.T) {
	_, err := board.NewPosition([]board.Placement{
		{Square: board.E1, Color: board.White, Piece: board.King},
	}, board.White, board.NoCastling, board.NoSquare, 0, 1)
	assert.Error(t, err, "missing black king")

	_, err = board.NewPosition([]board.Placement{
		{Square: board.E1, Color: board.White, Piece: board.King},
		{Square: board.E2, Color: board.Black, Piece: board.King},
	}, board.White, board.NoCastling, board.NoSquare, 0, 1)
	assert.Error(t, err, "kings adjacent")

	_, err = board.NewPosition([]board.Placement{
		{Square: board.E1, Color: board.White, Piece: board.King},
		{Square: board.E1, Color: board.Black, Piece: board.Queen},
		{Square: board.E8, Color: board.Black, Piece: board.King},
	}, board.White, board.NoCastling, board.NoSquare, 0, 1)
	assert.Error(t, err, "duplicate square")

	pos, err := board.NewPosition([]board.Placement{
		{Square: board.E1, Color: board.White, Piece: board.King},
		{Square: board.E8, Color: board.Black, Piece: board.King},
	}, board.White, board.NoCastling, board.NoSquare, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, board.E1, pos.KingSquare(board.White))
	assert.Equal(t, board.E8, pos.KingSquare(board.Black))
}

func TestMakeUnmakeMoveRestoresState(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move board.Move
	}{
		{"quiet", fen.Initial, board.NewMove(board.E2, board.E4, board.Normal)},
		{"capture", "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
			board.NewMove(board.F3, board.E5, board.Capture)},
		{"en passant", "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
			board.NewMove(board.E5, board.F6, board.EnPassant)},
		{"king-side castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			board.NewMove(board.E1, board.G1, board.CastleKing)},
		{"queen-side castle", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			board.NewMove(board.E8, board.C8, board.CastleQueen)},
		{"promotion", "8/P6k/8/8/8/8/7p/K7 w - - 0 1",
			board.NewMove(board.A7, board.A8, board.PromoQ)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := fen.Decode(tt.fen)
			require.NoError(t, err)

			before := *pos
			beforeHash := board.ComputeHash(pos)

			pos.MakeMove(tt.move)
			assert.Equal(t, board.ComputeHash(pos), pos.Hash(), "hash must match from-scratch recomputation after make")

			pos.UnmakeMove(tt.move)
			assert.Equal(t, before, *pos, "position must be byte-equal after make/unmake")
			assert.Equal(t, beforeHash, pos.Hash())
		})
	}
}

func TestMakeMoveClearsCastlingRightsOnRookCapture(t *testing.T) {
	pos, err := fen.Decode("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	pos.MakeMove(board.NewMove(board.A1, board.A8, board.Capture))
	assert.False(t, pos.Castling().IsAllowed(board.WhiteQueenSide))
	assert.False(t, pos.Castling().IsAllowed(board.BlackQueenSide))
	assert.True(t, pos.Castling().IsAllowed(board.WhiteKingSide))
	assert.True(t, pos.Castling().IsAllowed(board.BlackKingSide))
}

func TestMakeMoveSetsEnPassantOnDoublePush(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	pos.MakeMove(board.NewMove(board.E2, board.E4, board.Normal))
	ep, ok := pos.EnPassant()
	assert.True(t, ok)
	assert.Equal(t, board.E3, ep)
}

func TestMakeMoveResetsHalfmoveClockOnPawnOrCapture(t *testing.T) {
	pos, err := fen.Decode("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 4 3")
	require.NoError(t, err)

	pos.MakeMove(board.NewMove(board.G1, board.F3, board.Normal))
	assert.Equal(t, 5, pos.HalfmoveClock())

	pos.MakeMove(board.NewMove(board.B8, board.C6, board.Normal))
	assert.Equal(t, 6, pos.HalfmoveClock())

	pos.MakeMove(board.NewMove(board.D2, board.D4, board.Normal))
	assert.Equal(t, 0, pos.HalfmoveClock())

	pos.MakeMove(board.NewMove(board.C6, board.D4, board.Capture))
	assert.Equal(t, 0, pos.HalfmoveClock())
}

func TestIsFiftyMoveDraw(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: board.E1, Color: board.White, Piece: board.King},
		{Square: board.E8, Color: board.Black, Piece: board.King},
	}, board.White, board.NoCastling, board.NoSquare, 100, 60)
	require.NoError(t, err)
	assert.True(t, pos.IsFiftyMoveDraw())
}

func TestIsRepetitionThirdOccurrence(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	shuffle := []board.Move{
		board.NewMove(board.G1, board.F3, board.Normal),
		board.NewMove(board.G8, board.F6, board.Normal),
		board.NewMove(board.F3, board.G1, board.Normal),
		board.NewMove(board.F6, board.G8, board.Normal),
	}

	assert.False(t, pos.IsRepetition())
	for i := 0; i < 2; i++ {
		for _, m := range shuffle {
			pos.MakeMove(m)
		}
	}
	assert.True(t, pos.IsRepetition())
}

func TestIsInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		expected bool
	}{
		{"bare kings", "8/8/8/4k3/8/8/4K3/8 w - - 0 1", true},
		{"king and bishop vs king", "8/8/8/4k3/8/8/4KB2/8 w - - 0 1", true},
		{"king and knight vs king", "8/8/8/4k3/8/8/4KN2/8 w - - 0 1", true},
		{"same-color bishops", "8/8/3b4/4k3/8/8/4KB2/8 w - - 0 1", true},
		{"rook present", "8/8/8/4k3/8/8/4KR2/8 w - - 0 1", false},
		{"pawn present", "8/8/8/4k3/8/4P3/4K3/8 w - - 0 1", false},
	}

	for _, tt := range tests {
		pos, err := fen.Decode(tt.fen)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, pos.IsInsufficientMaterial(), tt.name)
	}
}

func TestPieceOn(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	c, p, ok := pos.PieceOn(board.A1)
	require.True(t, ok)
	assert.Equal(t, board.White, c)
	assert.Equal(t, board.Rook, p)

	_, _, ok = pos.PieceOn(board.E4)
	assert.False(t, ok)
}
