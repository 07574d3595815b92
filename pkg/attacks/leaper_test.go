package attacks_test

import (
	"testing"

	"github.com/herohde/kestrel/pkg/attacks"
	"github.com/herohde/kestrel/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestKingAttacks(t *testing.T) {
	tests := []struct {
		sq       board.Square
		expected string
	}{
		{board.A1, "--------/--------/--------/--------/--------/--------/XX------/-X------"},
		{board.H1, "--------/--------/--------/--------/--------/--------/------XX/------X-"},
		{board.D4, "--------/--------/--------/--XXX---/--X-X---/--XXX---/--------/--------"},
		{board.H8, "------X-/------XX/--------/--------/--------/--------/--------/--------"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, attacks.King(tt.sq).String())
	}
}

func TestKnightAttacks(t *testing.T) {
	tests := []struct {
		sq       board.Square
		expected int
	}{
		{board.A1, 2},
		{board.D4, 8},
		{board.H1, 2},
		{board.B2, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, attacks.Knight(tt.sq).PopCount())
	}
}

func TestPawnAttacks(t *testing.T) {
	assert.Equal(t, 2, attacks.Pawn(board.White, board.E4).PopCount())
	assert.True(t, attacks.Pawn(board.White, board.E4).IsSet(board.D5))
	assert.True(t, attacks.Pawn(board.White, board.E4).IsSet(board.F5))

	assert.Equal(t, 2, attacks.Pawn(board.Black, board.E4).PopCount())
	assert.True(t, attacks.Pawn(board.Black, board.E4).IsSet(board.D3))
	assert.True(t, attacks.Pawn(board.Black, board.E4).IsSet(board.F3))

	assert.Equal(t, 1, attacks.Pawn(board.White, board.A4).PopCount())
	assert.Equal(t, 1, attacks.Pawn(board.White, board.H4).PopCount())
}
