package board_test

import (
	"testing"

	"github.com/herohde/kestrel/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	assert.Equal(t, "1", board.Rank1.String())
	assert.Equal(t, "7", board.Rank7.String())
	assert.Equal(t, "5", board.Rank(4).String())

	r, ok := board.ParseRank('4')
	assert.True(t, ok)
	assert.Equal(t, board.Rank4, r)

	_, ok = board.ParseRank('9')
	assert.False(t, ok)
}

func TestFile(t *testing.T) {
	assert.Equal(t, "a", board.FileA.String())
	assert.Equal(t, "g", board.FileG.String())
	assert.Equal(t, "e", board.File(4).String())

	f, ok := board.ParseFile('C')
	assert.True(t, ok)
	assert.Equal(t, board.FileC, f)

	_, ok = board.ParseFile('z')
	assert.False(t, ok)
}

func TestSquare(t *testing.T) {
	assert.Equal(t, board.Square(0), board.A1)
	assert.Equal(t, board.Square(7), board.H1)
	assert.Equal(t, board.Square(56), board.A8)
	assert.Equal(t, board.Square(63), board.H8)

	assert.Equal(t, board.C2, board.NewSquare(board.FileC, board.Rank2))
	assert.Equal(t, board.G5, board.NewSquare(board.FileG, board.Rank5))

	assert.True(t, board.H1.IsValid())
	assert.True(t, board.D4.IsValid())
	assert.True(t, board.A8.IsValid())
	assert.False(t, board.NoSquare.IsValid())
	assert.False(t, board.Square(200).IsValid())

	assert.Equal(t, "h1", board.H1.String())
	assert.Equal(t, "a1", board.A1.String())
	assert.Equal(t, "-", board.NoSquare.String())

	sq, err := board.ParseSquareStr("e4")
	assert.NoError(t, err)
	assert.Equal(t, board.E4, sq)

	_, err = board.ParseSquareStr("z9")
	assert.Error(t, err)
}

func TestSquareMirror(t *testing.T) {
	assert.Equal(t, board.A8, board.A1.Mirror())
	assert.Equal(t, board.H8, board.H1.Mirror())
	assert.Equal(t, board.E4, board.E5.Mirror())
	assert.Equal(t, board.A1, board.A1.Mirror().Mirror())
}
