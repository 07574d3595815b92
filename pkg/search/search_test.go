package search_test

import (
	"context"
	"testing"

	"github.com/herohde/kestrel/pkg/board"
	"github.com/herohde/kestrel/pkg/board/fen"
	"github.com/herohde/kestrel/pkg/movegen"
	"github.com/herohde/kestrel/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, f string) *board.Position {
	t.Helper()
	pos, err := fen.Decode(f)
	require.NoError(t, err)
	return pos
}

func TestSearchFindsMateInOne(t *testing.T) {
	pos := mustDecode(t, "rnbqkb1r/pppp1ppp/5n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 0 1")

	s := search.NewSearcher(context.Background(), 1 << 20)
	_, stats := s.Search(context.Background(), pos, search.Params{MaxDepth: 3})

	assert.Greater(t, int(stats.Score), 5000)
	require.NotEmpty(t, stats.PV)
}

func TestSearchRestoresPositionAfterSearch(t *testing.T) {
	pos := mustDecode(t, fen.Initial)
	before := *pos

	s := search.NewSearcher(context.Background(), 1 << 20)
	s.Search(context.Background(), pos, search.Params{MaxDepth: 3})

	assert.Equal(t, before, *pos)
}

func TestSearchReturnsLegalBestMove(t *testing.T) {
	pos := mustDecode(t, fen.Initial)

	s := search.NewSearcher(context.Background(), 1 << 20)
	best, _ := s.Search(context.Background(), pos, search.Params{MaxDepth: 2})

	var list board.MoveList
	movegen.Generate(pos, &list)

	_, found := list.Contains(best.From(), best.To(), best.Flag().PromotionPiece())
	assert.True(t, found)
}

func TestSearchStopsAtCheckmate(t *testing.T) {
	// Fool's mate: black has already delivered checkmate.
	pos := mustDecode(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")

	s := search.NewSearcher(context.Background(), 1 << 20)
	best, stats := s.Search(context.Background(), pos, search.Params{MaxDepth: 4})

	assert.Equal(t, board.NoMove, best)
	assert.Equal(t, -board.Mate, stats.Score)
}

func TestSearchCancellation(t *testing.T) {
	pos := mustDecode(t, fen.Initial)

	s := search.NewSearcher(context.Background(), 1 << 20)
	calls := 0
	cancel := func() bool {
		calls++
		return calls > 1
	}
	best, stats := s.Search(context.Background(), pos, search.Params{MaxDepth: 64, Cancel: cancel})

	assert.NotEqual(t, board.NoMove, best)
	assert.LessOrEqual(t, stats.Depth, 64)
}
