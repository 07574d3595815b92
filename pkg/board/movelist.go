package board

// MaxMoves is the fixed capacity of a MoveList. 256 is far beyond the legal move count
// of any reachable chess position (the theoretical worst case is in the low 200s).
const MaxMoves = 256

// MoveList is a fixed-capacity, stack-resident list of moves. The move generator and
// search fill one per recursion frame; none of it is heap-allocated.
type MoveList struct {
	moves [MaxMoves]Move
	n     int
}

// Add appends a move to the list. Silently drops moves beyond MaxMoves, which cannot
// happen for a legal chess position.
func (l *MoveList) Add(m Move) {
	if l.n < MaxMoves {
		l.moves[l.n] = m
		l.n++
	}
}

// Len returns the number of moves in the list.
func (l *MoveList) Len() int {
	return l.n
}

// At returns the move at the given index.
func (l *MoveList) At(i int) Move {
	return l.moves[i]
}

// Set overwrites the move at the given index. Used by move-ordering passes.
func (l *MoveList) Set(i int, m Move) {
	l.moves[i] = m
}

// Swap exchanges the moves at the given indices. Used by move-ordering passes.
func (l *MoveList) Swap(i, j int) {
	l.moves[i], l.moves[j] = l.moves[j], l.moves[i]
}

// Slice returns the list's contents as a plain slice backed by the list's own array.
// Convenient for callers (tests, notation) that want a range-able value; it does not
// escape to the heap under normal inlining since the MoveList itself is stack-resident.
func (l *MoveList) Slice() []Move {
	return l.moves[:l.n]
}

// Contains returns true iff the list contains a move with the given from/to/promotion,
// regardless of flag detail (capture/en-passant bits set by the generator). Used to
// match a user-supplied coordinate move against the legal move list.
func (l *MoveList) Contains(from, to Square, promo Piece) (Move, bool) {
	for i := 0; i < l.n; i++ {
		m := l.moves[i]
		if m.From() == from && m.To() == to && m.Flag().PromotionPiece() == promo {
			return m, true
		}
	}
	return NoMove, false
}
