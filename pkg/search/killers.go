package search

import "github.com/herohde/kestrel/pkg/board"

// killerTable holds two killer move slots per ply: quiet moves that caused a beta
// cutoff at that ply in a sibling subtree, tried early before the remaining quiets.
// Bound into the Searcher (rather than left as teacher-style process-wide globals) so
// independent searches do not interfere with each other.
type killerTable struct {
	slots [MaxPly][2]board.Move
}

func (k *killerTable) probe(ply int) (board.Move, board.Move) {
	return k.slots[ply][0], k.slots[ply][1]
}

// update shifts the current first killer into the second slot and installs m as the
// new first killer, unless m is already the first killer.
func (k *killerTable) update(ply int, m board.Move) {
	if k.slots[ply][0] == m {
		return
	}
	k.slots[ply][1] = k.slots[ply][0]
	k.slots[ply][0] = m
}

func (k *killerTable) clear() {
	for i := range k.slots {
		k.slots[i][0] = board.NoMove
		k.slots[i][1] = board.NoMove
	}
}
