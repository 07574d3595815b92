package board

import "fmt"

// Score is a signed position or move score in centipawns. Positive favors the side to
// move, per the search's negamax convention. 16 bits.
type Score int16

const (
	// Infinite bounds the alpha-beta window at the root.
	Infinite Score = 30000
	// Mate is the score magnitude used for forced checkmates; shorter mates score
	// closer to Mate, longer mates score further from it (Mate - ply).
	Mate Score = 29000
	// Draw is the score of a drawn position.
	Draw Score = 0
)

func (s Score) String() string {
	return fmt.Sprintf("%.2f", float64(s)/100)
}

// IsMateScore returns true iff the score indicates a forced mate for either side.
func (s Score) IsMateScore() bool {
	return s > Mate-1000 || s < -Mate+1000
}
