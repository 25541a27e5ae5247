// Package eval implements static position evaluation in centipawns.
package eval

import (
	"fmt"

	"github.com/herohde/nova/pkg/board"
)

// Score is a signed position or move score in centipawns. Positive favors White. Scores
// are kept within [MinScore, MaxScore]; the wider Inf/NegInf pair exists only as search
// sentinels one step outside that range.
type Score int

const (
	MinScore Score = -1000000
	MaxScore Score = 1000000

	NegInf = MinScore - 1
	Inf    = MaxScore + 1

	// Mate is the magnitude used for a confirmed checkmate, comfortably inside
	// [MinScore, MaxScore] so that a mate score still outranks any plausible
	// material/positional score but leaves room for ply-adjusted mate distances.
	Mate Score = 100000
)

func (s Score) String() string {
	return fmt.Sprintf("%v", int(s))
}

// Unit returns the signed unit for the color: 1 for White and -1 for Black.
func Unit(c board.Color) Score {
	return Score(c.Unit())
}

// Crop clamps s into [MinScore, MaxScore].
func Crop(s Score) Score {
	switch {
	case s > MaxScore:
		return MaxScore
	case s < MinScore:
		return MinScore
	default:
		return s
	}
}

// Max returns the largest of the given scores.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smallest of the given scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}

// NominalValue returns the material value of a role in centipawns. NoRole and King
// return 0 and a large arbitrary value respectively; King is never added to a position's
// material score, only used to weigh move ordering (see OrderMoves).
func NominalValue(r board.Role) Score {
	switch r {
	case board.Pawn:
		return 100
	case board.Knight:
		return 320
	case board.Bishop:
		return 330
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	case board.King:
		return 20000
	default:
		return 0
	}
}
