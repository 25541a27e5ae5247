// Package search implements fixed-depth alpha-beta game tree search with iterative
// deepening over pkg/board positions, scored by pkg/eval.
package search

import (
	"fmt"
	"time"

	"github.com/herohde/nova/pkg/board"
	"github.com/herohde/nova/pkg/eval"
)

// PV is the principal variation found by a completed search to some depth.
type PV struct {
	Depth int
	Score eval.Score
	Moves []board.Move
	Nodes uint64
	Time  time.Duration
}

func (p PV) String() string {
	pv := board.FormatMoves(p.Moves, func(m board.Move) string {
		return m.String()
	})
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v pv=%v", p.Depth, p.Score, p.Nodes, p.Time, pv)
}

// BestMove returns the first move of the principal variation, or the null move if the
// search found no legal move (checkmate or stalemate at the root).
func (p PV) BestMove() board.Move {
	if len(p.Moves) == 0 {
		return board.Move{}
	}
	return p.Moves[0]
}

// Options holds the parameters of a single search.
type Options struct {
	// DepthLimit is the maximum depth searched, in plies. Must be at least 1.
	DepthLimit int
}
