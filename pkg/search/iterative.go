package search

import (
	"context"
	"errors"
	"time"

	"github.com/herohde/nova/pkg/board"
	"github.com/herohde/nova/pkg/eval"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// ErrHalted indicates ctx was already cancelled before any depth could complete.
var ErrHalted = errors.New("search halted")

// FindBestMove runs iterative deepening alpha-beta from depth 1 up to opt.DepthLimit,
// logging each completed depth's principal variation. It returns the deepest PV
// completed before ctx was cancelled; a cancellation that arrives mid-depth still
// yields the previous depth's PV rather than an error. Only a cancellation before
// any depth has completed returns ErrHalted.
func FindBestMove(ctx context.Context, pos *board.Position, opt Options) (PV, error) {
	if opt.DepthLimit < 1 {
		opt.DepthLimit = 1
	}

	root := pos.LegalMoves()
	if len(root) == 0 {
		return PV{}, nil
	}

	var best PV
	for depth := 1; depth <= opt.DepthLimit; depth++ {
		start := time.Now()

		run := &alphaBetaRun{pos: pos}
		score, moves := run.search(ctx, depth, eval.NegInf, eval.Inf)

		if len(moves) == 0 || contextx.IsCancelled(ctx) {
			// ctx was cancelled during this depth, so its result is incomplete: the
			// prior depth's PV, if any, is the best this call can stand behind.
			break
		}

		best = PV{
			Depth: depth,
			Score: score,
			Moves: moves,
			Nodes: run.nodes,
			Time:  time.Since(start),
		}
		logw.Debugf(ctx, "search depth=%v complete: %v", depth, best)
	}

	if len(best.Moves) == 0 {
		if contextx.IsCancelled(ctx) {
			return PV{}, ErrHalted
		}
		// DepthLimit of 1 with root non-empty always produces a PV; this is
		// unreachable unless ctx was cancelled, handled above.
		best.Moves = []board.Move{root[0]}
	}
	return best, nil
}
