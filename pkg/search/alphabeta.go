package search

import (
	"context"

	"github.com/herohde/nova/pkg/board"
	"github.com/herohde/nova/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// alphaBeta implements alpha-beta pruning, expressed directly in White-maximizes /
// Black-minimizes form rather than the equivalent negamax folding, to keep the
// relationship between Position.Side and the sign of the returned score explicit.
// Pseudo-code:
//
//	function alphabeta(node, depth, α, β, maximizingPlayer) is
//	    if depth = 0 or node is terminal then
//	        return the heuristic value of node
//	    if maximizingPlayer then
//	        value := −∞
//	        for each child of node do
//	            value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
//	            α := max(α, value)
//	            if α ≥ β then break
//	        return value
//	    else
//	        value := +∞
//	        for each child of node do
//	            value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
//	            β := min(β, value)
//	            if β ≤ α then break
//	        return value
//
// See: https://en.wikipedia.org/wiki/Alpha-beta_pruning.
type alphaBetaRun struct {
	pos   *board.Position
	nodes uint64
}

func (r *alphaBetaRun) search(ctx context.Context, depth int, alpha, beta eval.Score) (eval.Score, []board.Move) {
	if contextx.IsCancelled(ctx) {
		return 0, nil
	}

	r.nodes++

	if depth == 0 {
		return eval.Evaluate(r.pos), nil
	}

	moves := r.pos.LegalMoves()
	if len(moves) == 0 {
		if r.pos.IsChecked(r.pos.Side()) {
			if r.pos.Side() == board.White {
				return -eval.Mate, nil
			}
			return eval.Mate, nil
		}
		return 0, nil // stalemate
	}

	ordered := append([]board.Move(nil), moves...)
	eval.OrderMoves(r.pos, ordered)

	if r.pos.Side() == board.White {
		value := eval.NegInf
		var pv []board.Move
		for _, m := range ordered {
			r.pos.MakeMove(m)
			score, rem := r.search(ctx, depth-1, alpha, beta)
			r.pos.UndoMove()

			if score > value {
				value = score
				pv = append([]board.Move{m}, rem...)
			}
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				break
			}
		}
		return value, pv
	}

	value := eval.Inf
	var pv []board.Move
	for _, m := range ordered {
		r.pos.MakeMove(m)
		score, rem := r.search(ctx, depth-1, alpha, beta)
		r.pos.UndoMove()

		if score < value {
			value = score
			pv = append([]board.Move{m}, rem...)
		}
		if value < beta {
			beta = value
		}
		if beta <= alpha {
			break
		}
	}
	return value, pv
}
