package eval_test

import (
	"testing"

	"github.com/herohde/nova/pkg/board/fen"
	"github.com/herohde/nova/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateMaterialAdvantage(t *testing.T) {
	// White is up a queen, nothing else asymmetric about the position.
	pos, err := fen.Decode("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)

	assert.Greater(t, eval.Evaluate(pos), eval.Score(0))
}

func TestEvaluateSymmetricKingsIsZeroPST(t *testing.T) {
	// Kings on e1/e8 are true vertical mirrors of each other, so the piece-square
	// contribution, the only material/positional term present on an otherwise bare
	// board, cancels. Mobility is not symmetric, though: it is only ever added for
	// the side to move (eval.go's mobility term is signed by pos.Side(), not summed
	// over both sides), so White to move here still picks up +5 per legal king move.
	// King-safety is zero (no pawns). With no castling rights, White's king on e1 has
	// five legal destinations (d1, d2, e2, f1, f2), so the expected score is exactly
	// the mobility term: 5 moves * 5 = 25.
	pos, err := fen.Decode("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.Equal(t, eval.Score(25), eval.Evaluate(pos))
}

func TestEvaluateSignFlipsWithSideToMoveMobility(t *testing.T) {
	pos, err := fen.Decode("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)
	white := eval.Evaluate(pos)

	pos2, err := fen.Decode("4k3/8/8/8/8/8/8/3QK3 b - - 0 1")
	require.NoError(t, err)
	black := eval.Evaluate(pos2)

	// Same placement, opposite side to move: the mobility term (signed by side to
	// move) is the only thing that can differ between the two evaluations.
	assert.NotEqual(t, white, black)
}

func TestEvaluateKingSafetyRewardsShelteringPawns(t *testing.T) {
	sheltered, err := fen.Decode("4k3/8/8/8/8/8/4PPP1/4K3 w - - 0 1")
	require.NoError(t, err)

	exposed, err := fen.Decode("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.Greater(t, eval.Evaluate(sheltered), eval.Evaluate(exposed))
}

func TestOrderMovesPutsCapturesFirst(t *testing.T) {
	pos, err := fen.Decode("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	moves := pos.LegalMoves()
	eval.OrderMoves(pos, moves)

	require.NotEmpty(t, moves)
	assert.Equal(t, "e4", moves[0].From.String())
	assert.Equal(t, "d5", moves[0].To.String())
}
