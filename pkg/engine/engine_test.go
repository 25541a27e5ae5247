package engine_test

import (
	"context"
	"testing"

	"github.com/herohde/nova/pkg/board"
	"github.com/herohde/nova/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartsAtStandardPosition(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test")

	assert.Equal(t, engine.StartPosition, e.Position())
}

func TestLoadRejectsMalformedPosition(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test")

	err := e.Load(ctx, "not a fen")
	assert.Error(t, err)
	assert.ErrorIs(t, err, board.ErrMalformedPosition)

	// A failed load must not disturb the prior position.
	assert.Equal(t, engine.StartPosition, e.Position())
}

func TestApplyLongAlgebraicAppliesLegalMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test")

	require.NoError(t, e.ApplyLongAlgebraic(ctx, "e2e4"))
	assert.Contains(t, e.Position(), "4P3")
}

func TestApplyLongAlgebraicRejectsIllegalMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test")

	err := e.ApplyLongAlgebraic(ctx, "e2e5")
	assert.Error(t, err)
	assert.ErrorIs(t, err, board.ErrIllegalMove)
	assert.Equal(t, engine.StartPosition, e.Position())
}

func TestApplyLongAlgebraicRejectsMalformedMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test")

	err := e.ApplyLongAlgebraic(ctx, "nonsense")
	assert.Error(t, err)
	assert.ErrorIs(t, err, board.ErrMalformedMove)
}

func TestBestMoveOnWinningPosition(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test")

	require.NoError(t, e.Load(ctx, "7k/3q4/8/8/8/8/8/3QK3 w - - 0 1"))

	move, err := e.BestMove(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "d1d7", move)

	// BestMove must not apply the move itself.
	assert.Equal(t, "7k/3q4/8/8/8/8/8/3QK3 w - - 0 1", e.Position())
}

func TestBestMoveOnCheckmateReturnsNullMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test")

	require.NoError(t, e.Load(ctx, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"))

	move, err := e.BestMove(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "0000", move)
}

func TestNameIncludesEngineName(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "nova")

	assert.Contains(t, e.Name(), "nova")
}
