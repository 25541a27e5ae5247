// Package engine wires board, eval and search into the three operations an external
// caller drives a game through: loading a position, applying an opponent's move, and
// asking for the engine's own move.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/herohde/nova/pkg/board"
	"github.com/herohde/nova/pkg/board/fen"
	"github.com/herohde/nova/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// StartPosition is the position string for the standard starting position.
const StartPosition = fen.Initial

// Engine holds one game's worth of mutable state behind a mutex: the current
// position. The search depth is passed to each BestMove call. Not safe to share a single
// position value concurrently with external callers; the lock only protects Engine's
// own fields.
type Engine struct {
	name string

	mu  sync.Mutex
	pos *board.Position
}

// New creates an engine positioned at the standard starting position.
func New(ctx context.Context, name string) *Engine {
	e := &Engine{name: name}
	_ = e.Load(ctx, fen.Initial)

	logw.Infof(ctx, "initialized engine: %v", e.Name())
	return e
}

// Name returns the engine's name and version, suitable for a banner or a UCI id line.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Position returns the current position in FEN.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.pos)
}

// Load replaces the current position with the one described by the given position
// string. On a decode error, the engine's prior position is left untouched.
func (e *Engine) Load(ctx context.Context, position string) error {
	pos, err := fen.Decode(position)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.pos = pos
	logw.Infof(ctx, "loaded position: %v", position)
	return nil
}

// ApplyLongAlgebraic parses move as long algebraic notation and applies it to the
// current position if, and only if, it matches one of the position's legal moves.
// A syntactically valid but illegal move (e.g. "e2e5") is rejected with
// board.ErrIllegalMove.
func (e *Engine) ApplyLongAlgebraic(ctx context.Context, move string) error {
	candidate, err := board.ParseMove(move)
	if err != nil {
		return fmt.Errorf("apply move: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, m := range e.pos.LegalMoves() {
		if m.Equals(candidate) {
			e.pos.MakeMove(m)
			logw.Infof(ctx, "applied move %v: %v", m, fen.Encode(e.pos))
			return nil
		}
	}
	return fmt.Errorf("apply move %v: %w", move, board.ErrIllegalMove)
}

// BestMove searches the current position to maxDepth plies and returns its choice in
// long algebraic notation, without applying it. Returns the null move "0000" if the
// current position has no legal move (checkmate or stalemate). A maxDepth below 1 is
// rejected with an error.
func (e *Engine) BestMove(ctx context.Context, maxDepth int) (string, error) {
	if maxDepth < 1 {
		return "", fmt.Errorf("best move: depth %v out of range, must be at least 1", maxDepth)
	}

	e.mu.Lock()
	pos := e.pos.Clone()
	e.mu.Unlock()

	pv, err := search.FindBestMove(ctx, pos, search.Options{DepthLimit: maxDepth})
	if err != nil {
		return "", fmt.Errorf("best move: %w", err)
	}

	logw.Infof(ctx, "search complete: %v", pv)
	return pv.BestMove().String(), nil
}
