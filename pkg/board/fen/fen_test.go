package fen_test

import (
	"testing"

	"github.com/herohde/nova/pkg/board"
	"github.com/herohde/nova/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []string{
		fen.Initial,
		"4k3/2pppp2/8/4P1K1/4PP2/3P4/8/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5P2/PPPPP1PP/RNBQKBNR w KQkq - 0 1",
	}
	for _, tt := range tests {
		pos, err := fen.Decode(tt)
		require.NoError(t, err)
		assert.Equal(t, tt, fen.Encode(pos))
	}
}

func TestDecodeFieldsIgnoresTrailingClocks(t *testing.T) {
	pos, err := fen.Decode("4k3/8/8/8/8/8/8/4K3 w - - 57 113")
	require.NoError(t, err)

	// The move counters are accepted but not retained; re-encoding always emits the
	// fixed "0 1" pair.
	assert.Equal(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1", fen.Encode(pos))
}

func TestDecodeAcceptsMissingClocks(t *testing.T) {
	pos, err := fen.Decode("4k3/8/8/8/8/8/8/4K3 w - -")
	require.NoError(t, err)

	assert.Equal(t, board.White, pos.Side())
}
