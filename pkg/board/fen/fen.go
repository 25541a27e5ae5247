// Package fen contains utilities for reading and writing positions in Forsyth-Edwards
// notation, the external position string format.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/herohde/nova/pkg/board"
)

// Initial is the FEN of the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a position string: piece placement, active color, castling
// availability and en passant target are required; any further fields, such as the
// halfmove and fullmove counters, are accepted without being read or validated. A
// malformed string returns a
// board.ErrMalformedPosition error and no partial state.
func Decode(s string) (*board.Position, error) {
	fields := strings.Fields(s)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: expected at least 4 fields, got %v: %q", board.ErrMalformedPosition, len(fields), s)
	}

	pieces, err := decodePlacement(fields[0])
	if err != nil {
		return nil, err
	}

	side, ok := board.ParseColor(fields[1])
	if !ok {
		return nil, fmt.Errorf("%w: invalid active color %q", board.ErrMalformedPosition, fields[1])
	}

	castling, err := board.ParseCastling(fields[2])
	if err != nil {
		return nil, err
	}

	enPassant := board.NoSquare
	if fields[3] != "-" {
		sq, err := board.ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid en passant target %q", board.ErrMalformedPosition, fields[3])
		}
		enPassant = sq
	}

	return board.NewPosition(pieces, side, castling, enPassant)
}

func decodePlacement(s string) ([]board.Placement, error) {
	ranks := strings.Split(s, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: expected 8 ranks, got %v: %q", board.ErrMalformedPosition, len(ranks), s)
	}

	var pieces []board.Placement
	for i, rankStr := range ranks {
		r := board.Rank8 - board.Rank(i)
		f := board.FileA
		for _, c := range rankStr {
			if f > board.FileH {
				return nil, fmt.Errorf("%w: rank %v overflows 8 files: %q", board.ErrMalformedPosition, r, s)
			}
			switch {
			case unicode.IsDigit(c):
				f += board.File(c - '0')
			default:
				piece, ok := board.ParsePiece(c)
				if !ok {
					return nil, fmt.Errorf("%w: invalid piece letter %q", board.ErrMalformedPosition, string(c))
				}
				pieces = append(pieces, board.Placement{Square: board.NewSquare(f, r), Piece: piece})
				f++
			}
		}
		if f != board.FileH+1 {
			return nil, fmt.Errorf("%w: rank %v does not cover 8 files: %q", board.ErrMalformedPosition, r, s)
		}
	}
	return pieces, nil
}

// Encode renders pos as a position string, with halfmove/fullmove counters written
// as the fixed "0 1" (this package does not track game-level move counters).
func Encode(pos *board.Position) string {
	var sb strings.Builder
	for r := board.Rank8; ; r-- {
		empty := 0
		for f := board.FileA; f <= board.FileH; f++ {
			piece := pos.PieceAt(board.NewSquare(f, r))
			if piece == board.Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == board.Rank1 {
			break
		}
		sb.WriteByte('/')
	}

	ep := "-"
	if sq, ok := pos.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v 0 1", sb.String(), pos.Side(), pos.Castling(), ep)
}
