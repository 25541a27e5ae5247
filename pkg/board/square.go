package board

import "fmt"

// File represents a board file, a=0 .. h=7.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

func ParseFile(r rune) (File, bool) {
	if r < 'a' || r > 'h' {
		return 0, false
	}
	return File(r - 'a'), true
}

func (f File) String() string {
	return string(rune('a' + f))
}

// Rank represents a board rank, Rank1=0 (White's first rank) .. Rank8=7.
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

func ParseRank(r rune) (Rank, bool) {
	if r < '1' || r > '8' {
		return 0, false
	}
	return Rank(r - '1'), true
}

func (r Rank) String() string {
	return string(rune('1' + r))
}

// Square is a 0x88 board index: square = rank*16 + file, rank and file in [0,7]. A
// square is on-board iff index&0x88 == 0; all other indices -- including negative
// ones -- are off-board sentinels, never read from a Position.
//
// Square indices are never bounds-checked against array length; OnBoard is the only
// admission test, matching the reference engine's "off-board entries are never read"
// invariant.
type Square int16

// NoSquare is the "none" sentinel used for an absent en passant target. It is
// off-board (NoSquare & 0x88 != 0) and must never be used to index a Position's
// square array.
const NoSquare Square = -1

// NewSquare builds a square from a file and rank.
func NewSquare(f File, r Rank) Square {
	return Square(r)<<4 | Square(f)
}

// ParseSquare parses a square such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}
	f, ok := ParseFile(rune(s[0]))
	if !ok {
		return NoSquare, fmt.Errorf("invalid file in square: %q", s)
	}
	r, ok := ParseRank(rune(s[1]))
	if !ok {
		return NoSquare, fmt.Errorf("invalid rank in square: %q", s)
	}
	return NewSquare(f, r), nil
}

// OnBoard returns true iff the square is a valid 0x88 board index.
func (s Square) OnBoard() bool {
	return s >= 0 && s&0x88 == 0
}

func (s Square) File() File {
	return File(s & 7)
}

func (s Square) Rank() Rank {
	return Rank(s >> 4)
}

func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return fmt.Sprintf("%v%v", s.File(), s.Rank())
}

// Named squares, for readable code and tests. Values follow NewSquare(file, rank).
const (
	A1, B1, C1, D1, E1, F1, G1, H1 = Square(0x00), Square(0x01), Square(0x02), Square(0x03), Square(0x04), Square(0x05), Square(0x06), Square(0x07)
	A2, B2, C2, D2, E2, F2, G2, H2 = Square(0x10), Square(0x11), Square(0x12), Square(0x13), Square(0x14), Square(0x15), Square(0x16), Square(0x17)
	A3, B3, C3, D3, E3, F3, G3, H3 = Square(0x20), Square(0x21), Square(0x22), Square(0x23), Square(0x24), Square(0x25), Square(0x26), Square(0x27)
	A4, B4, C4, D4, E4, F4, G4, H4 = Square(0x30), Square(0x31), Square(0x32), Square(0x33), Square(0x34), Square(0x35), Square(0x36), Square(0x37)
	A5, B5, C5, D5, E5, F5, G5, H5 = Square(0x40), Square(0x41), Square(0x42), Square(0x43), Square(0x44), Square(0x45), Square(0x46), Square(0x47)
	A6, B6, C6, D6, E6, F6, G6, H6 = Square(0x50), Square(0x51), Square(0x52), Square(0x53), Square(0x54), Square(0x55), Square(0x56), Square(0x57)
	A7, B7, C7, D7, E7, F7, G7, H7 = Square(0x60), Square(0x61), Square(0x62), Square(0x63), Square(0x64), Square(0x65), Square(0x66), Square(0x67)
	A8, B8, C8, D8, E8, F8, G8, H8 = Square(0x70), Square(0x71), Square(0x72), Square(0x73), Square(0x74), Square(0x75), Square(0x76), Square(0x77)
)

// Offsets for sliding and stepping pieces in 0x88 coordinates.
var (
	knightOffsets = [8]int{-33, -31, -18, -14, 14, 18, 31, 33}
	bishopOffsets = [4]int{-17, -15, 15, 17}
	rookOffsets   = [4]int{-16, -1, 1, 16}
	kingOffsets   = [8]int{-17, -16, -15, -1, 1, 15, 16, 17}
)
