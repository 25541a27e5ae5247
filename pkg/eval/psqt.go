package eval

import "github.com/herohde/nova/pkg/board"

// Piece-square tables, indexed a1=0 .. h8=63 (rank-major, rank 1 first -- see
// pstIndex). Black's score is taken from the same table at the mirrored index.
// Values are additive centipawn adjustments layered on top of NominalValue.
var (
	pawnTable = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	}

	knightTable = [64]int{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	}

	bishopTable = [64]int{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	}

	rookTable = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	}

	queenTable = [64]int{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	}

	kingTable = [64]int{
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	}
)

// mirror maps a table index to its vertical-flip counterpart, turning a White-oriented
// table into one usable for Black from the same array.
func mirror(idx int) int {
	return ((7-idx/8)*8 + idx%8)
}

// pstIndex maps a 0x88 square to the [0,64) index the tables above are written in:
// rank*8+file with Rank1=0. Note this means a table's first printed row (index 0..7)
// lands on rank 1, not rank 8 -- preserved exactly as laid out in the reference tables,
// quirks included, since the table contents are an external contract.
func pstIndex(sq board.Square) int {
	return int(sq.Rank())*8 + int(sq.File())
}

// pst returns the piece-square adjustment for a piece on sq, already mirrored and
// signed for the piece's color: positive contribution for White, negative for Black.
func pst(p board.Piece, sq board.Square) int {
	c, ok := p.Color()
	if !ok {
		return 0
	}

	idx := pstIndex(sq)
	if c == board.Black {
		idx = mirror(idx)
	}

	var table [64]int
	switch p.Role() {
	case board.Pawn:
		table = pawnTable
	case board.Knight:
		table = knightTable
	case board.Bishop:
		table = bishopTable
	case board.Rook:
		table = rookTable
	case board.Queen:
		table = queenTable
	case board.King:
		table = kingTable
	default:
		return 0
	}

	if c == board.White {
		return table[idx]
	}
	return -table[idx]
}
