package eval

import (
	"sort"

	"github.com/herohde/nova/pkg/board"
)

// kingAdjacency lists the 0x88 step offsets around a king square, reused here for the
// king-safety term.
var kingAdjacency = [8]int{-17, -16, -15, -1, 1, 15, 16, 17}

// Evaluate returns a static score for pos, positive favoring White, from White's
// perspective: material plus piece-square placement, plus a mobility term for the
// side to move, plus a king-safety term for each side. The position is not mutated;
// mobility is read via a full legal-move generation, which is comparatively
// expensive and intended to be called only at the search frontier.
func Evaluate(pos *board.Position) Score {
	var score Score

	for sq := board.Square(0); sq < 128; sq++ {
		if !sq.OnBoard() {
			continue
		}
		piece := pos.PieceAt(sq)
		if piece.IsEmpty() {
			continue
		}

		c, _ := piece.Color()
		value := NominalValue(piece.Role())
		if piece.Role() == board.King {
			value = 0 // king material never contributes to positional score
		}
		adjusted := Score(pst(piece, sq))
		if c == board.White {
			score += value + adjusted
		} else {
			score += -value + adjusted
		}
	}

	mobility := Score(len(pos.LegalMoves()))
	score += mobility * 5 * Unit(pos.Side())

	score += kingSafety(pos, board.White)
	score -= kingSafety(pos, board.Black)

	return Crop(score)
}

// kingSafety counts c's pawns adjacent to c's king, worth 10 centipawns each.
func kingSafety(pos *board.Position, c board.Color) Score {
	king := pos.KingSquare(c)
	pawn := board.NewPiece(c, board.Pawn)

	var count int
	for _, off := range kingAdjacency {
		t := king + board.Square(off)
		if t.OnBoard() && pos.PieceAt(t) == pawn {
			count++
		}
	}
	return Score(count) * 10
}

// OrderMoves sorts moves in place, most promising first, using MVV-LVA (most valuable
// victim, least valuable attacker) with a flat bonus for promotions. This is a move
// ordering heuristic only: it never changes which moves are legal, only the order a
// search visits them in.
func OrderMoves(pos *board.Position, moves []board.Move) {
	weight := func(m board.Move) Score {
		var s Score
		// The move has not been applied yet, so the target square's occupant -- not
		// m.Captured, which MakeMove fills in only after application -- is the victim.
		if target := pos.PieceAt(m.To); !target.IsEmpty() {
			attacker := pos.PieceAt(m.From)
			s += abs(NominalValue(target.Role())) - abs(NominalValue(attacker.Role())) + 1000
		}
		if m.Promotion != board.NoRole {
			s += 800
		}
		return s
	}

	sort.SliceStable(moves, func(i, j int) bool {
		return weight(moves[i]) > weight(moves[j])
	})
}

func abs(s Score) Score {
	if s < 0 {
		return -s
	}
	return s
}
