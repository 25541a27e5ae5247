package board

// Role identifies a piece kind without color: Pawn, Knight, Bishop, Rook, Queen or King.
type Role uint8

const (
	NoRole Role = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (r Role) IsValid() bool {
	return Pawn <= r && r <= King
}

func (r Role) String() string {
	switch r {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "-"
	}
}

// ParseRole parses a promotion letter, such as 'q' or 'N'. Pawn and King are not
// valid promotion roles.
func ParseRole(r rune) (Role, bool) {
	switch r {
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	default:
		return NoRole, false
	}
}

// Piece is a tagged value with 13 variants: Empty, and each Role for each Color.
// Integer ordering is a load-bearing invariant: Empty < every White piece < every
// Black piece. Move generation's "is this square an enemy piece?" checks rely on it
// (see Position.isEnemy), so the iota order below must not change.
type Piece uint8

const (
	Empty Piece = iota

	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing

	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
)

// NewPiece composes a colored piece from a color and a role. Role must not be NoRole.
func NewPiece(c Color, r Role) Piece {
	if c == White {
		return Piece(r)
	}
	return Piece(r) + BlackPawn - 1
}

// IsEmpty returns true iff the piece is the Empty sentinel.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Color returns the piece's color. Returns false iff the piece is Empty.
func (p Piece) Color() (Color, bool) {
	switch {
	case p == Empty:
		return 0, false
	case p <= WhiteKing:
		return White, true
	default:
		return Black, true
	}
}

// Role returns the piece's role, ignoring color. Returns NoRole iff the piece is Empty.
func (p Piece) Role() Role {
	switch {
	case p == Empty:
		return NoRole
	case p <= WhiteKing:
		return Role(p)
	default:
		return Role(p - BlackPawn + 1)
	}
}

// IsWhite returns true iff the piece is a White piece.
func (p Piece) IsWhite() bool {
	return p != Empty && p <= WhiteKing
}

// IsBlack returns true iff the piece is a Black piece.
func (p Piece) IsBlack() bool {
	return p >= BlackPawn
}

func (p Piece) String() string {
	if p == Empty {
		return "."
	}
	c, _ := p.Color()
	s := p.Role().String()
	if c == White {
		return upper(s)
	}
	return s
}

// ParsePiece parses a FEN board letter, such as 'P' (white pawn) or 'n' (black knight).
func ParsePiece(r rune) (Piece, bool) {
	switch r {
	case 'P':
		return WhitePawn, true
	case 'N':
		return WhiteKnight, true
	case 'B':
		return WhiteBishop, true
	case 'R':
		return WhiteRook, true
	case 'Q':
		return WhiteQueen, true
	case 'K':
		return WhiteKing, true
	case 'p':
		return BlackPawn, true
	case 'n':
		return BlackKnight, true
	case 'b':
		return BlackBishop, true
	case 'r':
		return BlackRook, true
	case 'q':
		return BlackQueen, true
	case 'k':
		return BlackKing, true
	default:
		return Empty, false
	}
}

func upper(s string) string {
	if len(s) == 0 {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
