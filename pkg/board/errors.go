package board

import "errors"

// Sentinel errors for the error kinds in the external contract: a caller can check
// errors.Is(err, board.ErrMalformedPosition) etc. regardless of the specific detail
// message.
var (
	// ErrMalformedPosition indicates an unparsable position string: wrong field
	// count, wrong number of ranks/files, or an unknown piece letter.
	ErrMalformedPosition = errors.New("malformed position string")

	// ErrMalformedMove indicates an unparsable long-algebraic move string.
	ErrMalformedMove = errors.New("malformed move string")

	// ErrIllegalMove indicates a syntactically valid move that is not a legal move
	// in the current position.
	ErrIllegalMove = errors.New("illegal move")
)
