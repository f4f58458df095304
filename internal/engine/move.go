package engine

import (
	"errors"
	"fmt"
)

// MoveType tags a Move with enough information to make and unmake it. The
// no-progress counter (HalfMoveClock) resets on any pawn move or capture
// and otherwise increments, whatever the type.
type MoveType uint8

const (
	Normal MoveType = iota
	DoublePawnPush
	EnPassant
	KingSideCastle
	QueenSideCastle
	Capture
	Promotion
	CapturePromotion
)

// Move represents a not-necessarily-legal move along with the contextual
// metadata needed to apply it: From/To squares, the promotion piece (if
// any), the move's Kind, and — for capturing moves — the piece captured.
// Apply does not read Captured: a regular capture overwrites the
// destination, and en passant clears the square behind the destination.
type Move struct {
	From, To  Square
	Promotion PieceType
	Kind      MoveType
	Captured  Piece
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Kind == Promotion || m.Kind == CapturePromotion
}

// IsCapture reports whether m captures a piece (including en passant).
func (m Move) IsCapture() bool {
	return m.Kind == Capture || m.Kind == CapturePromotion || m.Kind == EnPassant
}

// ParseMove parses a move in pure coordinate notation, such as "e2e4" or
// "a7a8q". The parsed move carries no contextual information (Kind is
// always Normal and Captured is always empty). Board.Apply uses Kind as
// given, so callers match the parsed move against Board.LegalMoves and
// apply the matching, fully tagged move instead.
func ParseMove(s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return Move{}, fmt.Errorf("invalid move %q: expected 4-5 characters", s)
	}

	fromFile := int(s[0] - 'a')
	fromRank := int(s[1] - '1')
	from := NewSquare(fromFile, fromRank)
	if from == NoSquare {
		return Move{}, fmt.Errorf("invalid move %q: bad source square %q", s, s[0:2])
	}

	toFile := int(s[2] - 'a')
	toRank := int(s[3] - '1')
	to := NewSquare(toFile, toRank)
	if to == NoSquare {
		return Move{}, fmt.Errorf("invalid move %q: bad destination square %q", s, s[2:4])
	}

	promo := Empty
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return Move{}, fmt.Errorf("invalid move %q: bad promotion piece %q", s, s[4])
		}
	}

	return Move{From: from, To: to, Promotion: promo}, nil
}

// ErrIllegalMove indicates a parsed move is not among the position's legal
// moves; the boundary (interactive loop, UCI transport) surfaces this to
// the user rather than the engine core raising it as a fault.
var ErrIllegalMove = errors.New("illegal move")

// String returns the move in coordinate notation (e.g., "e2e4", "a7a8q").
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	switch m.Promotion {
	case Queen:
		s += "q"
	case Rook:
		s += "r"
	case Bishop:
		s += "b"
	case Knight:
		s += "n"
	}
	return s
}
