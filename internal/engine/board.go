package engine

// Board is the complete position: the Position model of C1. A Board is a
// value-cheap struct (one fixed array, a handful of scalars) so Copy and
// make-move-on-a-copy are cheap; the generator and search never mutate a
// Board that a caller still holds a reference to.
type Board struct {
	// Squares holds all 64 squares of the board.
	// Indexed as rank * 8 + file, where a1=0, b1=1, ..., h8=63.
	Squares [64]Piece

	// ActiveColor is the color of the player to move.
	ActiveColor Color

	// CastlingRights encodes available castling options.
	// Bit 0: White kingside (K)
	// Bit 1: White queenside (Q)
	// Bit 2: Black kingside (k)
	// Bit 3: Black queenside (q)
	CastlingRights uint8

	// EnPassantSq is the en passant target square, or NoSquare if none.
	// Set by a pawn double-step and valid for the immediately following
	// ply only.
	EnPassantSq Square

	// CheckFlags records whether each king stands on an attacked square.
	// Bit 0: White in check. Bit 1: Black in check. Recomputed by
	// IsSquareAttacked after every move and cached here so callers never
	// recompute it.
	CheckFlags uint8

	// HalfMoveClock counts half-moves since the last pawn move or capture.
	// Carried through for faithful FEN round-tripping; the fifty-move and
	// seventy-five-move rules are not implemented, so nothing reads this
	// field to end a game.
	HalfMoveClock uint8

	// FullMoveNum is the current full move number, starting at 1.
	FullMoveNum uint16
}

// Castling rights bit masks.
const (
	CastleWhiteKing  uint8 = 1 << 0 // K
	CastleWhiteQueen uint8 = 1 << 1 // Q
	CastleBlackKing  uint8 = 1 << 2 // k
	CastleBlackQueen uint8 = 1 << 3 // q
	CastleAll        uint8 = CastleWhiteKing | CastleWhiteQueen | CastleBlackKing | CastleBlackQueen
)

// Check flag bit masks.
const (
	WhiteInCheck uint8 = 1 << 0
	BlackInCheck uint8 = 1 << 1
)

// inCheckMask returns the check-flag bit for the given color.
func inCheckMask(c Color) uint8 {
	if c == White {
		return WhiteInCheck
	}
	return BlackInCheck
}

// InCheck reports whether color's king stands on an attacked square in b.
func (b *Board) InCheck(c Color) bool {
	return b.CheckFlags&inCheckMask(c) != 0
}

// NewBoard creates a new empty chess board with default game state.
// All squares are empty, White is to move, all castling rights are
// available, no en passant square, half-move clock is 0, and full move
// number is 1.
func NewBoard() *Board {
	return &Board{
		Squares:        [64]Piece{}, // All zeros = all Empty pieces
		ActiveColor:    White,
		CastlingRights: CastleAll,
		EnPassantSq:    NoSquare,
		HalfMoveClock:  0,
		FullMoveNum:    1,
	}
}

// Copy returns an independent copy of b. The generator and search build
// every successor position by copying and mutating; nothing ever shares
// a Board across two positions.
func (b *Board) Copy() *Board {
	cp := *b
	return &cp
}

// PieceAt returns the piece at the given square.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return Piece(Empty)
	}
	return b.Squares[sq]
}

// KingSquare returns the square occupied by color's king, or NoSquare if
// none is present. A legal Board always has exactly one; this is used by
// the generator and threat detector, and by callers validating invariant 1.
func (b *Board) KingSquare(c Color) Square {
	for sq := Square(0); sq < 64; sq++ {
		p := b.Squares[sq]
		if p.Type() == King && p.Color() == c {
			return sq
		}
	}
	return NoSquare
}
