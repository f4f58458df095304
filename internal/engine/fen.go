package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// MalformedPositionError reports a FEN that FromFEN rejects, whether the
// failure is structural (bad field count, bad piece letter, a rank with
// the wrong number of squares) or semantic (a position invariant violated
// — see validateInvariants). Both kinds use this one type, and the CLI
// boundary maps it to a single exit code.
type MalformedPositionError struct {
	msg string
}

func (e *MalformedPositionError) Error() string { return e.msg }

func malformed(format string, args ...any) error {
	return &MalformedPositionError{msg: fmt.Sprintf(format, args...)}
}

// FromFEN parses a FEN (Forsyth-Edwards Notation) string into a Board.
// FEN format: <pieces> <active> <castling> <ep> <halfmove> <fullmove>
// Example: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
//
// Beyond FEN's own grammar, FromFEN enforces the position invariants every
// Board produced anywhere else in the package already satisfies by
// construction: exactly one king per color, and the side that just moved
// not left in check.
func FromFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return nil, malformed("FEN must have 6 parts, got %d", len(parts))
	}

	b := &Board{
		Squares:        [64]Piece{},
		ActiveColor:    White,
		CastlingRights: 0,
		EnPassantSq:    NoSquare,
		HalfMoveClock:  0,
		FullMoveNum:    1,
	}

	// Part 1: Piece placement (from rank 8 to rank 1)
	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return nil, malformed("FEN piece placement must have 8 ranks, got %d", len(ranks))
	}

	for rankIdx := 0; rankIdx < 8; rankIdx++ {
		rank := 7 - rankIdx // FEN starts from rank 8 (index 7)
		rankStr := ranks[rankIdx]
		file := 0

		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}

			if file > 7 {
				return nil, malformed("too many pieces in rank %d", rank+1)
			}

			var color Color
			if ch >= 'A' && ch <= 'Z' {
				color = White
			} else {
				color = Black
				ch = ch - 'a' + 'A'
			}

			var pieceType PieceType
			switch ch {
			case 'P':
				pieceType = Pawn
			case 'N':
				pieceType = Knight
			case 'B':
				pieceType = Bishop
			case 'R':
				pieceType = Rook
			case 'Q':
				pieceType = Queen
			case 'K':
				pieceType = King
			default:
				return nil, malformed("invalid piece character: %c", ch)
			}

			b.Squares[NewSquare(file, rank)] = NewPiece(color, pieceType)
			file++
		}

		if file != 8 {
			return nil, malformed("rank %d has %d squares, expected 8", rank+1, file)
		}
	}

	// Part 2: Active color
	switch parts[1] {
	case "w":
		b.ActiveColor = White
	case "b":
		b.ActiveColor = Black
	default:
		return nil, malformed("invalid active color: %s (expected 'w' or 'b')", parts[1])
	}

	// Part 3: Castling rights
	if parts[2] != "-" {
		for _, ch := range parts[2] {
			switch ch {
			case 'K':
				b.CastlingRights |= CastleWhiteKing
			case 'Q':
				b.CastlingRights |= CastleWhiteQueen
			case 'k':
				b.CastlingRights |= CastleBlackKing
			case 'q':
				b.CastlingRights |= CastleBlackQueen
			default:
				return nil, malformed("invalid castling character: %c", ch)
			}
		}
	}

	// Part 4: En passant square
	if parts[3] != "-" {
		if len(parts[3]) != 2 {
			return nil, malformed("invalid en passant square: %s", parts[3])
		}
		file := int(parts[3][0] - 'a')
		rank := int(parts[3][1] - '1')
		sq := NewSquare(file, rank)
		if sq == NoSquare {
			return nil, malformed("invalid en passant square: %s", parts[3])
		}
		wantRank := 5
		if b.ActiveColor == Black {
			wantRank = 2
		}
		if rank != wantRank {
			return nil, malformed("en passant square %s is not on the expected rank for %s to move", parts[3], b.ActiveColor)
		}
		b.EnPassantSq = sq
	}

	// Part 5: Half-move clock
	halfMove, err := strconv.Atoi(parts[4])
	if err != nil || halfMove < 0 || halfMove > 255 {
		return nil, malformed("invalid half-move clock: %s", parts[4])
	}
	b.HalfMoveClock = uint8(halfMove)

	// Part 6: Full move number
	fullMove, err := strconv.Atoi(parts[5])
	if err != nil || fullMove < 1 || fullMove > 65535 {
		return nil, malformed("invalid full move number: %s", parts[5])
	}
	b.FullMoveNum = uint16(fullMove)

	if err := b.validateInvariants(); err != nil {
		return nil, err
	}

	return b, nil
}

// ToFEN renders b in Forsyth-Edwards Notation.
func (b *Board) ToFEN() string {
	var out strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.Squares[NewSquare(file, rank)]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				out.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			out.WriteString(p.String())
		}
		if empty > 0 {
			out.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			out.WriteByte('/')
		}
	}

	out.WriteByte(' ')
	if b.ActiveColor == White {
		out.WriteByte('w')
	} else {
		out.WriteByte('b')
	}

	out.WriteByte(' ')
	if b.CastlingRights == 0 {
		out.WriteByte('-')
	} else {
		if b.CastlingRights&CastleWhiteKing != 0 {
			out.WriteByte('K')
		}
		if b.CastlingRights&CastleWhiteQueen != 0 {
			out.WriteByte('Q')
		}
		if b.CastlingRights&CastleBlackKing != 0 {
			out.WriteByte('k')
		}
		if b.CastlingRights&CastleBlackQueen != 0 {
			out.WriteByte('q')
		}
	}

	out.WriteByte(' ')
	if b.EnPassantSq == NoSquare {
		out.WriteByte('-')
	} else {
		out.WriteString(b.EnPassantSq.String())
	}

	fmt.Fprintf(&out, " %d %d", b.HalfMoveClock, b.FullMoveNum)

	return out.String()
}

// validateInvariants checks the two position invariants FEN's grammar does
// not itself enforce: exactly one king per color, and the side that just
// moved (the opponent of ActiveColor) not standing in check — a position
// only reaches the board this way by an illegal move having been made.
func (b *Board) validateInvariants() error {
	for _, c := range [2]Color{White, Black} {
		count := 0
		for sq := Square(0); sq < 64; sq++ {
			p := b.Squares[sq]
			if p.Type() == King && p.Color() == c {
				count++
			}
		}
		if count != 1 {
			return malformed("position has %d %s kings, expected exactly 1", count, c)
		}
	}

	justMoved := b.ActiveColor.Opponent()
	if b.IsSquareAttacked(b.KingSquare(justMoved), b.ActiveColor) {
		return malformed("%s is in check but it is %s to move", justMoved, b.ActiveColor)
	}

	b.CheckFlags = 0
	if b.IsSquareAttacked(b.KingSquare(White), Black) {
		b.CheckFlags |= WhiteInCheck
	}
	if b.IsSquareAttacked(b.KingSquare(Black), White) {
		b.CheckFlags |= BlackInCheck
	}

	return nil
}
