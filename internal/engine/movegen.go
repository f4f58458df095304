package engine

// LegalMoves is the move generator's contract (C4): it returns every move
// legal for ActiveColor in b. A move is legal iff it obeys its piece's
// movement rules, does not move through or onto a friendly piece, slides
// stop at the first blocker, and — checked here by constructing the
// candidate successor and consulting the threat detector — does not leave
// the mover's own king attacked. The result is empty iff the side to move
// has no legal move; the caller distinguishes checkmate from stalemate via
// InCheck.
func (b *Board) LegalMoves() []Move {
	mover := b.ActiveColor
	pseudo := b.pseudoLegalMoves()
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		next := b.Copy()
		next.Apply(m)
		if !next.IsSquareAttacked(next.KingSquare(mover), next.ActiveColor) {
			legal = append(legal, m)
		}
	}
	return legal
}

// Successors returns the full successor position for every legal move,
// built by applying each to a fresh copy of b. This is the direct
// equivalent of the distilled generate(position) -> []Position contract;
// LegalMoves is preferred internally (by search and tests that only need
// the move, not the resulting board) since it avoids copying boards that
// are discarded immediately.
func (b *Board) Successors() []*Board {
	moves := b.LegalMoves()
	out := make([]*Board, 0, len(moves))
	for _, m := range moves {
		next := b.Copy()
		next.Apply(m)
		out = append(out, next)
	}
	return out
}

// pseudoLegalMoves enumerates every move obeying each piece's movement
// rules and board occupancy, without checking whether it leaves the
// mover's king in check.
func (b *Board) pseudoLegalMoves() []Move {
	var moves []Move
	for sq := Square(0); sq < 64; sq++ {
		p := b.Squares[sq]
		if p.IsEmpty() || p.Color() != b.ActiveColor {
			continue
		}
		switch p.Type() {
		case Pawn:
			moves = append(moves, b.pawnMoves(sq)...)
		case Knight:
			moves = append(moves, b.stepMoves(sq, knightOffsets)...)
		case Bishop:
			moves = append(moves, b.slideMoves(sq, diagonalDirs)...)
		case Rook:
			moves = append(moves, b.slideMoves(sq, orthogonalDirs)...)
		case Queen:
			moves = append(moves, b.slideMoves(sq, diagonalDirs)...)
			moves = append(moves, b.slideMoves(sq, orthogonalDirs)...)
		case King:
			moves = append(moves, b.stepMoves(sq, kingOffsets)...)
			moves = append(moves, b.castlingMoves(sq)...)
		}
	}
	return moves
}

// stepMoves generates single-step moves (knight jumps, king steps) from sq
// using the given offset table: empty destination or enemy occupant only.
func (b *Board) stepMoves(sq Square, offsets [8][2]int) []Move {
	var moves []Move
	mover := b.Squares[sq]
	for _, o := range offsets {
		to, ok := sq.Offset(o[0], o[1])
		if !ok {
			continue
		}
		target := b.Squares[to]
		if target.IsEmpty() {
			moves = append(moves, Move{From: sq, To: to, Kind: Normal})
		} else if target.Color() != mover.Color() {
			moves = append(moves, Move{From: sq, To: to, Kind: Capture, Captured: target})
		}
	}
	return moves
}

// slideMoves generates sliding moves (bishop/rook/queen) along dirs, up to
// seven squares each way, stopping one square before a friendly piece and
// on (including) the first enemy piece.
func (b *Board) slideMoves(sq Square, dirs [4][2]int) []Move {
	var moves []Move
	mover := b.Squares[sq]
	for _, d := range dirs {
		for dist := 1; dist <= 7; dist++ {
			to, ok := sq.Offset(d[0]*dist, d[1]*dist)
			if !ok {
				break
			}
			target := b.Squares[to]
			if target.IsEmpty() {
				moves = append(moves, Move{From: sq, To: to, Kind: Normal})
				continue
			}
			if target.Color() != mover.Color() {
				moves = append(moves, Move{From: sq, To: to, Kind: Capture, Captured: target})
			}
			break
		}
	}
	return moves
}

// promotionPieces is the fixed order promotion successors are generated
// in: Queen, Rook, Bishop, Knight.
var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

// promotionMoves generates the four promotion successors for a pawn
// reaching the back rank — the resolution of the distilled spec's open
// question on promotion (option (b): always promote, to all four pieces).
func promotionMoves(from, to Square, kind MoveType, captured Piece) []Move {
	moves := make([]Move, len(promotionPieces))
	for i, pt := range promotionPieces {
		moves[i] = Move{From: from, To: to, Promotion: pt, Kind: kind, Captured: captured}
	}
	return moves
}

// pawnMoves generates one/two-step pushes, diagonal captures, en passant,
// and promotion for the pawn on sq.
func (b *Board) pawnMoves(sq Square) []Move {
	var moves []Move
	color := b.Squares[sq].Color()

	dir, startRank, promoRank := 1, 1, 7
	if color == Black {
		dir, startRank, promoRank = -1, 6, 0
	}

	if to, ok := sq.Offset(0, dir); ok && b.Squares[to].IsEmpty() {
		if to.Rank() == promoRank {
			moves = append(moves, promotionMoves(sq, to, Promotion, Piece(Empty))...)
		} else {
			moves = append(moves, Move{From: sq, To: to, Kind: Normal})
		}
		if sq.Rank() == startRank {
			if to2, ok2 := sq.Offset(0, 2*dir); ok2 && b.Squares[to2].IsEmpty() {
				moves = append(moves, Move{From: sq, To: to2, Kind: DoublePawnPush})
			}
		}
	}

	for _, dFile := range [2]int{-1, 1} {
		to, ok := sq.Offset(dFile, dir)
		if !ok {
			continue
		}
		target := b.Squares[to]
		switch {
		case !target.IsEmpty() && target.Color() != color:
			if to.Rank() == promoRank {
				moves = append(moves, promotionMoves(sq, to, CapturePromotion, target)...)
			} else {
				moves = append(moves, Move{From: sq, To: to, Kind: Capture, Captured: target})
			}
		case target.IsEmpty() && to == b.EnPassantSq && b.EnPassantSq != NoSquare:
			capturedSq := NewSquare(to.File(), sq.Rank())
			moves = append(moves, Move{From: sq, To: to, Kind: EnPassant, Captured: b.Squares[capturedSq]})
		}
	}

	return moves
}

// castlingMoves generates the (at most two) castling moves available to
// the king on kingSq, per the distilled spec's requirements: the right
// must be set, the squares between king and rook empty, the king not
// currently in check, and the squares the king passes over and lands on
// not attacked. Queenside additionally requires the b-file square empty
// (but it need not be unattacked, since the king never stands on it).
func (b *Board) castlingMoves(kingSq Square) []Move {
	var moves []Move
	color := b.Squares[kingSq].Color()
	rank := 0
	if color == Black {
		rank = 7
	}
	opponent := color.Opponent()

	kingRight, queenRight := CastleWhiteKing, CastleWhiteQueen
	if color == Black {
		kingRight, queenRight = CastleBlackKing, CastleBlackQueen
	}

	if b.CastlingRights&kingRight != 0 {
		f, g := NewSquare(5, rank), NewSquare(6, rank)
		if b.Squares[f].IsEmpty() && b.Squares[g].IsEmpty() &&
			!b.IsSquareAttacked(kingSq, opponent) &&
			!b.IsSquareAttacked(f, opponent) &&
			!b.IsSquareAttacked(g, opponent) {
			moves = append(moves, Move{From: kingSq, To: g, Kind: KingSideCastle})
		}
	}
	if b.CastlingRights&queenRight != 0 {
		d, c, bf := NewSquare(3, rank), NewSquare(2, rank), NewSquare(1, rank)
		if b.Squares[d].IsEmpty() && b.Squares[c].IsEmpty() && b.Squares[bf].IsEmpty() &&
			!b.IsSquareAttacked(kingSq, opponent) &&
			!b.IsSquareAttacked(d, opponent) &&
			!b.IsSquareAttacked(c, opponent) {
			moves = append(moves, Move{From: kingSq, To: c, Kind: QueenSideCastle})
		}
	}
	return moves
}

// Apply plays m on b in place: the caller is expected to have copied b
// first (LegalMoves and Successors always do). This is the make-move
// procedure of the distilled spec's §4.3: place the mover, apply the
// move-kind's side effect, update castling rights and the en-passant
// target, flip ActiveColor, and recompute CheckFlags.
func (b *Board) Apply(m Move) {
	mover := b.Squares[m.From]

	switch m.Kind {
	case EnPassant:
		capturedSq := NewSquare(m.To.File(), m.From.Rank())
		b.Squares[capturedSq] = Piece(Empty)
		b.Squares[m.To] = mover
		b.Squares[m.From] = Piece(Empty)
	case KingSideCastle, QueenSideCastle:
		b.Squares[m.To] = mover
		b.Squares[m.From] = Piece(Empty)
		rank := m.From.Rank()
		rookFromFile, rookToFile := 7, 5
		if m.Kind == QueenSideCastle {
			rookFromFile, rookToFile = 0, 3
		}
		rookFrom, rookTo := NewSquare(rookFromFile, rank), NewSquare(rookToFile, rank)
		b.Squares[rookTo] = b.Squares[rookFrom]
		b.Squares[rookFrom] = Piece(Empty)
	default:
		placed := mover
		if m.IsPromotion() {
			placed = NewPiece(mover.Color(), m.Promotion)
		}
		b.Squares[m.To] = placed
		b.Squares[m.From] = Piece(Empty)
	}

	b.EnPassantSq = NoSquare
	if m.Kind == DoublePawnPush {
		dir := 1
		if mover.Color() == Black {
			dir = -1
		}
		if epSq, ok := m.From.Offset(0, dir); ok {
			b.EnPassantSq = epSq
		}
	}

	b.updateCastlingRights(m, mover)

	if mover.Type() == Pawn || m.IsCapture() {
		b.HalfMoveClock = 0
	} else {
		b.HalfMoveClock++
	}
	if b.ActiveColor == Black {
		b.FullMoveNum++
	}

	b.ActiveColor = b.ActiveColor.Opponent()

	b.CheckFlags = 0
	if b.IsSquareAttacked(b.KingSquare(White), Black) {
		b.CheckFlags |= WhiteInCheck
	}
	if b.IsSquareAttacked(b.KingSquare(Black), White) {
		b.CheckFlags |= BlackInCheck
	}
}

// updateCastlingRights clears rights made stale by m: any king move clears
// both of that color's rights, and a rook moving from or being captured on
// one of the four starting corner squares clears the matching right.
func (b *Board) updateCastlingRights(m Move, mover Piece) {
	if mover.Type() == King {
		if mover.Color() == White {
			b.CastlingRights &^= CastleWhiteKing | CastleWhiteQueen
		} else {
			b.CastlingRights &^= CastleBlackKing | CastleBlackQueen
		}
	}
	clearCorner := func(sq Square) {
		switch sq {
		case NewSquare(0, 0):
			b.CastlingRights &^= CastleWhiteQueen
		case NewSquare(7, 0):
			b.CastlingRights &^= CastleWhiteKing
		case NewSquare(0, 7):
			b.CastlingRights &^= CastleBlackQueen
		case NewSquare(7, 7):
			b.CastlingRights &^= CastleBlackKing
		}
	}
	clearCorner(m.From)
	clearCorner(m.To)
}
