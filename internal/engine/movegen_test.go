package engine

import "testing"

func mustFEN(t *testing.T, fen string) *Board {
	t.Helper()
	b, err := FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q) failed: %v", fen, err)
	}
	return b
}

func TestLegalMoves_StartingPosition(t *testing.T) {
	b := mustFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	moves := b.LegalMoves()
	if len(moves) != 20 {
		t.Fatalf("starting position: got %d legal moves, want 20", len(moves))
	}
}

func TestLegalMoves_KingAndPawnEndgame(t *testing.T) {
	// White king a1, white pawn a2, black king a8: the king can only reach
	// b1/b2 (a2 is blocked by its own pawn), plus the pawn's single and
	// double push — 4 legal moves total.
	b := mustFEN(t, "k7/8/8/8/8/8/P7/K7 w - - 0 1")
	moves := b.LegalMoves()
	if len(moves) != 4 {
		t.Fatalf("K+P vs K: got %d legal moves, want 4", len(moves))
	}
}

func TestLegalMoves_CheckedKingCannotStayOnCheckingFile(t *testing.T) {
	// White king e1 in check from the black rook on e8, black king h8 (out
	// of the way): Ke1-e2 stays on the e-file and is illegal; the king's
	// other squares remain legal.
	b := mustFEN(t, "4r2k/8/8/8/8/8/8/4K3 w - - 0 1")
	for _, m := range b.LegalMoves() {
		if m.From == NewSquare(4, 0) && m.To == NewSquare(4, 1) {
			t.Fatalf("Ke1-e2 should be illegal while the rook on e8 checks along the e-file")
		}
	}
}

func TestLegalMoves_CastlingBothSides(t *testing.T) {
	b := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	var kingSide, queenSide bool
	for _, m := range b.LegalMoves() {
		if m.Kind == KingSideCastle {
			kingSide = true
		}
		if m.Kind == QueenSideCastle {
			queenSide = true
		}
	}
	if !kingSide || !queenSide {
		t.Fatalf("expected both castling moves for White, got kingSide=%v queenSide=%v", kingSide, queenSide)
	}

	b.ActiveColor = Black
	b.CheckFlags = 0
	var blackKingSide, blackQueenSide bool
	for _, m := range b.LegalMoves() {
		if m.Kind == KingSideCastle {
			blackKingSide = true
		}
		if m.Kind == QueenSideCastle {
			blackQueenSide = true
		}
	}
	if !blackKingSide || !blackQueenSide {
		t.Fatalf("expected both castling moves for Black, got kingSide=%v queenSide=%v", blackKingSide, blackQueenSide)
	}
}

func TestApply_EnPassantRemovesCapturedPawn(t *testing.T) {
	// White pawn e5, black just played d7-d5: e5xd6 en passant removes the
	// black pawn from d5, not d6.
	b := mustFEN(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	var epMove *Move
	for _, m := range b.LegalMoves() {
		if m.Kind == EnPassant {
			mv := m
			epMove = &mv
		}
	}
	if epMove == nil {
		t.Fatalf("expected an en passant move to be legal")
	}

	next := b.Copy()
	next.Apply(*epMove)

	if !next.PieceAt(NewSquare(4, 4)).IsEmpty() {
		t.Fatalf("expected the capturing pawn's origin square e5 to be vacated")
	}
	if !next.PieceAt(NewSquare(3, 4)).IsEmpty() {
		t.Fatalf("captured pawn on d5 should be removed by en passant capture")
	}
	if next.PieceAt(NewSquare(3, 5)).Type() != Pawn {
		t.Fatalf("expected the capturing pawn to land on d6")
	}
}

func TestLegalMoves_FoolsMateHasNoWhiteMoves(t *testing.T) {
	b := mustFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	moves := b.LegalMoves()
	if len(moves) != 0 {
		t.Fatalf("fool's mate: got %d legal moves for White, want 0", len(moves))
	}
	if !b.InCheck(White) {
		t.Fatalf("fool's mate: expected White in check")
	}
	if b.Status() != Checkmate {
		t.Fatalf("fool's mate: got status %v, want Checkmate", b.Status())
	}
}

func TestApply_PromotionProducesAllFourPieces(t *testing.T) {
	b := mustFEN(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	kinds := map[PieceType]bool{}
	for _, m := range b.LegalMoves() {
		if m.IsPromotion() {
			kinds[m.Promotion] = true
		}
	}
	for _, pt := range []PieceType{Queen, Rook, Bishop, Knight} {
		if !kinds[pt] {
			t.Errorf("expected a promotion successor to %v", pt)
		}
	}
}

func TestApply_CastlingMovesRook(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	var castle Move
	for _, m := range b.LegalMoves() {
		if m.Kind == QueenSideCastle {
			castle = m
		}
	}
	if castle.Kind != QueenSideCastle {
		t.Fatalf("expected a queenside castle to be legal")
	}

	next := b.Copy()
	next.Apply(castle)

	if next.PieceAt(NewSquare(3, 0)).Type() != Rook {
		t.Fatalf("expected rook to land on d1 after queenside castling")
	}
	if next.PieceAt(NewSquare(2, 0)).Type() != King {
		t.Fatalf("expected king to land on c1 after queenside castling")
	}
	if next.CastlingRights&CastleWhiteQueen != 0 {
		t.Fatalf("expected castling rights to clear after castling")
	}
}
