package engine

import "testing"

func TestStatus_OngoingAtStart(t *testing.T) {
	b := mustFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if b.Status() != Ongoing {
		t.Errorf("status = %v, want Ongoing", b.Status())
	}
	if b.IsGameOver() {
		t.Errorf("expected the starting position not to be game over")
	}
}

func TestStatus_Checkmate(t *testing.T) {
	b := mustFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if b.Status() != Checkmate {
		t.Fatalf("status = %v, want Checkmate", b.Status())
	}
	winner, ok := b.Winner()
	if !ok || winner != Black {
		t.Errorf("Winner() = (%v, %v), want (Black, true)", winner, ok)
	}
}

func TestStatus_Stalemate(t *testing.T) {
	// Classic stalemate: Black king a8, white queen b6, Black to move. The
	// king has no legal move and is not in check.
	b := mustFEN(t, "k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	if b.Status() != Stalemate {
		t.Fatalf("status = %v, want Stalemate", b.Status())
	}
	_, ok := b.Winner()
	if ok {
		t.Errorf("expected no winner in a stalemate")
	}
}

func TestGameStatus_String(t *testing.T) {
	cases := map[GameStatus]string{
		Ongoing:   "ongoing",
		Checkmate: "checkmate",
		Stalemate: "stalemate",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("GameStatus(%d).String() = %q, want %q", status, got, want)
		}
	}
}
