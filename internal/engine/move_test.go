package engine

import "testing"

func TestParseMove_Basic(t *testing.T) {
	m, err := ParseMove("e2e4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.From != NewSquare(4, 1) || m.To != NewSquare(4, 3) {
		t.Errorf("ParseMove(e2e4) = %+v", m)
	}
	if m.Promotion != Empty {
		t.Errorf("expected no promotion piece")
	}
}

func TestParseMove_Promotion(t *testing.T) {
	m, err := ParseMove("a7a8q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Promotion != Queen {
		t.Errorf("expected promotion to queen, got %v", m.Promotion)
	}
	if got := m.String(); got != "a7a8q" {
		t.Errorf("String() = %q, want %q", got, "a7a8q")
	}
}

func TestParseMove_RejectsBadInput(t *testing.T) {
	cases := []string{"", "e2", "e2e4q5", "z2e4", "e2z4", "e2e4x"}
	for _, s := range cases {
		if _, err := ParseMove(s); err == nil {
			t.Errorf("ParseMove(%q) should have failed", s)
		}
	}
}

func TestMove_IsCaptureAndIsPromotion(t *testing.T) {
	normal := Move{Kind: Normal}
	if normal.IsCapture() || normal.IsPromotion() {
		t.Errorf("a normal move should be neither a capture nor a promotion")
	}

	capture := Move{Kind: Capture}
	if !capture.IsCapture() {
		t.Errorf("expected Capture to report IsCapture")
	}

	ep := Move{Kind: EnPassant}
	if !ep.IsCapture() {
		t.Errorf("expected EnPassant to report IsCapture")
	}

	promo := Move{Kind: Promotion, Promotion: Queen}
	if !promo.IsPromotion() {
		t.Errorf("expected Promotion to report IsPromotion")
	}

	capPromo := Move{Kind: CapturePromotion, Promotion: Queen}
	if !capPromo.IsPromotion() || !capPromo.IsCapture() {
		t.Errorf("expected CapturePromotion to report both IsPromotion and IsCapture")
	}
}
