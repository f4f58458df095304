package search

import (
	"github.com/rgranath/plychess/internal/engine"
)

// checkBonus is the symmetric bonus Evaluate adds when a king stands in
// check — a cheap proxy for "this side is under pressure" that costs
// nothing beyond a CheckFlags read.
const checkBonus Score = 50

// Evaluate scores a position in centipawns from White's perspective:
// material sum, with checkBonus credited to the side giving check (that
// is, subtracted from whichever side is in check). No
// piece-square tables, mobility, or king-safety term — the teacher's
// positional evaluation is instructive prior art but outside what the
// static evaluator here is required to do.
func Evaluate(b *engine.Board) Score {
	var score Score
	for sq := engine.Square(0); sq < 64; sq++ {
		p := b.PieceAt(sq)
		if p.IsEmpty() {
			continue
		}
		v := Score(p.Type().Value())
		if p.Color() == engine.Black {
			v = -v
		}
		score += v
	}

	if b.InCheck(engine.White) {
		score -= checkBonus
	}
	if b.InCheck(engine.Black) {
		score += checkBonus
	}

	return score
}
