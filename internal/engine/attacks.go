package engine

// IsSquareAttacked is the threat detector (C3): it reports whether any
// piece of byColor could capture on sq on its next move, ignoring whether
// making that move would leave byColor's own king in check. The legal
// move generator uses it, with the mover's own king as the target, to
// discard moves that leave the mover in check; it is also used to
// recompute CheckFlags after every move.
//
// Per the separated design (single-step threats checked directly, sliding
// threats walked along rays), king/pawn/knight attacks are resolved with
// fixed offset tables and bishop/rook/queen attacks walk up to seven
// squares per ray, stopping at the first occupied square.
func (b *Board) IsSquareAttacked(sq Square, byColor Color) bool {
	if !sq.IsValid() {
		return false
	}
	return b.attackedByPawn(sq, byColor) ||
		b.attackedByKnight(sq, byColor) ||
		b.attackedByKing(sq, byColor) ||
		b.attackedBySlider(sq, byColor, diagonalDirs, Bishop) ||
		b.attackedBySlider(sq, byColor, orthogonalDirs, Rook)
}

// attackedByPawn checks the two squares a pawn of byColor would need to
// stand on to capture onto sq. A White pawn attacks diagonally forward
// (+1 rank); a Black pawn attacks diagonally backward (-1 rank) — so the
// attacker square is one rank *behind* sq from byColor's point of view.
func (b *Board) attackedByPawn(sq Square, byColor Color) bool {
	backRank := -1
	if byColor == Black {
		backRank = 1
	}
	for _, dFile := range [2]int{-1, 1} {
		if from, ok := sq.Offset(dFile, backRank); ok {
			p := b.Squares[from]
			if p.Type() == Pawn && p.Color() == byColor {
				return true
			}
		}
	}
	return false
}

func (b *Board) attackedByKnight(sq Square, byColor Color) bool {
	for _, o := range knightOffsets {
		if from, ok := sq.Offset(o[0], o[1]); ok {
			p := b.Squares[from]
			if p.Type() == Knight && p.Color() == byColor {
				return true
			}
		}
	}
	return false
}

func (b *Board) attackedByKing(sq Square, byColor Color) bool {
	for _, o := range kingOffsets {
		if from, ok := sq.Offset(o[0], o[1]); ok {
			p := b.Squares[from]
			if p.Type() == King && p.Color() == byColor {
				return true
			}
		}
	}
	return false
}

// attackedBySlider walks each of dirs up to seven steps from sq, looking
// for the first piece. If it belongs to byColor and is either a Queen or
// the given sliding kind, sq is attacked along that ray; any other piece
// (friend or foe) blocks the ray.
func (b *Board) attackedBySlider(sq Square, byColor Color, dirs [4][2]int, kind PieceType) bool {
	for _, d := range dirs {
		for dist := 1; dist <= 7; dist++ {
			next, ok := sq.Offset(d[0]*dist, d[1]*dist)
			if !ok {
				break
			}
			p := b.Squares[next]
			if p.IsEmpty() {
				continue
			}
			if p.Color() == byColor && (p.Type() == kind || p.Type() == Queen) {
				return true
			}
			break
		}
	}
	return false
}
