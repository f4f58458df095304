package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rgranath/plychess/internal/engine"
)

func TestEvaluate_StartingPositionIsBalanced(t *testing.T) {
	b, err := engine.FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, Score(0), Evaluate(b))
}

func TestEvaluate_MaterialFavorsWhiteWhenAhead(t *testing.T) {
	b, err := engine.FromFEN("4k3/8/8/8/8/8/8/RRRRKRRR w - - 0 1")
	assert.NoError(t, err)
	assert.Greater(t, Evaluate(b), Score(0))
}

func TestEvaluate_MaterialFavorsBlackWhenAhead(t *testing.T) {
	b, err := engine.FromFEN("rrrrkrrr/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Less(t, Evaluate(b), Score(0))
}

func TestEvaluate_CheckBonusAppliesToSideInCheck(t *testing.T) {
	// Same material (one black rook) in both positions; only whether the
	// rook actually checks the white king differs.
	inCheck, err := engine.FromFEN("7k/8/8/8/8/8/8/r3K3 w - - 0 1")
	assert.NoError(t, err)
	notInCheck, err := engine.FromFEN("r6k/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	assert.Less(t, Evaluate(inCheck), Evaluate(notInCheck))
}
