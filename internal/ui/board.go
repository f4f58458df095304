package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rgranath/plychess/internal/engine"
)

// BoardRenderer renders a position to a plain-text, ANSI-colorable grid:
// ranks 8 down to 1 top to bottom, files a through h left to right.
type BoardRenderer struct {
	config Config
	theme  Theme
	color  bool
}

// NewBoardRenderer builds a BoardRenderer from config. Coloring is only
// ever enabled when config.UseColors is set AND the terminal itself
// (detected via termenv, os.Stdout) reports support for ANSI colors;
// config.UseColors alone cannot force color onto a terminal that doesn't
// support it.
func NewBoardRenderer(config Config) *BoardRenderer {
	profile := termenv.NewOutput(os.Stdout).Profile
	return &BoardRenderer{
		config: config,
		theme:  GetTheme(config.Theme),
		color:  config.UseColors && profile != termenv.Ascii,
	}
}

// Render renders b as a string, or a placeholder message if b is nil.
func (r *BoardRenderer) Render(b *engine.Board) string {
	if b == nil {
		return "No board available"
	}

	var out strings.Builder

	for rank := 7; rank >= 0; rank-- {
		if r.config.ShowCoords {
			fmt.Fprintf(&out, "%d ", rank+1)
		}
		for file := 0; file < 8; file++ {
			if file > 0 {
				out.WriteString(" ")
			}
			out.WriteString(r.pieceSymbol(b.PieceAt(engine.NewSquare(file, rank))))
		}
		out.WriteString("\n")
	}

	if r.config.ShowCoords {
		out.WriteString("  a b c d e f g h")
	}

	return out.String()
}

// pieceSymbol returns the (optionally colored) ASCII symbol for p.
func (r *BoardRenderer) pieceSymbol(p engine.Piece) string {
	symbol := p.String()
	if p.IsEmpty() || !r.color {
		return symbol
	}

	c := r.theme.BlackPiece
	if p.Color() == engine.White {
		c = r.theme.WhitePiece
	}
	return lipgloss.NewStyle().Foreground(c).Render(symbol)
}
