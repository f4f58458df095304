package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/rgranath/plychess/internal/engine"
	"github.com/rgranath/plychess/internal/search"
)

// hostResultMsg wraps a search.HostResult as a tea.Msg so the engine's
// move can be applied from Update like any other event.
type hostResultMsg search.HostResult

// Model is a thin Bubble Tea front end over the same Board/Host loop the
// plain CLI drives: it does not reimplement move legality or search, only
// renders the position and forwards parsed moves to the board and the
// host. It intentionally does not reproduce the teacher's multi-screen
// menu/navigation/mouse/save-game state machine — the distilled spec's
// interactive loop is minimal, and so is this.
type Model struct {
	board      *engine.Board
	host       *search.Host
	engineSide engine.Color
	renderer   *BoardRenderer
	input      textinput.Model
	status     string
	err        string
	waiting    bool
}

// NewModel builds a Model that starts from board and has the host play
// engineSide.
func NewModel(board *engine.Board, host *search.Host, engineSide engine.Color, cfg Config) Model {
	ti := textinput.New()
	ti.Placeholder = "e2e4"
	ti.Focus()
	ti.CharLimit = 5

	return Model{
		board:      board,
		host:       host,
		engineSide: engineSide,
		renderer:   NewBoardRenderer(cfg),
		input:      ti,
	}
}

func (m Model) Init() tea.Cmd {
	if m.board.ActiveColor == m.engineSide {
		return m.requestEngineMove()
	}
	return textinput.Blink
}

func (m Model) requestEngineMove() tea.Cmd {
	m.host.Execute(m.board)
	return func() tea.Msg {
		return hostResultMsg(<-m.host.Results())
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.host.Close()
			return m, tea.Quit
		case tea.KeyEnter:
			return m.applyUserMove()
		}

	case hostResultMsg:
		m.waiting = false
		if msg.Cancelled || msg.Best == nil {
			m.err = "engine search was cancelled"
			return m, nil
		}
		m.board = msg.Best
		m.status = fmt.Sprintf("engine played %s (score %d, %d nodes)", msg.BestMove, msg.Score, msg.Nodes)
		if m.board.IsGameOver() || m.board.ActiveColor == m.engineSide {
			if m.board.IsGameOver() {
				return m, nil
			}
			return m, m.requestEngineMove()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) applyUserMove() (tea.Model, tea.Cmd) {
	if m.waiting || m.board.IsGameOver() || m.board.ActiveColor == m.engineSide {
		return m, nil
	}

	text := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	move, err := engine.ParseMove(text)
	if err != nil {
		m.err = err.Error()
		return m, nil
	}

	legal := false
	for _, candidate := range m.board.LegalMoves() {
		if candidate.From == move.From && candidate.To == move.To && candidate.Promotion == move.Promotion {
			move = candidate
			legal = true
			break
		}
	}
	if !legal {
		m.err = engine.ErrIllegalMove.Error()
		return m, nil
	}

	m.err = ""
	next := m.board.Copy()
	next.Apply(move)
	m.board = next
	m.status = fmt.Sprintf("you played %s", move)

	if m.board.IsGameOver() {
		return m, nil
	}
	if m.board.ActiveColor == m.engineSide {
		m.waiting = true
		return m, m.requestEngineMove()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderer.Render(m.board))
	b.WriteString("\n\n")

	if status := m.board.Status(); status != engine.Ongoing {
		fmt.Fprintf(&b, "%s\n", status)
	} else if m.waiting {
		b.WriteString("engine is thinking...\n")
	} else {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		fmt.Fprintf(&b, "%s\n", m.status)
	}
	if m.err != "" {
		fmt.Fprintf(&b, "error: %s\n", m.err)
	}
	b.WriteString("\nctrl-c or esc to quit\n")

	return b.String()
}
