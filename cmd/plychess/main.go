// Command plychess is a terminal chess interface: it loads a starting
// position (the standard opening, or a FEN file via -f), then alternates
// between the search engine and standard input until the game ends.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgranath/plychess/internal/config"
	"github.com/rgranath/plychess/internal/engine"
	"github.com/rgranath/plychess/internal/search"
	"github.com/rgranath/plychess/internal/ui"
	"github.com/rgranath/plychess/internal/util"
	"github.com/rgranath/plychess/internal/version"
)

// Exit codes, per the error-kind taxonomy: InvalidArgument=2, IOError=1,
// MalformedPosition and InternalError=3, success=0.
const (
	exitOK                = 0
	exitIOError           = 1
	exitInvalidArgument   = 2
	exitMalformedPosition = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("plychess", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var file string
	fs.StringVar(&file, "f", "", "path to a FEN starting position (default: standard opening)")
	fs.StringVar(&file, "file", "", "path to a FEN starting position (default: standard opening)")

	var color string
	fs.StringVar(&color, "c", "b", "color the engine plays: w or b")
	fs.StringVar(&color, "color", "b", "color the engine plays: w or b")

	depth := fs.Int("depth", search.DefaultDepth, "search depth, in plies")
	copyFEN := fs.Bool("copy-fen", false, "copy the position's FEN to the clipboard after each ply")
	useTUI := fs.Bool("tui", false, "launch the Bubble Tea interface instead of the plain stdin loop")
	showVersion := fs.Bool("version", false, "print version information and exit")

	if err := fs.Parse(args); err != nil {
		return exitInvalidArgument
	}

	if *showVersion {
		fmt.Printf("plychess %s (%s, %s)\n", version.Version, version.GitCommit, version.BuildDate)
		return exitOK
	}

	engineSide, err := parseColor(color)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitInvalidArgument
	}

	board, err := loadStartingPosition(file)
	if err != nil {
		if _, ok := err.(*engine.MalformedPositionError); ok {
			fmt.Fprintln(os.Stderr, "malformed starting position:", err)
			return exitMalformedPosition
		}
		fmt.Fprintln(os.Stderr, "error reading starting position:", err)
		return exitIOError
	}

	cfg := config.LoadConfig()
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "depth" {
			cfg.SearchDepth = *depth
		}
	})

	host, err := search.NewHost(search.WithDepth(cfg.SearchDepth), search.WithTimeBudget(cfg.HostTimeBudget))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error starting engine host:", err)
		return exitInvalidArgument
	}
	defer host.Close()

	uiCfg := ui.Config{ShowCoords: cfg.ShowCoords, UseColors: cfg.UseColors, Theme: ui.ParseThemeName(cfg.Theme)}

	if *useTUI {
		model := ui.NewModel(board, host, engineSide, uiCfg)
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return exitIOError
		}
		return exitOK
	}

	return interactiveLoop(board, host, engineSide, uiCfg, *copyFEN)
}

func parseColor(s string) (engine.Color, error) {
	switch strings.ToLower(s) {
	case "w", "white":
		return engine.White, nil
	case "b", "black":
		return engine.Black, nil
	default:
		return 0, fmt.Errorf("invalid -c/--color %q: expected w or b", s)
	}
}

func loadStartingPosition(path string) (*engine.Board, error) {
	if path == "" {
		return engine.FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return engine.FromFEN(strings.TrimSpace(string(data)))
}

// interactiveLoop is distilled spec §6's collaborator, literally: while the
// game is not over, if it is the engine's turn, call the search host and
// apply the returned successor; otherwise read a move from standard
// input and apply it if legal.
func interactiveLoop(board *engine.Board, host *search.Host, engineSide engine.Color, uiCfg ui.Config, copyFEN bool) int {
	renderer := ui.NewBoardRenderer(uiCfg)
	stdin := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println(renderer.Render(board))

		if status := board.Status(); status != engine.Ongoing {
			fmt.Println(status)
			return exitOK
		}

		var next *engine.Board
		var moveStr string

		if board.ActiveColor == engineSide {
			host.Execute(board)
			result := <-host.Results()
			if result.Best == nil {
				// The loop only reaches here when board.Status() is Ongoing,
				// which guarantees at least one legal move; a nil result
				// means the search driver violated that invariant.
				fmt.Fprintln(os.Stderr, "internal error: engine host returned no move for a position with legal moves")
				return exitMalformedPosition
			}
			next = result.Best
			moveStr = result.BestMove.String()
			fmt.Printf("engine plays %s (score %d, %d nodes)\n", moveStr, result.Score, result.Nodes)
		} else {
			fmt.Print("your move: ")
			if !stdin.Scan() {
				if err := stdin.Err(); err != nil {
					fmt.Fprintln(os.Stderr, "error reading input:", err)
					return exitIOError
				}
				fmt.Fprintln(os.Stderr, "input closed unexpectedly")
				return exitIOError
			}

			move, err := engine.ParseMove(strings.TrimSpace(stdin.Text()))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}

			legal := false
			for _, candidate := range board.LegalMoves() {
				if candidate.From == move.From && candidate.To == move.To && candidate.Promotion == move.Promotion {
					move = candidate
					legal = true
					break
				}
			}
			if !legal {
				fmt.Fprintln(os.Stderr, engine.ErrIllegalMove)
				continue
			}

			next = board.Copy()
			next.Apply(move)
			moveStr = move.String()
			fmt.Println(moveStr)
		}

		board = next

		if copyFEN {
			// best-effort; failures (e.g. a headless environment with no
			// clipboard) are not fatal to the game loop.
			_ = util.CopyToClipboard(board.ToFEN())
		}
	}
}
