package search

import (
	"sync/atomic"
	"time"

	"github.com/rgranath/plychess/internal/engine"
)

// HostResult is what a Host emits for each Execute command, in the same
// order the commands were issued.
type HostResult struct {
	Best      *engine.Board
	BestMove  engine.Move
	Score     Score
	Nodes     uint64
	Cancelled bool
}

// hostCommand is the Host worker's single inbox message type: either a
// position to search (board set) or a shutdown request from Close (stop
// true).
type hostCommand struct {
	board *engine.Board
	stop  bool
}

// Host runs one background goroutine that reads positions to search from a
// command channel and writes results to a result channel — the distilled
// spec's single-producer single-consumer command-channel model. Execute
// and Stop are the two command kinds; a Stop does not cancel a specific
// search, it sets a cooperative flag the worker's current root search
// polls between root-level successors (the worker clears the flag before
// each new search, so later searches are unaffected). If
// timeBudget is non-zero, the same flag is set automatically once that
// much wall-clock time has elapsed since the search began, so a long
// search yields whatever it found at the root rather than running
// unbounded.
type Host struct {
	depth      int
	timeBudget time.Duration
	cmd        chan hostCommand
	result     chan HostResult
	done       chan struct{}
	stopSig    atomic.Bool
}

// NewHost starts a Host's worker goroutine and returns it ready to accept
// Execute commands.
func NewHost(opts ...HostOption) (*Host, error) {
	cfg := defaultHostConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	h := &Host{
		depth:      cfg.depth,
		timeBudget: cfg.timeBudget,
		cmd:        make(chan hostCommand, 1),
		result:     make(chan HostResult, cfg.resultQueue),
		done:       make(chan struct{}),
	}
	go h.run()
	return h, nil
}

// Execute queues b for search; the corresponding HostResult arrives on
// Results() in the same order Execute was called, FIFO with every other
// queued Execute.
func (h *Host) Execute(b *engine.Board) {
	h.cmd <- hostCommand{board: b}
}

// Stop requests that the search in progress abandon remaining root moves
// and report what it found so far; searches not yet started are not
// affected. It is not
// targeted at a specific Execute call: the worker clears the flag itself
// before starting each new search, so Stop only affects whichever search
// is current at the moment it is observed.
func (h *Host) Stop() {
	h.stopSig.Store(true)
}

// Results returns the channel Host writes HostResult values to.
func (h *Host) Results() <-chan HostResult {
	return h.result
}

// Close requests the worker shut down and blocks until it exits, then
// closes both channels. Close is idempotent.
func (h *Host) Close() {
	select {
	case <-h.done:
		return
	default:
	}
	h.cmd <- hostCommand{stop: true}
	<-h.done
	close(h.cmd)
}

func (h *Host) run() {
	defer close(h.result)
	defer close(h.done)

	for c := range h.cmd {
		if c.stop {
			return
		}

		h.stopSig.Store(false)
		cancelled := false

		var budget *time.Timer
		if h.timeBudget > 0 {
			budget = time.AfterFunc(h.timeBudget, func() { h.stopSig.Store(true) })
		}

		best, move, score, nodes := rootSearch(c.board, h.depth, func() bool {
			if h.stopSig.Load() {
				cancelled = true
				return true
			}
			return false
		})

		if budget != nil {
			budget.Stop()
		}

		h.result <- HostResult{
			Best:      best,
			BestMove:  move,
			Score:     score,
			Nodes:     nodes,
			Cancelled: cancelled,
		}
	}
}
