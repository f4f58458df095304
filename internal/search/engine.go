// Package search implements the static evaluator, the depth-limited
// alpha-beta search driver, and the background engine host that the CLI
// and TUI front ends drive over a command/result channel pair.
package search

// MateScore exceeds the maximum possible material swing (two queens'
// worth and then some), so a mate score returned by AlphaBeta is never
// confused with a real material evaluation.
const MateScore Score = 1_000_000

// Score is a position evaluation in centipawns from White's perspective:
// positive favors White, negative favors Black.
type Score int32
