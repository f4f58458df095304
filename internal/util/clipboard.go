// Package util holds small platform-facing helpers shared by the CLI and
// TUI front ends that don't belong in internal/engine, internal/search, or
// internal/ui.
package util

import (
	"fmt"

	"golang.design/x/clipboard"
)

// CopyToClipboard writes text to the OS clipboard. It backs the CLI's
// --copy-fen flag: after each applied ply, cmd/plychess copies the
// position's FEN (engine.Board.ToFEN) here so it can be pasted elsewhere.
//
// clipboard.Init is safe to call on every invocation; it fails in
// headless environments (no X11/Wayland display, no CI desktop session),
// which the CLI treats as non-fatal best-effort rather than an I/O error.
func CopyToClipboard(text string) error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
