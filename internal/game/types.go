// internal/game/types.go
//
// Core type definitions for the bowling scoring engine.
// Defines:
//   - Game: the recorded rolls of a single game.
//   - RangeError / ScoringError: rejections raised by Record and FrameScores.

package game

import (
	"errors"
	"fmt"
)

const (
	// Frames is the number of frames in a ten-pin game.
	Frames = 10
	// Pins is the number of pins standing at the start of a frame.
	Pins = 10
	// MaxRolls is the most rolls a legal game can record (9 open frames + 3 in the tenth).
	MaxRolls = 21
)

// Sentinel errors, matched with errors.Is.
var (
	ErrPinsOutOfRange    = errors.New("pins out of range")
	ErrInsufficientRolls = errors.New("insufficient rolls recorded")
)

// Game holds the rolls recorded for one game, in order.
// A Game is owned by a single caller and is not safe for concurrent use.
type Game struct {
	ID    string // Random hex identifier, useful for correlating log lines.
	rolls []int  // Append-only; every value is in [0, Pins].
}

// RangeError reports a pin count outside [0, 10] passed to Record.
type RangeError struct {
	Pins int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid pins: %d", e.Pins)
}

func (e *RangeError) Unwrap() error { return ErrPinsOutOfRange }

// ScoringError reports a strike/spare lookahead (or a plain frame) that needs
// a roll which was never recorded.
type ScoringError struct {
	Frame    int // 1-based frame being scored.
	Index    int // 0-based roll index that was missing.
	Recorded int // number of rolls actually recorded.
}

func (e *ScoringError) Error() string {
	return fmt.Sprintf("insufficient rolls recorded: frame %d needs roll %d, only %d recorded",
		e.Frame, e.Index+1, e.Recorded)
}

func (e *ScoringError) Unwrap() error { return ErrInsufficientRolls }
