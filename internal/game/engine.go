// internal/game/engine.go
//
// Core scoring engine for a single bowling game.
// Responsibilities:
//   - Record rolls one at a time, rejecting pin counts outside [0, 10].
//   - Walk the flat roll sequence frame by frame and produce the ten
//     cumulative scores, reading strike/spare bonus rolls by lookahead.
//
// Notes:
//   - Frames are never stored; they fall out of the cursor walk.
//   - The engine does not check that two rolls in one frame sum to at most 10.
//   - A lookahead past the recorded rolls is a ScoringError, never a zero.
package game

import (
	"crypto/rand"
	"encoding/hex"
)

// New constructs an empty game.
func New() *Game {
	return &Game{ID: randomID()}
}

// Record appends one roll.
// Returns a *RangeError (and leaves the game unchanged) when pins is outside [0, 10].
func (g *Game) Record(pins int) error {
	if pins < 0 || pins > Pins {
		return &RangeError{Pins: pins}
	}
	g.rolls = append(g.rolls, pins)
	return nil
}

// Rolls returns a copy of the recorded rolls.
func (g *Game) Rolls() []int {
	out := make([]int, len(g.rolls))
	copy(out, g.rolls)
	return out
}

// FrameScores returns the running total through each of the ten frames.
//
// For each frame, starting with the cursor at the first roll:
//   - strike (roll == 10): 10 + next two rolls; cursor advances 1.
//   - spare (two rolls sum to 10): 10 + the roll after; cursor advances 2.
//   - open: sum of the two rolls; cursor advances 2.
//
// The result is a fresh slice; calling FrameScores does not change the game.
func (g *Game) FrameScores() ([]int, error) {
	cumul := make([]int, Frames)
	cursor, running := 0, 0

	for frame := 0; frame < Frames; frame++ {
		w := walker{rolls: g.rolls, frame: frame + 1}

		first := w.at(cursor)
		var score int
		switch {
		case first == Pins:
			score = Pins + w.at(cursor+1) + w.at(cursor+2)
			cursor++
		case first+w.at(cursor+1) == Pins:
			score = Pins + w.at(cursor+2)
			cursor += 2
		default:
			score = first + w.at(cursor+1)
			cursor += 2
		}
		if w.err != nil {
			return nil, w.err
		}

		running += score
		cumul[frame] = running
	}
	return cumul, nil
}

// walker reads rolls for one frame and remembers the first missing index.
type walker struct {
	rolls []int
	frame int
	err   *ScoringError
}

// at returns rolls[i], or 0 after recording a ScoringError when i is past the end.
// The zero is never used: FrameScores checks err before accumulating.
func (w *walker) at(i int) int {
	if i < len(w.rolls) {
		return w.rolls[i]
	}
	if w.err == nil {
		w.err = &ScoringError{Frame: w.frame, Index: i, Recorded: len(w.rolls)}
	}
	return 0
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
