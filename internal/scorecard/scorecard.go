// internal/scorecard/scorecard.go
//
// Wires the notation parser to a fresh scoring engine.
// This is the single step every front-end goes through: a line in, a filled
// score table (or the core error, unchanged) out.

package scorecard

import (
	"errors"

	"github.com/robalobadob/bowling/internal/game"
	"github.com/robalobadob/bowling/internal/notation"
)

// Result is the outcome of scoring one line.
type Result struct {
	GameID string `json:"gameId"` // ID of the game built for this line
	Rolls  []int  `json:"rolls"`
	Frames []int  `json:"frames"` // cumulative score through each of the ten frames
	Total  int    `json:"total"`  // same as Frames[9]
}

// Build parses line and records every roll into a new game.
// Errors are *notation.ParseError or *game.RangeError, returned as-is.
func Build(line string) (*game.Game, error) {
	rolls, err := notation.Parse(line)
	if err != nil {
		return nil, err
	}
	g := game.New()
	for _, r := range rolls {
		if err := g.Record(r); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Compute builds a game from line and reads out its frame scores.
// When the line parses but cannot be scored, the returned Result still
// carries the GameID so the rejection can be correlated.
func Compute(line string) (Result, error) {
	g, err := Build(line)
	if err != nil {
		return Result{}, err
	}
	frames, err := g.FrameScores()
	if err != nil {
		return Result{GameID: g.ID}, err
	}
	return Result{GameID: g.ID, Rolls: g.Rolls(), Frames: frames, Total: frames[len(frames)-1]}, nil
}

// Kind classifies a Compute error for front-ends: "parse", "range", "scoring",
// or "" for anything else.
func Kind(err error) string {
	switch {
	case errors.Is(err, notation.ErrParse):
		return "parse"
	case errors.Is(err, game.ErrPinsOutOfRange):
		return "range"
	case errors.Is(err, game.ErrInsufficientRolls):
		return "scoring"
	}
	return ""
}
