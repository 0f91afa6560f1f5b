package scorecard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/bowling/internal/game"
	"github.com/robalobadob/bowling/internal/notation"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		frames []int
	}{
		{
			name:   "perfect game notation",
			line:   "X X X X X X X X X XXX",
			frames: []int{30, 60, 90, 120, 150, 180, 210, 240, 270, 300},
		},
		{
			name:   "perfect game integers",
			line:   "10 10 10 10 10 10 10 10 10 10 10 10",
			frames: []int{30, 60, 90, 120, 150, 180, 210, 240, 270, 300},
		},
		{
			name:   "all spares",
			line:   "5/ 5/ 5/ 5/ 5/ 5/ 5/ 5/ 5/ 5/5",
			frames: []int{15, 30, 45, 60, 75, 90, 105, 120, 135, 150},
		},
		{
			name:   "nine and a miss",
			line:   "9- 9- 9- 9- 9- 9- 9- 9- 9- 9-",
			frames: []int{9, 18, 27, 36, 45, 54, 63, 72, 81, 90},
		},
		{
			name:   "mixed game",
			line:   "X 7/ 9- X -8 8/ -6 X X X81",
			frames: []int{20, 39, 48, 66, 74, 84, 90, 120, 148, 167},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compute(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.frames, res.Frames)
			assert.Equal(t, tt.frames[9], res.Total)
			assert.NotEmpty(t, res.Rolls)
			assert.Len(t, res.GameID, 16)
		})
	}
}

func TestCompute_EncodingsAgree(t *testing.T) {
	a, err := Compute("X 7/ 9- X -8 8/ -6 X X X81")
	require.NoError(t, err)
	b, err := Compute("10 7 3 9 0 10 0 8 8 2 0 6 10 10 10 8 1")
	require.NoError(t, err)
	assert.Equal(t, a.Rolls, b.Rolls)
	assert.Equal(t, a.Frames, b.Frames)
	assert.Equal(t, a.Total, b.Total)
	assert.NotEqual(t, a.GameID, b.GameID, "each line gets its own game")
}

func TestCompute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantKind string
		wantMsg  string
		target   any
		built    bool // the line parsed, so a game exists
	}{
		{name: "unrecognized char", line: "Q", wantKind: "parse", wantMsg: "unrecognized char: Q", target: new(*notation.ParseError)},
		{name: "misplaced spare", line: "X/", wantKind: "parse", wantMsg: "spare '/' without a valid previous roll", target: new(*notation.ParseError)},
		{name: "pins above ten", line: "11 0", wantKind: "range", wantMsg: "invalid pins: 11", target: new(*game.RangeError)},
		{name: "incomplete game", line: "X X X", wantKind: "scoring", target: new(*game.ScoringError), built: true},
		{name: "empty line", line: "", wantKind: "scoring", target: new(*game.ScoringError), built: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compute(tt.line)
			require.Error(t, err)
			assert.Nil(t, res.Frames)
			assert.Nil(t, res.Rolls)
			assert.Zero(t, res.Total)
			if tt.built {
				assert.Len(t, res.GameID, 16)
			} else {
				assert.Empty(t, res.GameID)
			}
			assert.True(t, errors.As(err, tt.target))
			assert.Equal(t, tt.wantKind, Kind(err))
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}

func TestBuild_StopsAtFirstBadRoll(t *testing.T) {
	g, err := Build("3 4 12 5")
	assert.Nil(t, g)
	var rangeErr *game.RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 12, rangeErr.Pins)
}

func TestKind_Unknown(t *testing.T) {
	assert.Equal(t, "", Kind(errors.New("boom")))
	assert.Equal(t, "", Kind(nil))
}
