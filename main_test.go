package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestScoreCommand(t *testing.T) {
	out, _, err := execute(t, "", "score", "X", "X", "X", "X", "X", "X", "X", "X", "X", "XXX")
	require.NoError(t, err)
	assert.Contains(t, out, "Frame  1: 30\n")
	assert.Contains(t, out, "TOTAL: 300\n")
}

func TestScoreCommand_Rejected(t *testing.T) {
	out, errOut, err := execute(t, "", "score", "Q")
	assert.ErrorIs(t, err, errRejected)
	assert.NotContains(t, out, "TOTAL")
	assert.Contains(t, errOut, "Error: unrecognized char: Q")
}

func TestConsoleCommand(t *testing.T) {
	for _, args := range [][]string{{"console"}, {"--console"}} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			out, errOut, err := execute(t, "9- 9- 9- 9- 9- 9- 9- 9- 9- 9-\n", args...)
			require.NoError(t, err)
			assert.Contains(t, out, "Examples:")
			assert.Contains(t, out, "TOTAL: 90\n")
			assert.NotContains(t, errOut, "Error:")
		})
	}
}

func TestScoreCommand_NeedsArgs(t *testing.T) {
	_, _, err := execute(t, "", "score")
	assert.Error(t, err)
}
