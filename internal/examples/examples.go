// internal/examples/examples.go
//
// Hint lines shown to the user by the console and the form page.
//
// Loading behavior (Load):
//   1. If a path is given (EXAMPLES_FILE), read "<label>|<line>" entries from it.
//   2. Otherwise fall back to the embedded assets/examples.txt.
//
// Entries whose line does not score as a complete game are dropped, so a hint
// never shows the user something that would be rejected.

package examples

import (
	"errors"
	"os"
	"strings"

	"github.com/robalobadob/bowling/assets"
	"github.com/robalobadob/bowling/internal/scorecard"
)

// Example is one hint: a label ("Notation", "Integers") and the line itself.
type Example struct {
	Label string `json:"label"`
	Line  string `json:"line"`
}

// Load returns the hint list from path, or the embedded defaults when path is empty.
// Returns an error if the resulting list is empty.
func Load(path string) ([]Example, error) {
	var (
		lines []string
		err   error
	)
	if path != "" {
		lines, err = readFile(path)
	} else {
		lines, err = assets.ExampleLines()
	}
	if err != nil {
		return nil, err
	}

	out := make([]Example, 0, len(lines))
	for _, l := range lines {
		ex, ok := parseEntry(l)
		if !ok {
			continue
		}
		if _, err := scorecard.Compute(ex.Line); err != nil {
			continue
		}
		out = append(out, ex)
	}
	if len(out) == 0 {
		return nil, errors.New("examples: list is empty")
	}
	return out, nil
}

func readFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return assets.ReadLines(f)
}

// parseEntry splits "<label>|<line>" on the first '|'. Lines without a label
// are accepted with an empty label; the line part may itself contain '|'.
func parseEntry(s string) (Example, bool) {
	label, line, found := strings.Cut(s, "|")
	if !found {
		label, line = "", s
	}
	// A notation line such as "X|X|..." has no label; treat the whole thing as the line.
	if found && !isLabel(label) {
		label, line = "", s
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return Example{}, false
	}
	return Example{Label: strings.TrimSpace(label), Line: line}, true
}

// isLabel reports whether s looks like a word label rather than bowling notation.
// A run of strikes ("XX", "x X") is notation, not a label.
func isLabel(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return false
	}
	strikesOnly := true
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == ' ') {
			return false
		}
		if r != 'X' && r != 'x' && r != ' ' {
			strikesOnly = false
		}
	}
	return !strikesOnly
}
