// internal/notation/parser.go
//
// Turns one line of human-written bowling rolls into a flat list of pin counts.
//
// Accepted forms (Parse):
//   - integers: "10 10 7 3 ..." (digits and spaces only, multi-digit tokens allowed)
//   - notation: "X 7/ 9- | 81" with X/x strike, / spare, - miss, digits,
//     and spaces or '|' as cosmetic separators.
//
// The result carries no frame structure; scoring is the game package's job.

package notation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrParse is the sentinel wrapped by every *ParseError.
var ErrParse = errors.New("parse error")

// ParseError describes why a line could not be turned into rolls.
type ParseError struct {
	Pos   int    // 1-based position in the trimmed line (0 when not tied to a position).
	Token string // offending character or token.
	Msg   string
}

func (e *ParseError) Error() string { return e.Msg }

func (e *ParseError) Unwrap() error { return ErrParse }

const pins = 10

var integersOnly = regexp.MustCompile(`^[0-9 ]+$`)

// Parse converts line into rolls.
// No partial result is returned on error.
func Parse(line string) ([]int, error) {
	line = strings.TrimSpace(line)
	if integersOnly.MatchString(line) {
		return parseIntegers(line)
	}
	return parseNotation(line)
}

// parseIntegers handles the fast path: whitespace-separated decimal pin counts.
// Range checking is left to the scoring engine.
func parseIntegers(line string) ([]int, error) {
	fields := strings.Fields(line)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, &ParseError{
				Pos:   strings.Index(line, f) + 1,
				Token: f,
				Msg:   fmt.Sprintf("invalid roll %q", f),
			}
		}
		out = append(out, n)
	}
	return out, nil
}

// frameState is where the scanner stands inside the frame being typed.
type frameState int

const (
	awaitingFirstRoll  frameState = iota // next roll opens a frame
	awaitingSecondRoll                   // a first roll is pending; next roll closes the frame
)

func (s frameState) String() string {
	if s == awaitingSecondRoll {
		return "awaiting second roll"
	}
	return "awaiting first roll"
}

// scanner is the notation state machine. It knows only whether a first roll
// is pending, not which frame it is in: the tenth frame's bonus rolls are
// not special-cased, and a '/' may close whatever roll happens to be pending.
type scanner struct {
	state   frameState
	pending int // valid only in awaitingSecondRoll
	rolls   []int
}

// strike records a 10 and closes the frame.
func (s *scanner) strike() {
	s.rolls = append(s.rolls, pins)
	s.state = awaitingFirstRoll
}

// count records a plain pin count ('-' or a digit), opening or closing a frame.
func (s *scanner) count(n int) {
	s.rolls = append(s.rolls, n)
	if s.state == awaitingFirstRoll {
		s.state, s.pending = awaitingSecondRoll, n
		return
	}
	s.state = awaitingFirstRoll
}

// spare records the pins left standing after the pending roll.
func (s *scanner) spare() bool {
	if s.state != awaitingSecondRoll {
		return false
	}
	s.rolls = append(s.rolls, pins-s.pending)
	s.state = awaitingFirstRoll
	return true
}

func parseNotation(line string) ([]int, error) {
	s := &scanner{rolls: []int{}}
	for i, c := range []rune(line) {
		switch {
		case c == ' ' || c == '|':
			continue
		case c == 'X' || c == 'x':
			s.strike()
		case c == '-':
			s.count(0)
		case c >= '0' && c <= '9':
			s.count(int(c - '0'))
		case c == '/':
			if !s.spare() {
				return nil, &ParseError{
					Pos:   i + 1,
					Token: "/",
					Msg:   "spare '/' without a valid previous roll",
				}
			}
		default:
			return nil, &ParseError{
				Pos:   i + 1,
				Token: string(c),
				Msg:   fmt.Sprintf("unrecognized char: %c", c),
			}
		}
	}
	return s.rolls, nil
}
