package protocol

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrEmptyLine is returned for lines with no fields; callers skip these silently
	ErrEmptyLine = errors.New("empty line")

	// ErrFieldCount is returned for lines that are neither "go <ms>" nor three fields
	ErrFieldCount = errors.New("unable to parse line")

	// ErrUnknownDirective is returned for three-field lines with no known tag
	ErrUnknownDirective = errors.New("unable to understand line")

	// ErrInvalidBudget is returned when the "go" budget is not a non-negative integer
	ErrInvalidBudget = errors.New("invalid time budget")

	// ErrInvalidInteger is returned when a stack, seat or amount is not an integer
	ErrInvalidInteger = errors.New("invalid integer value")
)

// IsRecoverable reports whether err only invalidates the offending line.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrEmptyLine) ||
		errors.Is(err, ErrFieldCount) ||
		errors.Is(err, ErrUnknownDirective)
}

// Tokenize splits a line on runs of whitespace
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// Parse tokenizes and classifies a single line.
//
// Priority follows the engine's grammar: "go <ms>" first, then three-field
// lines keyed by the first field (Settings, Match) and then by the second
// field (stack, hand, seat, or an action name).
func Parse(line string) (Directive, error) {
	line = strings.TrimSpace(line)
	fields := Tokenize(line)
	if len(fields) == 0 {
		return Directive{}, ErrEmptyLine
	}

	if len(fields) == 2 && fields[0] == Go {
		ms, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil || ms < 0 || ms > math.MaxInt64/int64(time.Millisecond) {
			return Directive{}, fmt.Errorf("%w: %q", ErrInvalidBudget, line)
		}
		return Directive{
			Kind:   KindDecision,
			Line:   line,
			Budget: time.Duration(ms) * time.Millisecond,
		}, nil
	}

	if len(fields) != 3 {
		return Directive{}, fmt.Errorf("%w %q", ErrFieldCount, line)
	}

	d := Directive{Line: line}
	switch {
	case fields[0] == CategorySettings:
		d.Kind, d.Key, d.Value = KindSetting, fields[1], fields[2]
	case fields[0] == CategoryMatch:
		d.Kind, d.Key, d.Value = KindMatch, fields[1], fields[2]
	case fields[1] == AttrStack:
		n, err := parseInt(line, fields[2])
		if err != nil {
			return Directive{}, err
		}
		d.Kind, d.Player, d.Amount = KindStack, fields[0], n
	case fields[1] == AttrHand:
		d.Kind, d.Player, d.Value = KindHand, fields[0], fields[2]
	case fields[1] == AttrSeat:
		n, err := parseInt(line, fields[2])
		if err != nil {
			return Directive{}, err
		}
		d.Kind, d.Player, d.Seat = KindSeat, fields[0], n
	default:
		action, ok := ParseAction(fields[1])
		if !ok {
			return Directive{}, fmt.Errorf("%w %q", ErrUnknownDirective, line)
		}
		n, err := parseInt(line, fields[2])
		if err != nil {
			return Directive{}, err
		}
		d.Kind, d.Player, d.Action, d.Amount = KindAction, fields[0], action, n
	}
	return d, nil
}

func parseInt(line, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w %q in %q", ErrInvalidInteger, s, line)
	}
	return n, nil
}
