// Package replay steps through a recorded engine transcript and renders the
// bot's view of the game after each directive.
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lox/starterbot/internal/protocol"
	"github.com/lox/starterbot/internal/state"
)

// AnswerPrefix marks a recorded bot answer following a go line
const AnswerPrefix = "> "

var ErrOrphanAnswer = errors.New("answer without a preceding go line")

// Step is one directive of a transcript
type Step struct {
	LineNo    int
	Text      string
	Directive protocol.Directive
	Answer    string
	Err       error
}

// Transcript is an ordered list of steps
type Transcript struct {
	Steps []Step
}

// LoadFile reads a transcript from disk
func LoadFile(path string) (*Transcript, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Load reads a transcript. Blank lines are skipped; lines the bot would
// reject are kept as steps carrying their parse error.
func Load(r io.Reader) (*Transcript, error) {
	t := &Transcript{}
	reader := bufio.NewReader(r)

	lineNo := 0
	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, readErr
		}
		if raw == "" && readErr != nil {
			break
		}
		lineNo++

		if err := t.add(lineNo, strings.TrimSpace(raw)); err != nil {
			return nil, err
		}
		if readErr != nil {
			break
		}
	}
	return t, nil
}

func (t *Transcript) add(lineNo int, line string) error {
	if line == "" {
		return nil
	}

	if answer, ok := strings.CutPrefix(line, strings.TrimSpace(AnswerPrefix)); ok {
		n := len(t.Steps)
		if n == 0 || t.Steps[n-1].Directive.Kind != protocol.KindDecision || t.Steps[n-1].Err != nil {
			return fmt.Errorf("line %d: %w", lineNo, ErrOrphanAnswer)
		}
		t.Steps[n-1].Answer = strings.TrimSpace(answer)
		return nil
	}

	d, err := protocol.Parse(line)
	t.Steps = append(t.Steps, Step{
		LineNo:    lineNo,
		Text:      line,
		Directive: d,
		Err:       err,
	})
	return nil
}

// Len returns the number of steps
func (t *Transcript) Len() int {
	return len(t.Steps)
}

// StateAt replays steps [0, n] into a fresh store. Rejected lines leave
// the state untouched, as they do for the live bot.
func (t *Transcript) StateAt(n int) *state.Store {
	store := state.NewStore()
	for i := 0; i <= n && i < len(t.Steps); i++ {
		if t.Steps[i].Err != nil {
			continue
		}
		store.Apply(t.Steps[i].Directive)
	}
	return store
}

// Decisions counts the go lines in the transcript
func (t *Transcript) Decisions() int {
	n := 0
	for _, s := range t.Steps {
		if s.Err == nil && s.Directive.Kind == protocol.KindDecision {
			n++
		}
	}
	return n
}
