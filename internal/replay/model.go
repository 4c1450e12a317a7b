package replay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const helpText = "n/→ next · p/← previous · g/G first/last · q quit"

// Model is the interactive transcript viewer
type Model struct {
	transcript *Transcript
	logger     *log.Logger

	transcriptView viewport.Model
	current        int

	width    int
	height   int
	quitting bool
}

// NewModel creates a viewer positioned at the first step
func NewModel(t *Transcript, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	m := &Model{
		transcript:     t,
		logger:         logger.WithPrefix("replay"),
		transcriptView: vp,
	}
	m.refresh()
	return m
}

// Current returns the index of the selected step
func (m *Model) Current() int {
	return m.current
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)
		m.resize()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.quitting = true
			return m, tea.Quit
		case "n", "right", "l", " ":
			m.Step(1)
		case "p", "left", "h":
			m.Step(-1)
		case "home", "g":
			m.Goto(0)
		case "end", "G":
			m.Goto(m.transcript.Len() - 1)
		default:
			var cmd tea.Cmd
			m.transcriptView, cmd = m.transcriptView.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// Step moves the selection by delta, clamped to the transcript
func (m *Model) Step(delta int) {
	m.Goto(m.current + delta)
}

// Goto selects step i, clamped to the transcript
func (m *Model) Goto(i int) {
	m.current = max(0, min(i, m.transcript.Len()-1))
	m.refresh()
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	statePane := PaneStyle.Render(m.stateContent())
	logPane := PaneStyle.Render(m.transcriptView.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, logPane, statePane),
		DimStyle.Render(helpText),
	)
}

func (m *Model) stateContent() string {
	if m.transcript.Len() == 0 {
		return DimStyle.Render("empty transcript")
	}
	view := m.transcript.StateAt(m.current).View()
	step := m.transcript.Steps[m.current]
	return RenderState(view) + "\n\n" + RenderStep(step, m.current, m.transcript.Len())
}

func (m *Model) resize() {
	// Transcript pane takes the left half; borders take two cells each way
	m.transcriptView.Width = max(m.width/2-2, 1)
	m.transcriptView.Height = max(m.height-3, 1)
	m.refresh()
}

// refresh redraws the transcript with the current line highlighted and
// keeps it in view.
func (m *Model) refresh() {
	lines := make([]string, len(m.transcript.Steps))
	for i, step := range m.transcript.Steps {
		text := fmt.Sprintf("%4d  %s", step.LineNo, step.Text)
		if step.Answer != "" {
			text += "  " + AnswerPrefix + step.Answer
		}
		switch {
		case i == m.current:
			lines[i] = CurrentLineStyle.Render(text)
		case step.Err != nil:
			lines[i] = ErrorStyle.Render(text)
		default:
			lines[i] = text
		}
	}
	m.transcriptView.SetContent(strings.Join(lines, "\n"))

	top := m.transcriptView.YOffset
	height := m.transcriptView.Height
	switch {
	case m.current < top:
		m.transcriptView.SetYOffset(m.current)
	case m.current >= top+height:
		m.transcriptView.SetYOffset(m.current - height + 1)
	}
}

// RenderFinal renders the state after the last step, for non-interactive output
func RenderFinal(t *Transcript) string {
	if t.Len() == 0 {
		return RenderState(t.StateAt(-1).View())
	}
	last := t.Len() - 1
	return RenderState(t.StateAt(last).View()) + "\n\n" +
		RenderStep(t.Steps[last], last, t.Len()) + "\n" +
		LabelStyle.Render(fmt.Sprintf("%d decisions", t.Decisions()))
}
