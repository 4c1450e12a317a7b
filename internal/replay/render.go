package replay

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/starterbot/internal/deck"
	"github.com/lox/starterbot/internal/protocol"
	"github.com/lox/starterbot/internal/state"
)

// RenderState draws the table as the bot sees it
func RenderState(view state.View) string {
	var b strings.Builder

	title := "Round -"
	if round, err := view.Round(); err == nil {
		title = fmt.Sprintf("Round %d", round)
	}
	if me := view.MyName(); me != "" {
		title += " · " + me
	}
	b.WriteString(HeaderStyle.Render(title))
	b.WriteString("\n\n")

	field := func(label, value string) {
		b.WriteString(LabelStyle.Render(fmt.Sprintf("%-12s", label)))
		b.WriteString(value)
		b.WriteString("\n")
	}

	field("Blinds", fmt.Sprintf("%s/%s", matchValue(view, protocol.MatchSmallBlind), matchValue(view, protocol.MatchBigBlind)))
	field("Pot", matchValue(view, protocol.MatchPot))
	if bet, err := view.CurrentBet(); err == nil {
		field("To call", strconv.Itoa(bet))
	} else {
		field("To call", "-")
	}
	field("Table", RenderCards(view.TableCards()))
	if made, ok := madeHand(view); ok {
		field("Hand", made)
	}
	b.WriteString("\n")

	snap := view.Snapshot()
	button, _ := view.Match(protocol.MatchOnButton)
	for _, player := range players(snap) {
		label := player
		if player == button {
			label += " (D)"
		}
		name := fmt.Sprintf("%-20s", label)
		if player == view.MyName() {
			name = HeroStyle.Render(name)
		}

		stack := "-"
		if chips, ok := snap.Stacks[player]; ok {
			stack = strconv.Itoa(chips)
		}

		line := fmt.Sprintf("%s %8s  %s", name, stack, RenderCards(view.Hand(player)))
		if action, amount, ok := view.LastAction(player); ok {
			line += "  " + ActionStyle.Render(protocol.Move{Action: action, Amount: amount}.String())
		}
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderStep describes a transcript step and the recorded answer
func RenderStep(step Step, index, total int) string {
	header := LabelStyle.Render(fmt.Sprintf("Step %d/%d (line %d)", index+1, total, step.LineNo))
	lines := []string{header, step.Text}
	if step.Err != nil {
		lines = append(lines, ErrorStyle.Render("rejected: "+step.Err.Error()))
	}
	if step.Answer != "" {
		lines = append(lines, ActionStyle.Render(AnswerPrefix+step.Answer))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderCards colours card tokens by suit, passing unknown tokens through
func RenderCards(tokens []string) string {
	if len(tokens) == 0 {
		return DimStyle.Render("--")
	}
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		card, err := deck.ParseCard(strings.TrimSpace(tok))
		switch {
		case err != nil:
			out[i] = tok
		case card.IsRed():
			out[i] = RedCardStyle.Render(card.Pretty())
		default:
			out[i] = BlackCardStyle.Render(card.Pretty())
		}
	}
	return strings.Join(out, " ")
}

// madeHand names our best hand once there are enough cards to form one
func madeHand(view state.View) (string, bool) {
	cards, err := deck.ParseCards(slices.Concat(view.MyHand(), view.TableCards()))
	if err != nil || len(cards) < 5 || len(cards) > 7 {
		return "", false
	}
	desc, err := deck.Describe(cards)
	if err != nil {
		return "", false
	}
	return desc, true
}

func matchValue(view state.View, key string) string {
	if v, ok := view.Match(key); ok {
		return v
	}
	return "-"
}

// players lists seated players in seat order, followed by any player only
// known from a stack or hand line.
func players(snap state.Snapshot) []string {
	var out []string
	for _, seat := range snap.SeatOrder {
		if p := snap.Seats[seat]; !slices.Contains(out, p) {
			out = append(out, p)
		}
	}

	var extra []string
	for p := range snap.Stacks {
		if !slices.Contains(out, p) {
			extra = append(extra, p)
		}
	}
	for p := range snap.Hands {
		if !slices.Contains(out, p) && !slices.Contains(extra, p) {
			extra = append(extra, p)
		}
	}
	slices.Sort(extra)
	return append(out, extra...)
}
