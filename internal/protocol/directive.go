// Package protocol implements the line-based engine protocol: tokenizing
// inbound directives, classifying them, and encoding the bracketed lists the
// engine uses for cards and side-pots.
package protocol

import (
	"fmt"
	"time"
)

// Directive names and keys used by the engine
const (
	// Go requests a decision: "go <ms>"
	Go = "go"

	CategorySettings = "Settings"
	CategoryMatch    = "Match"

	AttrStack = "stack"
	AttrHand  = "hand"
	AttrSeat  = "seat"
)

// Settings keys
const (
	SettingYourBot       = "yourBot"
	SettingGameType      = "gameType"
	SettingGameMode      = "gameMode"
	SettingTimeBank      = "timeBank"
	SettingTimePerMove   = "timePerMove"
	SettingHandsPerLevel = "handsPerLevel"
)

// Match keys
const (
	MatchRound      = "round"
	MatchSmallBlind = "smallBlind"
	MatchBigBlind   = "bigBlind"
	MatchOnButton   = "onButton"
	MatchPot        = "pot"
	MatchSidePots   = "sidepots"
	MatchTable      = "table"
)

// Kind classifies a parsed directive
type Kind int

const (
	KindDecision Kind = iota
	KindSetting
	KindMatch
	KindStack
	KindHand
	KindSeat
	KindAction
)

func (k Kind) String() string {
	switch k {
	case KindDecision:
		return "decision"
	case KindSetting:
		return "setting"
	case KindMatch:
		return "match"
	case KindStack:
		return "stack"
	case KindHand:
		return "hand"
	case KindSeat:
		return "seat"
	case KindAction:
		return "action"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Action is a wagering action observed on the wire
type Action string

const (
	Post  Action = "post"
	Fold  Action = "fold"
	Check Action = "check"
	Call  Action = "call"
	Raise Action = "raise"
	Wins  Action = "wins"
)

// ParseAction returns the action named by s
func ParseAction(s string) (Action, bool) {
	switch a := Action(s); a {
	case Post, Fold, Check, Call, Raise, Wins:
		return a, true
	}
	return "", false
}

// Directive is one classified line of the inbound protocol.
//
// Which fields are populated depends on Kind:
//   - KindDecision: Budget
//   - KindSetting, KindMatch: Key, Value
//   - KindStack: Player, Amount
//   - KindHand: Player, Value
//   - KindSeat: Player, Seat
//   - KindAction: Player, Action, Amount
type Directive struct {
	Kind   Kind
	Line   string
	Key    string
	Value  string
	Player string
	Seat   int
	Action Action
	Amount int
	Budget time.Duration
}

// Move is a decision written back to the engine
type Move struct {
	Action Action
	Amount int
}

// String formats the move as "<action> <amount>"
func (m Move) String() string {
	return fmt.Sprintf("%s %d", m.Action, m.Amount)
}
