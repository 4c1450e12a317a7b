package state

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/lox/starterbot/internal/protocol"
)

// ErrNotSet is returned when an accessor needs a value the engine has not sent yet
var ErrNotSet = errors.New("value not set")

// View is a read-only accessor over a Store. Policies receive a View and
// cannot mutate the underlying state through it.
type View struct {
	s *Store
}

// Setting returns a raw setting value
func (v View) Setting(key string) (string, bool) {
	val, ok := v.s.settings[key]
	return val, ok
}

// Match returns a raw match-info value
func (v View) Match(key string) (string, bool) {
	val, ok := v.s.match[key]
	return val, ok
}

// MyName is the identifier the engine assigned to this bot
func (v View) MyName() string {
	return v.s.settings[protocol.SettingYourBot]
}

func (v View) Round() (int, error)      { return v.matchInt(protocol.MatchRound) }
func (v View) SmallBlind() (int, error) { return v.matchInt(protocol.MatchSmallBlind) }
func (v View) BigBlind() (int, error)   { return v.matchInt(protocol.MatchBigBlind) }
func (v View) Pot() (int, error)        { return v.matchInt(protocol.MatchPot) }

// IsMyButton reports whether this bot holds the button and so acts last post-flop
func (v View) IsMyButton() bool {
	button, ok := v.s.match[protocol.MatchOnButton]
	return ok && button == v.MyName()
}

// Opponents lists every seated player other than this bot, in seat-assignment
// order. Heads-up this has a single entry.
func (v View) Opponents() []string {
	me := v.MyName()
	var out []string
	for _, seat := range v.s.seatOrder {
		if player := v.s.seats[seat]; player != me {
			out = append(out, player)
		}
	}
	return out
}

// Opponent is the last entry of Opponents
func (v View) Opponent() (string, bool) {
	opponents := v.Opponents()
	if len(opponents) == 0 {
		return "", false
	}
	return opponents[len(opponents)-1], true
}

// Seat returns the player sitting in seat
func (v View) Seat(seat int) (string, bool) {
	player, ok := v.s.seats[seat]
	return player, ok
}

// Stack returns a player's chip count
func (v View) Stack(player string) (int, error) {
	chips, ok := v.s.stacks[player]
	if !ok {
		return 0, fmt.Errorf("%w: stack for %q", ErrNotSet, player)
	}
	return chips, nil
}

func (v View) MyStack() (int, error) {
	return v.Stack(v.MyName())
}

func (v View) OpponentStack() (int, error) {
	opponent, ok := v.Opponent()
	if !ok {
		return 0, fmt.Errorf("%w: no opponent seated", ErrNotSet)
	}
	return v.Stack(opponent)
}

// LastAction returns the most recent wagering action observed for player
func (v View) LastAction(player string) (protocol.Action, int, bool) {
	action, ok := v.s.lastAction[player]
	if !ok {
		return "", 0, false
	}
	return action, v.s.lastAmount[player], true
}

// OpponentAction returns the last action of Opponent
func (v View) OpponentAction() (protocol.Action, int, bool) {
	opponent, ok := v.Opponent()
	if !ok {
		return "", 0, false
	}
	return v.LastAction(opponent)
}

// SidePots decodes the side-pot list from match info
func (v View) SidePots() ([]int, error) {
	raw, ok := v.s.match[protocol.MatchSidePots]
	if !ok {
		return nil, fmt.Errorf("%w: match %q", ErrNotSet, protocol.MatchSidePots)
	}
	return protocol.DecodeIntList(raw)
}

// CurrentBet is the amount to call. The engine lists the amount to call as
// the first side-pot; no side-pots means nothing to call.
func (v View) CurrentBet() (int, error) {
	pots, err := v.SidePots()
	if err != nil {
		return 0, err
	}
	if len(pots) == 0 {
		return 0, nil
	}
	return pots[0], nil
}

// Hand decodes a player's hole cards
func (v View) Hand(player string) []string {
	raw, ok := v.s.hands[player]
	if !ok {
		return []string{}
	}
	return protocol.DecodeList(raw)
}

func (v View) MyHand() []string {
	return v.Hand(v.MyName())
}

// TableCards decodes the community cards
func (v View) TableCards() []string {
	raw, ok := v.s.match[protocol.MatchTable]
	if !ok {
		return []string{}
	}
	return protocol.DecodeList(raw)
}

// TimeBank is the engine's total time bank for this bot
func (v View) TimeBank() (time.Duration, error) {
	ms, err := v.settingInt(protocol.SettingTimeBank)
	return time.Duration(ms) * time.Millisecond, err
}

// TimePerMove is the time added to the bank for each move
func (v View) TimePerMove() (time.Duration, error) {
	ms, err := v.settingInt(protocol.SettingTimePerMove)
	return time.Duration(ms) * time.Millisecond, err
}

func (v View) HandsPerLevel() (int, error) {
	return v.settingInt(protocol.SettingHandsPerLevel)
}

// Snapshot returns a deep copy of the underlying store
func (v View) Snapshot() Snapshot {
	return v.s.Snapshot()
}

func (v View) matchInt(key string) (int, error) {
	return lookupInt(v.s.match, "match", key)
}

func (v View) settingInt(key string) (int, error) {
	return lookupInt(v.s.settings, "setting", key)
}

func lookupInt(m map[string]string, category, key string) (int, error) {
	raw, ok := m[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s %q", ErrNotSet, category, key)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w %q for %s %q", protocol.ErrInvalidInteger, raw, category, key)
	}
	return n, nil
}
