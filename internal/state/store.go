// Package state holds the game-state snapshot accumulated from engine
// directives and the read-only view handed to decision policies.
package state

import (
	"maps"
	"slices"

	"github.com/lox/starterbot/internal/protocol"
)

// Store is the mutable snapshot built from directives. Every map is
// append-or-overwrite; the only implicit reset is the community cards on a
// new round.
type Store struct {
	settings   map[string]string
	match      map[string]string
	stacks     map[string]int
	hands      map[string]string
	seats      map[int]string
	seatOrder  []int
	lastAction map[string]protocol.Action
	lastAmount map[string]int
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		settings:   make(map[string]string),
		match:      make(map[string]string),
		stacks:     make(map[string]int),
		hands:      make(map[string]string),
		seats:      make(map[int]string),
		lastAction: make(map[string]protocol.Action),
		lastAmount: make(map[string]int),
	}
}

// Apply mutates the store according to a classified directive. Decision
// directives carry no state and are ignored.
func (s *Store) Apply(d protocol.Directive) {
	switch d.Kind {
	case protocol.KindSetting:
		s.SetSetting(d.Key, d.Value)
	case protocol.KindMatch:
		s.SetMatch(d.Key, d.Value)
	case protocol.KindStack:
		s.SetStack(d.Player, d.Amount)
	case protocol.KindHand:
		s.SetHand(d.Player, d.Value)
	case protocol.KindSeat:
		s.SetSeat(d.Seat, d.Player)
	case protocol.KindAction:
		s.SetAction(d.Player, d.Action, d.Amount)
	}
}

func (s *Store) SetSetting(key, value string) {
	s.settings[key] = value
}

// SetMatch stores a match value. A new round clears the community cards.
func (s *Store) SetMatch(key, value string) {
	s.match[key] = value
	if key == protocol.MatchRound {
		s.match[protocol.MatchTable] = protocol.EmptyList
	}
}

func (s *Store) SetStack(player string, chips int) {
	s.stacks[player] = chips
}

func (s *Store) SetHand(player, encoded string) {
	s.hands[player] = encoded
}

// SetSeat assigns a player to a seat. Seats keep the position of their first
// assignment when reassigned.
func (s *Store) SetSeat(seat int, player string) {
	if _, ok := s.seats[seat]; !ok {
		s.seatOrder = append(s.seatOrder, seat)
	}
	s.seats[seat] = player
}

func (s *Store) SetAction(player string, action protocol.Action, amount int) {
	s.lastAction[player] = action
	s.lastAmount[player] = amount
}

// View returns a read-only view over the store
func (s *Store) View() View {
	return View{s: s}
}

// Snapshot returns a deep copy of the store contents
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Settings:   maps.Clone(s.settings),
		Match:      maps.Clone(s.match),
		Stacks:     maps.Clone(s.stacks),
		Hands:      maps.Clone(s.hands),
		Seats:      maps.Clone(s.seats),
		SeatOrder:  slices.Clone(s.seatOrder),
		LastAction: maps.Clone(s.lastAction),
		LastAmount: maps.Clone(s.lastAmount),
	}
}

// Snapshot is a detached copy of a Store, safe to compare and render
type Snapshot struct {
	Settings   map[string]string
	Match      map[string]string
	Stacks     map[string]int
	Hands      map[string]string
	Seats      map[int]string
	SeatOrder  []int
	LastAction map[string]protocol.Action
	LastAmount map[string]int
}
