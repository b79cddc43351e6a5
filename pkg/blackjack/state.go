package blackjack

import (
	"time"

	"blackjack-server/internal/rng"
	"blackjack-server/pkg/deck"
)

// Stage is the coarse phase of a round
type Stage string

// stage constants
const (
	StageReady           Stage = "ready"
	StagePlayerTurnRight Stage = "player-turn-right"
	StagePlayerTurnLeft  Stage = "player-turn-left"
	StageShowdown        Stage = "showdown"
	StageDealerTurn      Stage = "dealer-turn"
	StageDone            Stage = "done"
)

// HistoryItem is one entry of the round's append-only audit trail
type HistoryItem struct {
	Type    ActionType     `json:"type"`
	Payload *ActionPayload `json:"payload,omitempty"`
	// Cards newly revealed by this action
	Cards []*deck.Card `json:"cards,omitempty"`
	// Value is the monetary stake attached to the action
	Value float64   `json:"value"`
	Ts    time.Time `json:"ts"`
}

// State is the full serializable state of a round.
// It is only ever mutated through dispatch and is round-trip safe: a state
// returned by Dispatch can seed a new Game and resume identically.
type State struct {
	Hits               int           `json:"hits"`
	InitialBet         float64       `json:"initialBet"`
	FinalBet           float64       `json:"finalBet"`
	FinalWin           float64       `json:"finalWin"`
	WonOnRight         float64       `json:"wonOnRight"`
	WonOnLeft          float64       `json:"wonOnLeft"`
	Stage              Stage         `json:"stage"`
	Deck               []*deck.Card  `json:"deck"`
	HandInfo           HandInfo      `json:"handInfo"`
	History            []HistoryItem `json:"history"`
	AvailableSideBets  SideBets      `json:"availableSideBets"`
	SideBetsInfo       *SideBetsInfo `json:"sideBetsInfo"`
	Rules              Rule          `json:"rules"`
	DealerCards        []*deck.Card  `json:"dealerCards"`
	DealerHoleCard     *deck.Card    `json:"dealerHoleCard"`
	DealerValue        *HandValue    `json:"dealerValue"`
	DealerHasBlackjack bool          `json:"dealerHasBlackjack"`
	DealerHasBusted    bool          `json:"dealerHasBusted"`
}

// newState returns a fresh ready-stage state with a shuffled shoe
func newState(rules Rule, r rng.Generator) State {
	return State{
		Stage:             StageReady,
		Deck:              deck.NewShoe(rules.NumberOfDecks, r).Cards,
		AvailableSideBets: DefaultSideBets(true),
		Rules:             rules,
	}
}

// clone returns a deep-enough copy of the state: every slice header is
// copied so the original is never aliased. Cards are immutable and shared.
func (s State) clone() State {
	next := s

	next.Deck = copyCards(s.Deck)
	next.DealerCards = copyCards(s.DealerCards)
	next.HandInfo = HandInfo{
		Left:  s.HandInfo.Left.clone(),
		Right: s.HandInfo.Right.clone(),
	}

	if s.History != nil {
		next.History = make([]HistoryItem, len(s.History))
		copy(next.History, s.History)
	}

	if s.SideBetsInfo != nil {
		info := *s.SideBetsInfo
		if s.SideBetsInfo.Insurance != nil {
			insurance := *s.SideBetsInfo.Insurance
			info.Insurance = &insurance
		}
		next.SideBetsInfo = &info
	}

	if s.DealerValue != nil {
		value := *s.DealerValue
		next.DealerValue = &value
	}

	return next
}

func (h *Hand) clone() *Hand {
	if h == nil {
		return nil
	}

	next := *h
	next.Cards = copyCards(h.Cards)
	if h.Value != nil {
		value := *h.Value
		next.Value = &value
	}

	return &next
}

func copyCards(cards []*deck.Card) []*deck.Card {
	if cards == nil {
		return nil
	}

	next := make([]*deck.Card, len(cards))
	copy(next, cards)
	return next
}

// hasSplit returns true if a split occurred this round
func (s *State) hasSplit() bool {
	for _, item := range s.History {
		if item.Type == ActionSplit {
			return true
		}
	}

	return false
}

// appendHistory records an applied action with its stake and revealed cards
func (s *State) appendHistory(action Action, value float64, cards []*deck.Card) {
	s.History = append(s.History, HistoryItem{
		Type:    action.Type,
		Payload: action.Payload,
		Cards:   cards,
		Value:   value,
		Ts:      time.Now(),
	})
	s.Hits++
}

// allPlayerHandsDecided returns true when every live position already busted
// or holds blackjack, so the dealer has nothing left to draw for
func (s *State) allPlayerHandsDecided() bool {
	right := s.HandInfo.Right
	if right == nil || !(right.HasBusted || right.HasBlackjack) {
		return false
	}

	if !s.hasSplit() {
		return true
	}

	left := s.HandInfo.Left
	return left != nil && (left.HasBusted || left.HasBlackjack)
}

// bestLivePlayerValue returns the highest total among hands that will be
// compared against the dealer at settlement
func (s *State) bestLivePlayerValue() int {
	best := 0
	for _, hand := range []*Hand{s.HandInfo.Right, s.HandInfo.Left} {
		if hand == nil || len(hand.Cards) == 0 {
			continue
		}

		if hand.HasBusted || hand.HasBlackjack || hand.HasSurrendered {
			continue
		}

		if value := HigherValidValue(hand.Value); value > best {
			best = value
		}
	}

	return best
}

// PublicState is the state as exposed to an untrusted client: the shoe is
// stripped since it reveals future cards.
type PublicState struct {
	State
	Deck      interface{} `json:"deck,omitempty"`
	CardsLeft int         `json:"cardsLeft"`
}

// Public returns the deck-stripped view of the state
func (s State) Public() PublicState {
	shoe := deck.Shoe{Cards: s.Deck}

	return PublicState{
		State:     s,
		CardsLeft: shoe.CardsLeft(),
	}
}
