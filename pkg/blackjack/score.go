package blackjack

import (
	"blackjack-server/pkg/deck"
)

// HandValue is the dual total of a card sequence. Hi counts each ace as 11
// where that does not bust the hand; Lo always counts aces as 1.
type HandValue struct {
	Hi int `json:"hi"`
	Lo int `json:"lo"`
}

// Calculate returns the hi/lo value of the cards.
// An empty hand has no value and returns nil.
func Calculate(cards []*deck.Card) *HandValue {
	if len(cards) == 0 {
		return nil
	}

	if len(cards) == 1 {
		if cards[0] == nil {
			return nil
		}

		value := cards[0].Value()
		if cards[0].IsAce() {
			// soft opening value
			value = 11
		}

		return &HandValue{Hi: value, Lo: value}
	}

	aces := 0
	sum := 0
	for _, card := range cards {
		if card.IsAce() {
			aces++
			continue
		}

		sum += card.Value()
	}

	value := &HandValue{Hi: sum, Lo: sum}
	for i := 0; i < aces; i++ {
		if value.Hi+11 <= 21 {
			value.Hi += 11
		} else {
			value.Hi++
		}

		value.Lo++
	}

	return value
}

// HigherValidValue returns the best total of the hand: hi if it did not bust, else lo
func HigherValidValue(value *HandValue) int {
	if value == nil {
		return 0
	}

	if value.Hi <= 21 {
		return value.Hi
	}

	return value.Lo
}

// CheckForBusted returns true if the hand value busted
func CheckForBusted(value *HandValue) bool {
	return value != nil && value.Hi > 21
}

// IsBlackjack returns true for a two-card 21
func IsBlackjack(cards []*deck.Card) bool {
	if len(cards) != 2 {
		return false
	}

	return Calculate(cards).Hi == 21
}

// IsSoftHand returns true if the hand holds an ace and optimally totals 17.
// 17 is the threshold that matters for the dealer's stand-on-soft-17 rule.
func IsSoftHand(cards []*deck.Card) bool {
	hasAce := false
	for _, card := range cards {
		if card.IsAce() {
			hasAce = true
			break
		}
	}

	if !hasAce {
		return false
	}

	return HigherValidValue(Calculate(cards)) == 17
}

// IsSuited returns true if every card shares a suit
func IsSuited(cards []*deck.Card) bool {
	if len(cards) == 0 {
		return false
	}

	suit := cards[0].Suit
	for _, card := range cards[1:] {
		if card.Suit != suit {
			return false
		}
	}

	return true
}
