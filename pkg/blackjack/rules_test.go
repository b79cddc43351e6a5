package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blackjack-server/pkg/deck"
)

func TestCanDouble(t *testing.T) {
	testCases := []struct {
		policy   DoublePolicy
		hi       int
		expected bool
	}{
		{DoubleNone, 10, false},
		{DoubleNineOrTen, 9, true},
		{DoubleNineOrTen, 10, true},
		{DoubleNineOrTen, 11, false},
		{DoubleNineToEleven, 11, true},
		{DoubleNineToEleven, 12, false},
		{DoubleNineToFifteen, 15, true},
		{DoubleNineToFifteen, 16, false},
		{DoubleNineToFifteen, 8, false},
		{DoubleAny, 20, true},
	}

	for _, tc := range testCases {
		got := CanDouble(tc.policy, &HandValue{Hi: tc.hi, Lo: tc.hi})
		assert.Equal(t, tc.expected, got, "%s on %d", tc.policy, tc.hi)
	}

	assert.False(t, CanDouble(DoubleAny, nil))
}

func TestEnforceRules(t *testing.T) {
	a := assert.New(t)

	rules := DefaultRules()
	rules.SplitAllowed = false
	rules.SurrenderAllowed = false
	rules.InsuranceAllowed = false

	hand := getHandInfo(deck.CardsFromString("8s,8h"), deck.CardsFromString("1h"), false)
	hand = enforceRules(hand, rules, false)
	a.False(hand.AvailableActions.Split)
	a.False(hand.AvailableActions.Surrender)
	a.False(hand.AvailableActions.Insurance)
	a.True(hand.AvailableActions.Hit)
	a.True(hand.AvailableActions.Double)
}

func TestEnforceRules_doubleAfterSplit(t *testing.T) {
	a := assert.New(t)

	rules := DefaultRules()
	rules.DoubleAfterSplit = false

	hand := getHandInfoAfterSplit(deck.CardsFromString("8s,3h"), deck.CardsFromString("5h"), 10)
	hand = enforceRules(hand, rules, true)
	a.False(hand.AvailableActions.Double)
	a.True(hand.AvailableActions.Hit)
}

func TestEnforceRules_doublePolicy(t *testing.T) {
	a := assert.New(t)

	rules := DefaultRules()
	rules.DoublePolicy = DoubleNineOrTen

	hand := enforceRules(getHandInfo(deck.CardsFromString("5s,4h"), deck.CardsFromString("5h"), false), rules, false)
	a.True(hand.AvailableActions.Double)

	hand = enforceRules(getHandInfo(deck.CardsFromString("10s,8h"), deck.CardsFromString("5h"), false), rules, false)
	a.False(hand.AvailableActions.Double)
}
