package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blackjack-server/pkg/deck"
)

func stoodHand(cards string, bet float64) *Hand {
	hand := getHandInfo(deck.CardsFromString(cards), nil, false)
	hand.Bet = bet
	return getHandInfoAfterStand(hand)
}

func TestGetPrize(t *testing.T) {
	a := assert.New(t)

	// a 19 against a range of dealer finals
	hand := stoodHand("11s,9c", 10)
	a.Equal(float64(0), GetPrize(hand, deck.CardsFromString("10h,10d")))
	a.Equal(float64(10), GetPrize(hand, deck.CardsFromString("10h,9d")))
	a.Equal(float64(20), GetPrize(hand, deck.CardsFromString("10h,8d")))

	// dealer bust pays even money
	a.Equal(float64(20), GetPrize(hand, deck.CardsFromString("10h,6d,9s")))
}

func TestGetPrize_blackjack(t *testing.T) {
	a := assert.New(t)

	hand := stoodHand("1s,13s", 10)
	a.True(hand.HasBlackjack)

	// 3:2 against any dealer total, a three-card 21 included
	a.Equal(float64(25), GetPrize(hand, deck.CardsFromString("10h,8d")))
	a.Equal(float64(25), GetPrize(hand, deck.CardsFromString("5h,6d,10s")))

	// blackjack against blackjack pushes
	a.Equal(float64(10), GetPrize(hand, deck.CardsFromString("1h,10d")))
}

func TestGetPrize_noPayout(t *testing.T) {
	a := assert.New(t)

	// an open hand has no payout
	open := getHandInfo(deck.CardsFromString("11s,9c"), nil, false)
	open.Bet = 10
	a.Equal(float64(0), GetPrize(open, deck.CardsFromString("10h,8d")))

	a.Equal(float64(0), GetPrize(nil, deck.CardsFromString("10h,8d")))

	// a busted hand loses even against a dealer bust
	busted := getHandInfo(deck.CardsFromString("10s,9h,8d"), nil, false)
	busted.Bet = 10
	a.Equal(float64(0), GetPrize(busted, deck.CardsFromString("10h,6d,9s")))
}

func TestGetPrize_surrender(t *testing.T) {
	a := assert.New(t)

	hand := getHandInfo(deck.CardsFromString("10s,6h"), nil, false)
	hand.Bet = 10
	hand = getHandInfoAfterSurrender(hand)
	a.Equal(float64(5), GetPrize(hand, deck.CardsFromString("10h,9d")))
}

func TestGetInsurancePrize(t *testing.T) {
	a := assert.New(t)

	a.Equal(float64(15), GetInsurancePrize(5, deck.CardsFromString("1h,13d")))
	a.Equal(float64(0), GetInsurancePrize(5, deck.CardsFromString("1h,9d")))

	// the ace must be the up-card
	a.Equal(float64(0), GetInsurancePrize(5, deck.CardsFromString("10h,1d")))
	a.Equal(float64(0), GetInsurancePrize(0, deck.CardsFromString("1h,13d")))
}
