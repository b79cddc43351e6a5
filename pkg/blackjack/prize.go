package blackjack

import (
	"blackjack-server/pkg/deck"
)

// GetPrize returns the total amount returned to the player for the hand,
// stake included, against the dealer's final cards.
func GetPrize(hand *Hand, dealerCards []*deck.Card) float64 {
	if hand == nil || !hand.Closed {
		return 0
	}

	if hand.HasBusted {
		return 0
	}

	if hand.HasSurrendered {
		return hand.Bet / 2
	}

	bet := hand.Bet
	dealerValue := Calculate(dealerCards)
	dealerHasBlackjack := IsBlackjack(dealerCards)

	if hand.HasBlackjack && !dealerHasBlackjack {
		return bet + bet*1.5
	}

	if CheckForBusted(dealerValue) {
		return bet * 2
	}

	player := HigherValidValue(hand.Value)
	dealer := HigherValidValue(dealerValue)

	if player > dealer {
		return bet * 2
	}

	if player == dealer {
		return bet
	}

	return 0
}

// GetInsurancePrize returns the insurance winnings: the stake back plus 2:1,
// only when the dealer showed an ace and holds blackjack.
func GetInsurancePrize(stake float64, dealerCards []*deck.Card) float64 {
	if stake <= 0 {
		return 0
	}

	if len(dealerCards) == 0 || !dealerCards[0].IsAce() {
		return 0
	}

	if !IsBlackjack(dealerCards) {
		return 0
	}

	return stake * 3
}

// settle reduces the history into the final bet and computes each
// position's winnings against the dealer's final cards
func (s *State) settle() {
	finalBet := 0.0
	for _, item := range s.History {
		finalBet += item.Value
	}

	s.FinalBet = finalBet
	s.WonOnRight = GetPrize(s.HandInfo.Right, s.DealerCards)
	s.WonOnLeft = 0
	if s.hasSplit() {
		s.WonOnLeft = GetPrize(s.HandInfo.Left, s.DealerCards)
	}

	s.FinalWin = s.WonOnLeft + s.WonOnRight
	s.Stage = StageDone
}
