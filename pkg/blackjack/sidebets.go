package blackjack

import (
	"sort"
	"strconv"
	"strings"

	"blackjack-server/pkg/deck"
)

// SideBets flags which side bets a table offers.
// Only Lucky Lucky and Perfect Pairs are payable; the rest are offered
// but settle at 0 until their paytables exist.
type SideBets struct {
	LuckyLucky     bool `json:"luckyLucky"`
	PerfectPairs   bool `json:"perfectPairs"`
	RoyalMatch     bool `json:"royalMatch"`
	LuckyLadies    bool `json:"luckyLadies"`
	InBet          bool `json:"inBet"`
	MatchTheDealer bool `json:"matchTheDealer"`
}

// DefaultSideBets returns the availability map with every flag set to active
func DefaultSideBets(active bool) SideBets {
	return SideBets{
		LuckyLucky:     active,
		PerfectPairs:   active,
		RoyalMatch:     active,
		LuckyLadies:    active,
		InBet:          active,
		MatchTheDealer: active,
	}
}

// SideBetStakes are the amounts wagered on side bets at deal time
type SideBetStakes struct {
	LuckyLucky   float64 `json:"luckyLucky,omitempty"`
	PerfectPairs float64 `json:"perfectPairs,omitempty"`
}

// InsurancePayout records the insurance stake and its winnings
type InsurancePayout struct {
	Risk float64 `json:"risk"`
	Win  float64 `json:"win"`
}

// SideBetsInfo holds the side-bet winnings for a round.
// The stake is locked when the cards are dealt; winnings are computed eagerly.
type SideBetsInfo struct {
	Insurance    *InsurancePayout `json:"insurance,omitempty"`
	LuckyLucky   float64          `json:"luckyLucky"`
	PerfectPairs float64          `json:"perfectPairs"`
}

// IsPerfectPairs returns true if the two player cards share a rank
func IsPerfectPairs(playerCards []*deck.Card) bool {
	return len(playerCards) == 2 && playerCards[0].Rank == playerCards[1].Rank
}

// IsLuckyLucky returns true if any hi/lo combination of the player total and
// the dealer up-card total lands in [19, 21]
func IsLuckyLucky(playerCards, dealerCards []*deck.Card) bool {
	player := Calculate(playerCards)
	dealer := Calculate(dealerCards)
	if player == nil || dealer == nil {
		return false
	}

	for _, total := range []int{
		player.Hi + dealer.Hi,
		player.Lo + dealer.Lo,
		player.Hi + dealer.Lo,
		player.Lo + dealer.Hi,
	} {
		if total >= 19 && total <= 21 {
			return true
		}
	}

	return false
}

// GetLuckyLuckyMultiplier returns the paytable multiplier for the two player
// cards plus the dealer up-card
func GetLuckyLuckyMultiplier(playerCards, dealerCards []*deck.Card) float64 {
	cards := make([]*deck.Card, 0, len(playerCards)+len(dealerCards))
	cards = append(cards, playerCards...)
	cards = append(cards, dealerCards...)

	values := make([]int, len(cards))
	for i, card := range cards {
		values[i] = card.Value()
	}
	sort.Ints(values)

	flat := make([]string, len(values))
	for i, v := range values {
		flat[i] = strconv.Itoa(v)
	}

	return luckyLucky(strings.Join(flat, ""), IsSuited(cards), Calculate(cards))
}

// luckyLucky is the fixed Lucky Lucky paytable
func luckyLucky(flatCards string, suited bool, value *HandValue) float64 {
	key := flatCards
	if suited {
		key += "s"
	}

	switch key {
	case "777s":
		return 200
	case "678s":
		return 100
	case "777":
		return 50
	case "678":
		return 30
	}

	is21 := value.Hi == 21 || value.Lo == 21
	if is21 && suited {
		return 10
	}
	if is21 {
		return 3
	}
	if value.Hi == 20 || value.Lo == 20 {
		return 3
	}
	if value.Hi == 19 || value.Lo == 19 {
		return 2
	}

	return 0
}

// getSideBetsInfo settles the side bets against the dealt cards
func getSideBetsInfo(available SideBets, stakes *SideBetStakes, playerCards, dealerCards []*deck.Card) *SideBetsInfo {
	info := &SideBetsInfo{}
	if stakes == nil {
		return info
	}

	if available.LuckyLucky && stakes.LuckyLucky > 0 {
		info.LuckyLucky = stakes.LuckyLucky * GetLuckyLuckyMultiplier(playerCards, dealerCards)
	}

	if available.PerfectPairs && stakes.PerfectPairs > 0 && IsPerfectPairs(playerCards) {
		// TODO: pay the colored and mixed pair tiers at their own rates
		info.PerfectPairs = stakes.PerfectPairs * 5
	}

	return info
}
