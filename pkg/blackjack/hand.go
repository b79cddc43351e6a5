package blackjack

import (
	"blackjack-server/pkg/deck"
)

// Position is one of the up-to-two simultaneous player hands.
// The left position only exists after a split.
type Position string

// position constants
const (
	Right Position = "right"
	Left  Position = "left"
)

// AvailableActions is the capability set of a hand snapshot
type AvailableActions struct {
	Double    bool `json:"double"`
	Split     bool `json:"split"`
	Insurance bool `json:"insurance"`
	Hit       bool `json:"hit"`
	Stand     bool `json:"stand"`
	Surrender bool `json:"surrender"`
}

// allows returns true if the capability for the action type is set
func (a AvailableActions) allows(actionType ActionType) bool {
	switch actionType {
	case ActionDouble:
		return a.Double
	case ActionSplit:
		return a.Split
	case ActionInsurance:
		return a.Insurance
	case ActionHit:
		return a.Hit
	case ActionStand:
		return a.Stand
	case ActionSurrender:
		return a.Surrender
	}

	return false
}

// Hand is the state of a single player position
type Hand struct {
	Cards            []*deck.Card     `json:"cards"`
	Value            *HandValue       `json:"value"`
	HasBlackjack     bool             `json:"isBlackjack"`
	HasBusted        bool             `json:"isBusted"`
	HasSurrendered   bool             `json:"hasSurrendered"`
	Bet              float64          `json:"bet"`
	InsuranceValue   float64          `json:"insuranceValue"`
	Closed           bool             `json:"closed"`
	AvailableActions AvailableActions `json:"availableActions"`
}

// HandInfo holds both player positions.
// A nil hand means the position does not exist yet this round.
type HandInfo struct {
	Left  *Hand `json:"left"`
	Right *Hand `json:"right"`
}

func (h *HandInfo) get(position Position) *Hand {
	if position == Left {
		return h.Left
	}

	return h.Right
}

func (h *HandInfo) set(position Position, hand *Hand) {
	if position == Left {
		h.Left = hand
		return
	}

	h.Right = hand
}

// getHandInfo derives a fresh hand snapshot from the cards.
// A hand closes as soon as it busts, naturally totals 21, or holds blackjack;
// a hand produced by a split never counts as natural blackjack.
func getHandInfo(playerCards, dealerCards []*deck.Card, hasSplit bool) *Hand {
	value := Calculate(playerCards)
	if value == nil {
		return nil
	}

	hasBlackjack := IsBlackjack(playerCards) && !hasSplit
	hasBusted := CheckForBusted(value)
	closed := hasBusted || hasBlackjack || value.Hi == 21

	canSplit := len(playerCards) == 2 &&
		playerCards[0].Value() == playerCards[1].Value() &&
		!closed
	canInsure := len(dealerCards) > 0 && dealerCards[0].IsAce() && !closed

	return &Hand{
		Cards:        playerCards,
		Value:        value,
		HasBlackjack: hasBlackjack,
		HasBusted:    hasBusted,
		Closed:       closed,
		AvailableActions: AvailableActions{
			Double:    !closed,
			Split:     canSplit,
			Insurance: canInsure,
			Hit:       !closed,
			Stand:     !closed,
			Surrender: !closed,
		},
	}
}

func getHandInfoAfterDeal(playerCards, dealerCards []*deck.Card, initialBet float64) *Hand {
	hand := getHandInfo(playerCards, dealerCards, false)
	hand.Bet = initialBet
	return hand
}

func getHandInfoAfterSplit(playerCards, dealerCards []*deck.Card, initialBet float64) *Hand {
	hand := getHandInfo(playerCards, dealerCards, true)
	hand.Bet = initialBet
	hand.AvailableActions.Split = false
	hand.AvailableActions.Insurance = false
	hand.AvailableActions.Surrender = false
	hand.AvailableActions.Double = !hand.Closed && len(playerCards) == 2
	return hand
}

func getHandInfoAfterHit(playerCards, dealerCards []*deck.Card, initialBet float64, hasSplit bool) *Hand {
	hand := getHandInfo(playerCards, dealerCards, hasSplit)
	hand.Bet = initialBet
	hand.AvailableActions.Split = false
	hand.AvailableActions.Insurance = false
	hand.AvailableActions.Surrender = false
	// only a one-card post-split hand is still at two cards after a hit
	hand.AvailableActions.Double = !hand.Closed && len(playerCards) == 2
	return hand
}

func getHandInfoAfterDouble(playerCards, dealerCards []*deck.Card, initialBet float64, hasSplit bool) *Hand {
	hand := getHandInfoAfterHit(playerCards, dealerCards, initialBet, hasSplit)
	hand.Bet = initialBet * 2
	hand.Closed = true
	hand.AvailableActions = AvailableActions{}
	return hand
}

func getHandInfoAfterStand(hand *Hand) *Hand {
	next := *hand
	next.Closed = true
	next.AvailableActions = AvailableActions{}
	return &next
}

func getHandInfoAfterSurrender(hand *Hand) *Hand {
	next := getHandInfoAfterStand(hand)
	next.HasSurrendered = true
	return next
}

func getHandInfoAfterInsurance(playerCards, dealerCards []*deck.Card) *Hand {
	hand := getHandInfo(playerCards, dealerCards, false)
	hand.AvailableActions.Insurance = false
	return hand
}
