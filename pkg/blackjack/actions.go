package blackjack

import (
	"blackjack-server/pkg/deck"
)

// ActionType identifies a dispatched action
type ActionType string

// action type constants
const (
	ActionRestore   ActionType = "RESTORE"
	ActionDeal      ActionType = "DEAL"
	ActionInsurance ActionType = "INSURANCE"
	ActionSplit     ActionType = "SPLIT"
	ActionHit       ActionType = "HIT"
	ActionDouble    ActionType = "DOUBLE"
	ActionStand     ActionType = "STAND"
	ActionSurrender ActionType = "SURRENDER"
	ActionShowdown  ActionType = "SHOWDOWN"
	ActionDealerHit ActionType = "DEALER-HIT"
	ActionInvalid   ActionType = "INVALID"

	// internal work-list pseudo-actions; never appended to history
	actionDealerPlay ActionType = "DEALER-PLAY"
	actionSettle     ActionType = "SETTLE"
)

// Action is a request to mutate the round state
type Action struct {
	Type    ActionType     `json:"type"`
	Payload *ActionPayload `json:"payload,omitempty"`
}

// ActionPayload carries the action's arguments
type ActionPayload struct {
	Bet                float64        `json:"bet,omitempty"`
	Position           Position       `json:"position,omitempty"`
	SideBets           *SideBetStakes `json:"sideBets,omitempty"`
	DealerHoleCard     *deck.Card     `json:"dealerHoleCard,omitempty"`
	DealerHoleCardOnly bool           `json:"dealerHoleCardOnly,omitempty"`

	// set on INVALID actions only
	Type ActionType `json:"type,omitempty"`
	Info string     `json:"info,omitempty"`
}

// Restore resets the round to a fresh shuffled state
func Restore() Action {
	return Action{Type: ActionRestore}
}

// Deal starts a round with the main bet and optional side-bet stakes
func Deal(bet float64, sideBets *SideBetStakes) Action {
	return Action{
		Type: ActionDeal,
		Payload: &ActionPayload{
			Bet:      bet,
			SideBets: sideBets,
		},
	}
}

// Insurance places an insurance stake; a stake of 0 declines
func Insurance(bet float64) Action {
	return Action{
		Type:    ActionInsurance,
		Payload: &ActionPayload{Bet: bet},
	}
}

// Split splits the right hand's pair into two positions
func Split() Action {
	return Action{Type: ActionSplit}
}

// Hit draws one card onto the position
func Hit(position Position) Action {
	return Action{
		Type:    ActionHit,
		Payload: &ActionPayload{Position: position},
	}
}

// Double doubles the bet, draws one final card, and closes the position
func Double(position Position) Action {
	return Action{
		Type:    ActionDouble,
		Payload: &ActionPayload{Position: position},
	}
}

// Stand closes the position
func Stand(position Position) Action {
	return Action{
		Type:    ActionStand,
		Payload: &ActionPayload{Position: position},
	}
}

// Surrender gives up the right hand for half the bet
func Surrender() Action {
	return Action{Type: ActionSurrender}
}

// Showdown reveals the hole card and plays out the dealer.
// With dealerHoleCardOnly the dealer reveals the hole card and draws nothing further.
func Showdown(dealerHoleCardOnly bool) Action {
	return Action{
		Type:    ActionShowdown,
		Payload: &ActionPayload{DealerHoleCardOnly: dealerHoleCardOnly},
	}
}

// DealerHit draws one dealer card, or consumes the reserved hole card if given
func DealerHit(dealerHoleCard *deck.Card) Action {
	return Action{
		Type:    ActionDealerHit,
		Payload: &ActionPayload{DealerHoleCard: dealerHoleCard},
	}
}

// Invalid wraps a rejected action with a human-readable reason
func Invalid(action Action, info string) Action {
	payload := ActionPayload{}
	if action.Payload != nil {
		payload = *action.Payload
	}

	payload.Type = action.Type
	payload.Info = info

	return Action{
		Type:    ActionInvalid,
		Payload: &payload,
	}
}
