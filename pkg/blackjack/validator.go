package blackjack

import (
	"fmt"
)

// isActionAllowed is the legality table: which action types a stage accepts.
// Restore is legal from any stage.
func isActionAllowed(actionType ActionType, stage Stage) bool {
	if actionType == ActionRestore {
		return true
	}

	switch stage {
	case StageReady:
		return actionType == ActionDeal
	case StagePlayerTurnRight:
		switch actionType {
		case ActionStand, ActionInsurance, ActionSurrender, ActionSplit, ActionHit, ActionDouble:
			return true
		}
	case StagePlayerTurnLeft:
		switch actionType {
		case ActionStand, ActionHit, ActionDouble:
			return true
		}
	case StageShowdown:
		return actionType == ActionShowdown || actionType == ActionStand
	case StageDealerTurn:
		return actionType == ActionDealerHit
	case StageDone:
		// a fresh deal can start the next round on the remaining shoe
		return actionType == ActionDeal
	}

	return false
}

// validate gates a requested action against the current stage, table position,
// and hand closure. A violation never errors: it synthesizes an INVALID action
// carrying the offending action and the reason.
func (s *State) validate(action Action) Action {
	if !isActionAllowed(action.Type, s.Stage) {
		return Invalid(action, fmt.Sprintf("%s is not allowed in stage %s", action.Type, s.Stage))
	}

	switch action.Type {
	case ActionRestore, ActionShowdown, ActionDealerHit:
		return action
	case ActionDeal:
		if action.Payload == nil || action.Payload.Bet <= 0 {
			return Invalid(action, "deal requires a bet")
		}
		return action
	}

	position := Right
	if action.Payload != nil && action.Payload.Position == Left {
		position = Left
	}

	if position == Left && !s.hasSplit() {
		return Invalid(action, "left hand does not exist before a split")
	}

	hand := s.HandInfo.get(position)
	if hand == nil {
		return Invalid(action, fmt.Sprintf("no %s hand this round", position))
	}

	// a natural blackjack closes the hand at deal time, but the insurance
	// decision against a dealer ace is still pending on it
	if hand.Closed && action.Type != ActionInsurance {
		return Invalid(action, fmt.Sprintf("%s hand is closed", position))
	}

	if position == Left && !s.HandInfo.Right.Closed {
		return Invalid(action, "right hand must be closed first")
	}

	if !hand.AvailableActions.allows(action.Type) {
		return Invalid(action, fmt.Sprintf("%s is not available on the %s hand", action.Type, position))
	}

	return action
}
