package blackjack

// DoublePolicy controls which totals a player may double down on
type DoublePolicy string

// double policy constants
const (
	DoubleNone          DoublePolicy = "none"
	DoubleNineOrTen     DoublePolicy = "9or10"
	DoubleNineToEleven  DoublePolicy = "9or10or11"
	DoubleNineToFifteen DoublePolicy = "9thru15"
	DoubleAny           DoublePolicy = "any"
)

// Rule is the table rule set for a round
type Rule struct {
	NumberOfDecks         int          `json:"numberOfDecks" yaml:"numberOfDecks"`
	StandOnSoft17         bool         `json:"standOnSoft17" yaml:"standOnSoft17"`
	DoublePolicy          DoublePolicy `json:"doublePolicy" yaml:"doublePolicy"`
	DoubleAfterSplit      bool         `json:"doubleAfterSplit" yaml:"doubleAfterSplit"`
	SplitAllowed          bool         `json:"splitAllowed" yaml:"splitAllowed"`
	SurrenderAllowed      bool         `json:"surrenderAllowed" yaml:"surrenderAllowed"`
	InsuranceAllowed      bool         `json:"insuranceAllowed" yaml:"insuranceAllowed"`
	ShowdownAfterAceSplit bool         `json:"showdownAfterAceSplit" yaml:"showdownAfterAceSplit"`
}

// DefaultRules returns the casino-standard rule set
func DefaultRules() Rule {
	return Rule{
		NumberOfDecks:         1,
		StandOnSoft17:         true,
		DoublePolicy:          DoubleAny,
		DoubleAfterSplit:      true,
		SplitAllowed:          true,
		SurrenderAllowed:      true,
		InsuranceAllowed:      true,
		ShowdownAfterAceSplit: true,
	}
}

// CanDouble returns true if the double policy permits doubling on the hand's hi total
func CanDouble(policy DoublePolicy, value *HandValue) bool {
	if value == nil {
		return false
	}

	switch policy {
	case DoubleNone:
		return false
	case DoubleNineOrTen:
		return value.Hi == 9 || value.Hi == 10
	case DoubleNineToEleven:
		return value.Hi >= 9 && value.Hi <= 11
	case DoubleNineToFifteen:
		return value.Hi >= 9 && value.Hi <= 15
	default:
		return true
	}
}

// enforceRules overlays the rule set onto a freshly derived hand's capabilities
func enforceRules(hand *Hand, rules Rule, hasSplit bool) *Hand {
	if hand == nil {
		return nil
	}

	actions := &hand.AvailableActions
	actions.Double = actions.Double && CanDouble(rules.DoublePolicy, hand.Value)

	if !rules.SplitAllowed {
		actions.Split = false
	}

	if !rules.SurrenderAllowed {
		actions.Surrender = false
	}

	if !rules.InsuranceAllowed {
		actions.Insurance = false
	}

	if !rules.DoubleAfterSplit && hasSplit {
		actions.Double = false
	}

	return hand
}
