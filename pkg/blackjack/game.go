package blackjack

import (
	"github.com/sirupsen/logrus"

	"blackjack-server/internal/rng"
	"blackjack-server/pkg/deck"
)

// Game drives a single round of multi-hand blackjack. It holds no resources
// and retains nothing across rounds: the intended pattern is to rehydrate a
// Game from a persisted state, dispatch once, and persist the returned state.
type Game struct {
	state  State
	rng    rng.Generator
	logger logrus.FieldLogger
}

// Option configures a Game
type Option func(*Game)

// WithRNG sets the random number generator used for shuffling
func WithRNG(r rng.Generator) Option {
	return func(g *Game) {
		g.rng = r
	}
}

// WithLogger sets the logger
func WithLogger(logger logrus.FieldLogger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// New returns a game resumed from a prior state snapshot.
// A nil prior starts a fresh ready-stage round with the default rules.
func New(prior *State, opts ...Option) *Game {
	g := &Game{
		rng:    rng.Crypto{},
		logger: logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if prior != nil {
		g.state = prior.clone()
	} else {
		g.state = newState(DefaultRules(), g.rng)
	}

	return g
}

// NewWithRules returns a fresh game for the rule set
func NewWithRules(rules Rule, opts ...Option) *Game {
	g := New(nil, opts...)
	g.state = newState(rules, g.rng)
	return g
}

// State returns the current state snapshot
func (g *Game) State() State {
	return g.state
}

// Dispatch validates and applies an action, draining the internal work-list
// of follow-up pseudo-actions (auto-showdown, dealer auto-draw, settlement)
// until the stage is stable, then returns the new state.
// Dispatch never errors for a reachable game state: rule violations surface
// as INVALID history entries and leave gameplay state untouched.
func (g *Game) Dispatch(action Action) State {
	next := g.state.clone()

	queue := []Action{next.validate(action)}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		queue = append(queue, g.reduce(&next, item)...)
	}

	g.state = next
	return next
}

// reduce applies a single validated or internal action and returns any
// follow-up actions to enqueue
func (g *Game) reduce(s *State, action Action) []Action {
	g.logger.WithFields(logrus.Fields{
		"type":  action.Type,
		"stage": s.Stage,
	}).Debug("applying action")

	switch action.Type {
	case ActionRestore:
		return g.reduceRestore(s)
	case ActionDeal:
		return g.reduceDeal(s, action)
	case ActionInsurance:
		return g.reduceInsurance(s, action)
	case ActionSplit:
		return g.reduceSplit(s, action)
	case ActionHit:
		return g.reduceHit(s, action)
	case ActionDouble:
		return g.reduceDouble(s, action)
	case ActionStand:
		return g.reduceStand(s, action)
	case ActionSurrender:
		return g.reduceSurrender(s, action)
	case ActionShowdown:
		return g.reduceShowdown(s, action)
	case ActionDealerHit:
		return g.reduceDealerHit(s, action)
	case actionDealerPlay:
		return g.reduceDealerPlay(s)
	case actionSettle:
		s.settle()
		return nil
	default:
		// permissive fallback: unmatched actions (INVALID included) land in
		// the history without altering the stage
		s.appendHistory(action, 0, nil)
		return nil
	}
}

// draw removes the next card from the shoe. An exhausted shoe is replaced
// with a freshly shuffled one mid-round.
func (g *Game) draw(s *State) *deck.Card {
	shoe := &deck.Shoe{Cards: s.Deck}

	card, err := shoe.Draw()
	if err == deck.ErrEndOfShoe {
		shoe = deck.NewShoe(s.Rules.NumberOfDecks, g.rng)
		card, _ = shoe.Draw()
	}

	s.Deck = shoe.Cards
	return card
}

func (g *Game) reduceRestore(s *State) []Action {
	*s = newState(s.Rules, g.rng)
	return nil
}

func (g *Game) reduceDeal(s *State, action Action) []Action {
	// a deal from the done stage starts a fresh round on the remaining shoe
	if s.Stage == StageDone {
		remaining := s.Deck
		*s = State{
			Stage:             StageReady,
			Deck:              remaining,
			AvailableSideBets: DefaultSideBets(true),
			Rules:             s.Rules,
		}
	}

	bet := action.Payload.Bet
	playerCards := []*deck.Card{g.draw(s), g.draw(s)}
	dealerCards := []*deck.Card{g.draw(s)}
	holeCard := g.draw(s)

	s.InitialBet = bet
	s.DealerCards = dealerCards
	s.DealerHoleCard = holeCard
	s.DealerValue = Calculate(dealerCards)
	s.DealerHasBlackjack = false
	s.DealerHasBusted = false

	right := enforceRules(getHandInfoAfterDeal(playerCards, dealerCards, bet), s.Rules, false)
	s.HandInfo = HandInfo{Right: right}
	s.SideBetsInfo = getSideBetsInfo(s.AvailableSideBets, action.Payload.SideBets, playerCards, dealerCards)
	s.Stage = StagePlayerTurnRight

	revealed := append(copyCards(playerCards), dealerCards[0])
	s.appendHistory(action, bet, revealed)

	if dealerCards[0].IsAce() && s.Rules.InsuranceAllowed {
		// suspend the turn until the insurance decision
		right.AvailableActions = AvailableActions{Insurance: true}
		return nil
	}

	if right.HasBlackjack || IsBlackjack([]*deck.Card{dealerCards[0], holeCard}) {
		s.Stage = StageShowdown
		return []Action{Showdown(false)}
	}

	return nil
}

func (g *Game) reduceInsurance(s *State, action Action) []Action {
	stake := 0.0
	if action.Payload != nil && action.Payload.Bet > 0 {
		stake = action.Payload.Bet
		if max := s.InitialBet / 2; stake > max {
			stake = max
		}
	}

	fullDealerCards := []*deck.Card{s.DealerCards[0], s.DealerHoleCard}
	dealerHasBlackjack := IsBlackjack(fullDealerCards)

	right := enforceRules(getHandInfoAfterInsurance(s.HandInfo.Right.Cards, s.DealerCards), s.Rules, false)
	right.Bet = s.InitialBet
	right.InsuranceValue = stake
	s.HandInfo.Right = right

	if s.SideBetsInfo == nil {
		s.SideBetsInfo = &SideBetsInfo{}
	}
	s.SideBetsInfo.Insurance = &InsurancePayout{
		Risk: stake,
		Win:  GetInsurancePrize(stake, fullDealerCards),
	}

	s.DealerHasBlackjack = dealerHasBlackjack
	s.appendHistory(action, stake, nil)

	if dealerHasBlackjack || right.HasBlackjack {
		s.HandInfo.Right = getHandInfoAfterStand(right)
		s.Stage = StageShowdown
		return []Action{Showdown(false)}
	}

	return nil
}

func (g *Game) reduceSplit(s *State, action Action) []Action {
	right := s.HandInfo.Right
	forceShowdown := s.Rules.ShowdownAfterAceSplit && right.Cards[0].IsAce()

	leftCards := []*deck.Card{right.Cards[0], g.draw(s)}
	rightCards := []*deck.Card{right.Cards[1], g.draw(s)}

	left := enforceRules(getHandInfoAfterSplit(leftCards, s.DealerCards, s.InitialBet), s.Rules, true)
	newRight := enforceRules(getHandInfoAfterSplit(rightCards, s.DealerCards, s.InitialBet), s.Rules, true)

	s.HandInfo = HandInfo{Left: left, Right: newRight}
	s.appendHistory(action, s.InitialBet, []*deck.Card{leftCards[1], rightCards[1]})

	if forceShowdown {
		s.HandInfo.Left = getHandInfoAfterStand(left)
		s.HandInfo.Right = getHandInfoAfterStand(newRight)
		s.Stage = StageShowdown
		return []Action{Showdown(false)}
	}

	switch {
	case !newRight.Closed:
		s.Stage = StagePlayerTurnRight
	case !left.Closed:
		s.Stage = StagePlayerTurnLeft
	default:
		s.Stage = StageShowdown
		return []Action{Showdown(false)}
	}

	return nil
}

func (g *Game) reduceHit(s *State, action Action) []Action {
	position := positionOf(action)
	hand := s.HandInfo.get(position)

	card := g.draw(s)
	cards := append(copyCards(hand.Cards), card)

	hasSplit := s.hasSplit()
	next := enforceRules(getHandInfoAfterHit(cards, s.DealerCards, s.InitialBet, hasSplit), s.Rules, hasSplit)
	next.InsuranceValue = hand.InsuranceValue
	s.HandInfo.set(position, next)
	s.appendHistory(action, 0, []*deck.Card{card})

	if !next.Closed {
		if position == Left {
			s.Stage = StagePlayerTurnLeft
		} else {
			s.Stage = StagePlayerTurnRight
		}
		return nil
	}

	if position == Right && hasSplit && !s.HandInfo.Left.Closed {
		s.Stage = StagePlayerTurnLeft
		return nil
	}

	s.Stage = StageShowdown
	return []Action{Showdown(false)}
}

func (g *Game) reduceDouble(s *State, action Action) []Action {
	position := positionOf(action)
	hand := s.HandInfo.get(position)

	card := g.draw(s)
	cards := append(copyCards(hand.Cards), card)

	next := getHandInfoAfterDouble(cards, s.DealerCards, s.InitialBet, s.hasSplit())
	next.InsuranceValue = hand.InsuranceValue
	s.HandInfo.set(position, next)
	s.appendHistory(action, s.InitialBet, []*deck.Card{card})

	// the internal stand advances the stage
	return []Action{Stand(position)}
}

func (g *Game) reduceStand(s *State, action Action) []Action {
	position := positionOf(action)
	s.HandInfo.set(position, getHandInfoAfterStand(s.HandInfo.get(position)))
	s.appendHistory(action, 0, nil)

	if position == Right && s.hasSplit() && !s.HandInfo.Left.Closed {
		s.Stage = StagePlayerTurnLeft
		return nil
	}

	s.Stage = StageShowdown
	return []Action{Showdown(false)}
}

func (g *Game) reduceSurrender(s *State, action Action) []Action {
	s.HandInfo.Right = getHandInfoAfterSurrender(s.HandInfo.Right)
	s.appendHistory(action, 0, nil)
	s.Stage = StageShowdown

	// both player hands are decided; only the hole card gets revealed
	return []Action{Showdown(true)}
}

func (g *Game) reduceShowdown(s *State, action Action) []Action {
	holeCardOnly := action.Payload != nil && action.Payload.DealerHoleCardOnly
	s.appendHistory(action, 0, nil)
	s.Stage = StageDealerTurn

	out := []Action{DealerHit(s.DealerHoleCard)}
	if holeCardOnly || s.allPlayerHandsDecided() {
		return append(out, Action{Type: actionSettle})
	}

	return append(out, Action{Type: actionDealerPlay})
}

func (g *Game) reduceDealerHit(s *State, action Action) []Action {
	var card *deck.Card
	if action.Payload != nil && action.Payload.DealerHoleCard != nil {
		card = action.Payload.DealerHoleCard
	} else {
		card = g.draw(s)
	}

	s.DealerCards = append(copyCards(s.DealerCards), card)
	s.DealerValue = Calculate(s.DealerCards)
	s.DealerHasBlackjack = IsBlackjack(s.DealerCards)
	s.DealerHasBusted = CheckForBusted(s.DealerValue)
	s.appendHistory(action, 0, []*deck.Card{card})

	if s.DealerValue.Hi < 17 {
		s.Stage = StageDealerTurn
		return nil
	}

	if s.DealerHasBlackjack || s.DealerHasBusted {
		s.Stage = StageDone
		return nil
	}

	if !s.Rules.StandOnSoft17 && IsSoftHand(s.DealerCards) {
		s.Stage = StageDealerTurn
		return nil
	}

	// standing now while still below the best live player hand loses
	// outright, so the dealer keeps drawing until matching or exceeding it
	if s.DealerValue.Hi < s.bestLivePlayerValue() {
		s.Stage = StageDealerTurn
		return nil
	}

	s.Stage = StageDone
	return nil
}

func (g *Game) reduceDealerPlay(s *State) []Action {
	if s.Stage == StageDealerTurn {
		return []Action{DealerHit(nil), {Type: actionDealerPlay}}
	}

	return []Action{{Type: actionSettle}}
}

func positionOf(action Action) Position {
	if action.Payload != nil && action.Payload.Position == Left {
		return Left
	}

	return Right
}
