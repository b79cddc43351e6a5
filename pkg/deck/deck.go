package deck

import (
	"errors"

	"blackjack-server/internal/rng"
)

// ErrEndOfShoe is an error when Draw() is attempted and there are no more cards
var ErrEndOfShoe = errors.New("end of shoe reached")

// Shoe represents one or more decks of playing cards
type Shoe struct {
	Cards []*Card `json:"cards"`
}

// NewDeck returns the 52 cards of a single deck, unshuffled
func NewDeck() []*Card {
	cards := make([]*Card, 0, 52)
	for _, suit := range []Suit{Hearts, Diamonds, Clubs, Spades} {
		for rank := 1; rank <= 13; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return cards
}

// NewDecks concatenates n unshuffled decks.
// Duplicate cards across decks are expected; card identity is positional.
func NewDecks(n int) []*Card {
	if n < 1 {
		n = 1
	}

	cards := make([]*Card, 0, 52*n)
	for i := 0; i < n; i++ {
		cards = append(cards, NewDeck()...)
	}

	return cards
}

// Shuffle returns a uniformly random permutation of the cards.
// The input slice is never mutated.
func Shuffle(cards []*Card, r rng.Generator) []*Card {
	shuffled := make([]*Card, len(cards))
	copy(shuffled, cards)

	for j := len(shuffled) - 1; j > 0; j-- {
		i := r.Intn(j + 1)

		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}

// NewShoe returns a shuffled shoe built from the specified number of decks
func NewShoe(decks int, r rng.Generator) *Shoe {
	return &Shoe{Cards: Shuffle(NewDecks(decks), r)}
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfShoe is returned along with a nil card.
func (s *Shoe) Draw() (*Card, error) {
	if len(s.Cards) == 0 {
		return nil, ErrEndOfShoe
	}

	card := s.Cards[0]
	s.Cards = s.Cards[1:]

	return card, nil
}

// CardsLeft returns the number of cards left in the shoe
func (s *Shoe) CardsLeft() int {
	return len(s.Cards)
}
