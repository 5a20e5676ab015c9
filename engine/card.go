package engine

// Suit constants — packed into upper 4 bits of Card.
const (
	SuitHearts   uint8 = 0
	SuitDiamonds uint8 = 1
	SuitClubs    uint8 = 2
	SuitSpades   uint8 = 3
)

// Rank constants — packed into lower 4 bits of Card.
const (
	RankAce   uint8 = 0
	RankTwo   uint8 = 1
	RankThree uint8 = 2
	RankFour  uint8 = 3
	RankFive  uint8 = 4
	RankSix   uint8 = 5
	RankSeven uint8 = 6
	RankEight uint8 = 7
	RankNine  uint8 = 8
	RankTen   uint8 = 9
	RankJack  uint8 = 10
	RankQueen uint8 = 11
	RankKing  uint8 = 12
)

// Card is a packed uint8: upper 4 bits = suit, lower 4 bits = rank.
// The double deck holds two indistinguishable copies of every card,
// so a Card is an identity-free value and piles are multisets.
type Card uint8

// EmptyCard represents the absence of a card (empty hand slot, corner cell).
const EmptyCard Card = 0xFF

// NewCard constructs a Card from suit and rank.
func NewCard(suit, rank uint8) Card {
	return Card((suit << 4) | (rank & 0x0F))
}

// Suit returns the suit bits (upper 4).
func (c Card) Suit() uint8 { return uint8(c) >> 4 }

// Rank returns the rank bits (lower 4).
func (c Card) Rank() uint8 { return uint8(c) & 0x0F }

// IsJack reports whether the card is any Jack.
func (c Card) IsJack() bool { return c != EmptyCard && c.Rank() == RankJack }

// IsTwoEyedJack reports whether the card is a wild-placement Jack
// (diamonds or clubs): playable on any empty cell.
func (c Card) IsTwoEyedJack() bool {
	return c.IsJack() && (c.Suit() == SuitDiamonds || c.Suit() == SuitClubs)
}

// IsOneEyedJack reports whether the card is a removal Jack
// (spades or hearts): removes an unprotected opponent chip.
func (c Card) IsOneEyedJack() bool {
	return c.IsJack() && (c.Suit() == SuitSpades || c.Suit() == SuitHearts)
}

// rankRunes maps rank constants to their single-rune code.
var rankRunes = [13]byte{'A', '2', '3', '4', '5', '6', '7', '8', '9', 'T', 'J', 'Q', 'K'}

// suitRunes maps suit constants to their single-rune code.
var suitRunes = [4]byte{'H', 'D', 'C', 'S'}

// String renders the card as a two-rune code ("AS", "TD", "QC"), or "--"
// for EmptyCard.
func (c Card) String() string {
	if c == EmptyCard {
		return "--"
	}
	r, s := c.Rank(), c.Suit()
	if r > RankKing || s > SuitSpades {
		return "??"
	}
	return string([]byte{rankRunes[r], suitRunes[s]})
}

// ParseCard parses a two-rune card code as produced by String.
// "--" parses to EmptyCard. The second result is false on malformed input.
func ParseCard(s string) (Card, bool) {
	if s == "--" {
		return EmptyCard, true
	}
	if len(s) != 2 {
		return EmptyCard, false
	}
	var rank, suit uint8 = 0xFF, 0xFF
	for i, b := range rankRunes {
		if b == s[0] {
			rank = uint8(i)
		}
	}
	for i, b := range suitRunes {
		if b == s[1] {
			suit = uint8(i)
		}
	}
	if rank == 0xFF || suit == 0xFF {
		return EmptyCard, false
	}
	return NewCard(suit, rank), true
}
