package engine

// DeckSize is the full double deck: two standard 52-card decks.
// Jacks are drawable and playable even though they never rest on the board.
const DeckSize = 104

// Deck manages the draw pile, the discard pile, and the in-play multiset.
// A card is "in play" once drawn and until discarded: held in a hand or
// resting on the board. The three collections always partition the fixed
// 104-card multiset.
//
// Flat arrays, no allocation after construction (same shape as GameState).
type Deck struct {
	Draw       [DeckSize]Card
	DrawLen    uint8
	DiscardPile [DeckSize]Card
	DiscardLen  uint8
	InPlay     [DeckSize]Card
	InPlayLen  uint8

	// OnBoard tracks the subset of in-play cards currently resting on
	// board cells. Availability bookkeeping only; board geometry lives
	// in GameState.
	OnBoard    [DeckSize]Card
	OnBoardLen uint8

	rng xorshift
}

// xorshift is the engine's PRNG (xorshift64). Callers that need a
// cryptographically strong shuffle seed it from crypto/rand; tests seed it
// with a constant for reproducibility.
type xorshift struct {
	s uint64
}

func (x *xorshift) next() uint64 {
	v := x.s
	v ^= v << 13
	v ^= v >> 7
	v ^= v << 17
	x.s = v
	return v
}

// randN returns an unbiased value in [0, n) via rejection sampling, so
// Fisher-Yates over the 104-card deck gives every permutation equal weight.
func (x *xorshift) randN(n uint64) uint64 {
	limit := (^uint64(0) / n) * n
	for {
		v := x.next()
		if v < limit {
			return v % n
		}
	}
}

// ShuffleNewGame clears the discard, in-play, and on-board sets, rebuilds
// the full double deck, and shuffles it with an unbiased Fisher-Yates.
func (d *Deck) ShuffleNewGame() {
	d.DiscardLen = 0
	d.InPlayLen = 0
	d.OnBoardLen = 0

	idx := 0
	for copies := 0; copies < 2; copies++ {
		for suit := uint8(0); suit <= SuitSpades; suit++ {
			for rank := uint8(0); rank <= RankKing; rank++ {
				d.Draw[idx] = NewCard(suit, rank)
				idx++
			}
		}
	}
	d.DrawLen = DeckSize

	d.shuffleDraw()
}

// shuffleDraw runs Fisher-Yates over the current draw pile.
func (d *Deck) shuffleDraw() {
	for i := int(d.DrawLen) - 1; i > 0; i-- {
		j := int(d.rng.randN(uint64(i + 1)))
		d.Draw[i], d.Draw[j] = d.Draw[j], d.Draw[i]
	}
}

// DrawCard removes and returns the top card of the draw pile, moving it to
// the in-play set. When the draw pile is empty and the discard pile is not,
// the discard pile is reshuffled into the draw pile first. Returns
// (EmptyCard, false) only when both piles are exhausted.
func (d *Deck) DrawCard() (Card, bool) {
	if d.DrawLen == 0 {
		if d.DiscardLen == 0 {
			return EmptyCard, false
		}
		copy(d.Draw[:d.DiscardLen], d.DiscardPile[:d.DiscardLen])
		d.DrawLen = d.DiscardLen
		d.DiscardLen = 0
		d.shuffleDraw()
	}
	d.DrawLen--
	c := d.Draw[d.DrawLen]
	d.InPlay[d.InPlayLen] = c
	d.InPlayLen++
	return c, true
}

// DrawCards draws up to n cards into dst, returning the number actually
// drawn. Fewer than n means the deck and discard are both exhausted.
func (d *Deck) DrawCards(n uint8, dst []Card) uint8 {
	var drawn uint8
	for drawn < n {
		c, ok := d.DrawCard()
		if !ok {
			break
		}
		dst[drawn] = c
		drawn++
	}
	return drawn
}

// Discard moves one in-play copy of c to the discard pile. Discarding a
// card that is not in play still appends it, keeping the caller honest via
// VerifyIntegrity rather than silently dropping the card.
func (d *Deck) Discard(c Card) {
	removeOne(d.InPlay[:], &d.InPlayLen, c)
	removeOne(d.OnBoard[:], &d.OnBoardLen, c)
	d.DiscardPile[d.DiscardLen] = c
	d.DiscardLen++
}

// PlaceOnBoard records one in-play copy of c as resting on the board.
func (d *Deck) PlaceOnBoard(c Card) {
	d.OnBoard[d.OnBoardLen] = c
	d.OnBoardLen++
}

// RemoveFromBoard drops one on-board record of c (the card stays in play,
// back in the owner context the caller dictates).
func (d *Deck) RemoveFromBoard(c Card) {
	removeOne(d.OnBoard[:], &d.OnBoardLen, c)
}

// removeOne deletes the first occurrence of c from a length-tracked array.
func removeOne(arr []Card, length *uint8, c Card) bool {
	for i := uint8(0); i < *length; i++ {
		if arr[i] == c {
			*length--
			arr[i] = arr[*length]
			return true
		}
	}
	return false
}

// VerifyIntegrity checks the 104-card invariant: the union of draw, discard,
// and in-play holds exactly two copies of every card. A false return is a
// programming defect, not a recoverable game condition.
func (d *Deck) VerifyIntegrity() bool {
	if int(d.DrawLen)+int(d.DiscardLen)+int(d.InPlayLen) != DeckSize {
		return false
	}
	var counts [64]uint8
	for i := uint8(0); i < d.DrawLen; i++ {
		counts[d.Draw[i]]++
	}
	for i := uint8(0); i < d.DiscardLen; i++ {
		counts[d.DiscardPile[i]]++
	}
	for i := uint8(0); i < d.InPlayLen; i++ {
		counts[d.InPlay[i]]++
	}
	for suit := uint8(0); suit <= SuitSpades; suit++ {
		for rank := uint8(0); rank <= RankKing; rank++ {
			if counts[NewCard(suit, rank)] != 2 {
				return false
			}
		}
	}
	return true
}
