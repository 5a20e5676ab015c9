package engine

import "testing"

func newTestDeck(seed uint64) (*Deck, *xorshift) {
	d := &Deck{rng: xorshift{s: seed}}
	d.ShuffleNewGame()
	return d, &xorshift{s: seed * 2654435761}
}

func TestShuffleNewGameBuildsDoubleDeck(t *testing.T) {
	d, _ := newTestDeck(42)
	if d.DrawLen != DeckSize {
		t.Fatalf("DrawLen = %d, want %d", d.DrawLen, DeckSize)
	}
	if !d.VerifyIntegrity() {
		t.Fatal("fresh deck fails integrity")
	}
	var counts [64]uint8
	for i := uint8(0); i < d.DrawLen; i++ {
		counts[d.Draw[i]]++
	}
	for suit := uint8(0); suit <= SuitSpades; suit++ {
		for rank := uint8(0); rank <= RankKing; rank++ {
			if n := counts[NewCard(suit, rank)]; n != 2 {
				t.Errorf("card %s: %d copies, want 2", NewCard(suit, rank), n)
			}
		}
	}
}

// TestDeckConservation drives a mixed draw/place/discard sequence and checks
// the 104-card invariant after every step.
func TestDeckConservation(t *testing.T) {
	d, rng := newTestDeck(7)
	var held []Card
	for step := 0; step < 400; step++ {
		switch rng.randN(3) {
		case 0:
			if c, ok := d.DrawCard(); ok {
				held = append(held, c)
			}
		case 1:
			if len(held) > 0 {
				d.PlaceOnBoard(held[len(held)-1])
				held = held[:len(held)-1]
			}
		case 2:
			if d.InPlayLen > 0 {
				d.Discard(d.InPlay[0])
				// Drop a matching held copy if we have one.
				for i, c := range held {
					if c == d.DiscardPile[d.DiscardLen-1] {
						held = append(held[:i], held[i+1:]...)
						break
					}
				}
			}
		}
		if !d.VerifyIntegrity() {
			t.Fatalf("integrity broken at step %d (draw=%d discard=%d inplay=%d)",
				step, d.DrawLen, d.DiscardLen, d.InPlayLen)
		}
	}
}

// TestAutoReshuffle empties the draw pile, discards everything, and draws
// again: the discard pile must fold back into the draw pile.
func TestAutoReshuffle(t *testing.T) {
	d, _ := newTestDeck(3)
	for {
		c, ok := d.DrawCard()
		if !ok {
			t.Fatal("deck exhausted before discards existed")
		}
		d.Discard(c)
		if d.DrawLen == 0 {
			break
		}
	}
	if d.DiscardLen != DeckSize {
		t.Fatalf("DiscardLen = %d, want %d", d.DiscardLen, DeckSize)
	}
	c, ok := d.DrawCard()
	if !ok {
		t.Fatal("draw after reshuffle failed")
	}
	if c == EmptyCard {
		t.Fatal("reshuffle drew EmptyCard")
	}
	if d.DrawLen != DeckSize-1 || d.DiscardLen != 0 {
		t.Fatalf("after reshuffle: draw=%d discard=%d", d.DrawLen, d.DiscardLen)
	}
	if !d.VerifyIntegrity() {
		t.Fatal("integrity broken after reshuffle")
	}
}

func TestDrawExhaustion(t *testing.T) {
	d, _ := newTestDeck(9)
	for i := 0; i < DeckSize; i++ {
		if _, ok := d.DrawCard(); !ok {
			t.Fatalf("draw %d failed with cards remaining", i)
		}
	}
	if _, ok := d.DrawCard(); ok {
		t.Fatal("draw succeeded with both piles empty")
	}
	var buf [5]Card
	if n := d.DrawCards(5, buf[:]); n != 0 {
		t.Fatalf("DrawCards on empty deck returned %d", n)
	}
}

func TestDrawCardsPartial(t *testing.T) {
	d, _ := newTestDeck(11)
	for i := 0; i < DeckSize-3; i++ {
		d.DrawCard()
	}
	var buf [7]Card
	if n := d.DrawCards(7, buf[:]); n != 3 {
		t.Fatalf("DrawCards = %d, want 3", n)
	}
}

// TestShuffleUniformity is a statistical sanity check, not a proof: over
// many shuffles, a fixed card value should land in every region of the
// deck with roughly equal frequency.
func TestShuffleUniformity(t *testing.T) {
	const trials = 2600
	target := NewCard(SuitSpades, RankAce)
	var hits [DeckSize]int
	d := &Deck{rng: xorshift{s: 12345}}
	for trial := 0; trial < trials; trial++ {
		d.ShuffleNewGame()
		for i := 0; i < DeckSize; i++ {
			if d.Draw[i] == target {
				hits[i]++
			}
		}
	}
	// Two copies per shuffle: expected hits per slot = 2*trials/104 = 50.
	expected := float64(2*trials) / float64(DeckSize)
	chi := 0.0
	for _, h := range hits {
		diff := float64(h) - expected
		chi += diff * diff / expected
	}
	// 103 degrees of freedom; p=0.001 critical value ≈ 159. Loose bound.
	if chi > 170 {
		t.Errorf("chi-square = %.1f, suspiciously non-uniform", chi)
	}
	for i, h := range hits {
		if h == 0 {
			t.Errorf("slot %d never held %s in %d shuffles", i, target, trials)
		}
	}
}

func TestRandNUnbiased(t *testing.T) {
	rng := &xorshift{s: 99}
	var buckets [7]int
	const draws = 70000
	for i := 0; i < draws; i++ {
		buckets[rng.randN(7)]++
	}
	for i, n := range buckets {
		if n < draws/7-1000 || n > draws/7+1000 {
			t.Errorf("bucket %d: %d draws, expected ~%d", i, n, draws/7)
		}
	}
}
