package engine

import "testing"

// newPlayingGame returns a started 2-player/2-team game with a fixed seed.
func newPlayingGame(t *testing.T) *GameState {
	t.Helper()
	g := NewGame(42, DefaultConfig(), LayoutClassic)
	g.StartNewGame()
	return &g
}

// allCards enumerates every distinct card value, Jacks included.
func allCards() []Card {
	var out []Card
	for suit := uint8(0); suit <= SuitSpades; suit++ {
		for rank := uint8(0); rank <= RankKing; rank++ {
			out = append(out, NewCard(suit, rank))
		}
	}
	return out
}

// TestValidatorEnumeratorEquivalence checks, for every card and every cell,
// that ValidatePlay's verdict matches membership in ValidPositions. Run on
// an empty board, a mid-game board, and a board with protected chips.
func TestValidatorEnumeratorEquivalence(t *testing.T) {
	g := newPlayingGame(t)

	check := func(label string) {
		t.Helper()
		for _, card := range allCards() {
			mask := g.ValidPositions(card, 0)
			for pos := uint8(0); pos < BoardCells; pos++ {
				_, err := g.ValidatePlay(card, pos, 0)
				inMask := mask[pos/64]>>(pos%64)&1 == 1
				if (err == nil) != inMask {
					t.Fatalf("%s: card %s pos %d: validate err=%v, mask=%v",
						label, card, pos, err, inMask)
				}
			}
		}
	}

	check("empty board")

	g.Chips[11] = 0
	g.Chips[12] = 1
	g.Chips[13] = 1
	check("mid-game board")

	for _, pos := range []uint8{21, 22, 23, 24, 25} {
		g.Chips[pos] = 1
		g.protect(pos)
	}
	check("protected chips")
}

func TestValidatePlayNormalCard(t *testing.T) {
	g := newPlayingGame(t)
	card := g.Layout.CardAt(15)

	action, err := g.ValidatePlay(card, 15, 0)
	if err != nil || action != ActionPlaceChip {
		t.Fatalf("matching empty cell: action=%v err=%v", action, err)
	}

	if _, err := g.ValidatePlay(card, 16, 0); err != ErrCardMismatch {
		t.Errorf("mismatched cell: err=%v, want ErrCardMismatch", err)
	}

	g.Chips[15] = 1
	if _, err := g.ValidatePlay(card, 15, 0); err != ErrPositionOccupied {
		t.Errorf("occupied cell: err=%v, want ErrPositionOccupied", err)
	}

	if _, err := g.ValidatePlay(card, 200, 0); err != ErrInvalidPosition {
		t.Errorf("out of bounds: err=%v, want ErrInvalidPosition", err)
	}
}

func TestValidatePlayTwoEyedJack(t *testing.T) {
	g := newPlayingGame(t)
	jack := NewCard(SuitDiamonds, RankJack)

	action, err := g.ValidatePlay(jack, 55, 0)
	if err != nil || action != ActionPlaceChip {
		t.Fatalf("empty cell: action=%v err=%v", action, err)
	}

	g.Chips[55] = 1
	if _, err := g.ValidatePlay(jack, 55, 0); err != ErrPositionOccupied {
		t.Errorf("occupied cell: err=%v, want ErrPositionOccupied", err)
	}

	// Corners already count for every team.
	if _, err := g.ValidatePlay(jack, CornerTopLeft, 0); err == nil {
		t.Error("wild placement on a corner accepted")
	}

	// Enumeration covers every empty non-corner cell.
	n := len(g.ValidPositionsList(jack, 0))
	if n != BoardCells-4-1 {
		t.Errorf("two-eyed valid cells = %d, want %d", n, BoardCells-4-1)
	}
}

func TestValidatePlayOneEyedJack(t *testing.T) {
	g := newPlayingGame(t)
	jack := NewCard(SuitSpades, RankJack)

	if _, err := g.ValidatePlay(jack, 33, 0); err != ErrNoChipToRemove {
		t.Errorf("empty cell: err=%v, want ErrNoChipToRemove", err)
	}

	g.Chips[33] = 0
	if _, err := g.ValidatePlay(jack, 33, 0); err != ErrCannotRemoveOwnChip {
		t.Errorf("own chip: err=%v, want ErrCannotRemoveOwnChip", err)
	}

	g.Chips[34] = 1
	action, err := g.ValidatePlay(jack, 34, 0)
	if err != nil || action != ActionRemoveChip {
		t.Fatalf("enemy chip: action=%v err=%v", action, err)
	}

	g.protect(34)
	if _, err := g.ValidatePlay(jack, 34, 0); err != ErrChipProtected {
		t.Errorf("protected enemy chip: err=%v, want ErrChipProtected", err)
	}
}

func TestDeadCard(t *testing.T) {
	g := newPlayingGame(t)
	card := NewCard(SuitHearts, RankAce)
	occ, ok := g.Layout.Occurrences(card)
	if !ok {
		t.Fatal("AH missing from layout")
	}

	if g.IsDeadCard(card) {
		t.Fatal("card dead on an empty board")
	}
	g.Chips[occ[0]] = 1
	if g.IsDeadCard(card) {
		t.Fatal("card dead with one occurrence free")
	}
	// Team-agnostic: any chip on the second occurrence kills the card.
	g.Chips[occ[1]] = 0
	if !g.IsDeadCard(card) {
		t.Fatal("card alive with both occurrences occupied")
	}

	// Jacks are never dead.
	for _, j := range []Card{NewCard(SuitDiamonds, RankJack), NewCard(SuitSpades, RankJack)} {
		if g.IsDeadCard(j) {
			t.Errorf("%s reported dead", j)
		}
	}
}
