package engine

// RuleError enumerates every way a play can be rejected. All values are
// recoverable: the caller re-prompts, no state has changed.
type RuleError uint8

const (
	ErrInvalidPosition RuleError = iota + 1
	ErrPositionOccupied
	ErrCardMismatch
	ErrNoChipToRemove
	ErrCannotRemoveOwnChip
	ErrChipProtected
	ErrCardNotInHand
	ErrGameOver
	ErrGameNotStarted
	ErrGameInProgress
)

func (e RuleError) Error() string {
	switch e {
	case ErrInvalidPosition:
		return "position outside the board"
	case ErrPositionOccupied:
		return "position already occupied"
	case ErrCardMismatch:
		return "card does not match the board cell"
	case ErrNoChipToRemove:
		return "no opponent chip at position"
	case ErrCannotRemoveOwnChip:
		return "cannot remove your own team's chip"
	case ErrChipProtected:
		return "chip is part of a completed fiva"
	case ErrCardNotInHand:
		return "card not in hand"
	case ErrGameOver:
		return "game is over"
	case ErrGameNotStarted:
		return "game has not started"
	case ErrGameInProgress:
		return "game is in progress"
	}
	return "invalid play"
}

// Action is the board mutation a legal play performs.
type Action uint8

const (
	ActionPlaceChip  Action = iota // place acting team's chip at the cell
	ActionRemoveChip               // remove the occupying chip from the cell
)

// ValidatePlay classifies card against pos for the acting team and returns
// the action a legal play performs. Pure: no state is touched.
//
// Two-eyed Jacks (diamonds/clubs) place on any empty cell. One-eyed Jacks
// (spades/hearts) remove an unprotected chip of another team. Normal cards
// place on an empty cell printed with the same card.
func (g *GameState) ValidatePlay(card Card, pos uint8, team Team) (Action, error) {
	if pos >= BoardCells {
		return 0, ErrInvalidPosition
	}
	occupant := g.Chips[pos]

	switch {
	case card.IsTwoEyedJack():
		if occupant != NoTeam {
			return 0, ErrPositionOccupied
		}
		if IsCorner(pos) {
			// Corners count for every team already; nothing to place.
			return 0, ErrPositionOccupied
		}
		return ActionPlaceChip, nil

	case card.IsOneEyedJack():
		if occupant == NoTeam {
			return 0, ErrNoChipToRemove
		}
		if occupant == team {
			return 0, ErrCannotRemoveOwnChip
		}
		if g.IsProtected(pos) {
			return 0, ErrChipProtected
		}
		return ActionRemoveChip, nil

	default:
		if g.Layout.CardAt(pos) != card {
			return 0, ErrCardMismatch
		}
		if occupant != NoTeam {
			return 0, ErrPositionOccupied
		}
		return ActionPlaceChip, nil
	}
}

// ValidPositions returns the set of cells where card is playable for team,
// as a 100-bit mask. Kept cell-for-cell equivalent to ValidatePlay.
func (g *GameState) ValidPositions(card Card, team Team) [2]uint64 {
	var mask [2]uint64
	for pos := uint8(0); pos < BoardCells; pos++ {
		if _, err := g.ValidatePlay(card, pos, team); err == nil {
			mask[pos/64] |= 1 << (pos % 64)
		}
	}
	return mask
}

// ValidPositionsList returns ValidPositions as a slice (allocates).
func (g *GameState) ValidPositionsList(card Card, team Team) []uint8 {
	mask := g.ValidPositions(card, team)
	var out []uint8
	for pos := uint8(0); pos < BoardCells; pos++ {
		if mask[pos/64]>>(pos%64)&1 == 1 {
			out = append(out, pos)
		}
	}
	return out
}

// IsDeadCard reports whether a normal card has both of its board cells
// occupied (by any team), leaving it unplayable. Jacks are never dead.
func (g *GameState) IsDeadCard(card Card) bool {
	if card == EmptyCard || card.IsJack() {
		return false
	}
	occ, ok := g.Layout.Occurrences(card)
	if !ok {
		return false
	}
	return g.Chips[occ[0]] != NoTeam && g.Chips[occ[1]] != NoTeam
}

// handIndexOf returns the first index of card in the seat's hand, or false.
func (p *PlayerState) handIndexOf(card Card) (uint8, bool) {
	for i := uint8(0); i < p.HandLen; i++ {
		if p.Hand[i] == card {
			return i, true
		}
	}
	return 0, false
}

// removeAt deletes the hand slot at idx, compacting leftward.
func (p *PlayerState) removeAt(idx uint8) Card {
	c := p.Hand[idx]
	for i := idx; i+1 < p.HandLen; i++ {
		p.Hand[i] = p.Hand[i+1]
	}
	p.HandLen--
	p.Hand[p.HandLen] = EmptyCard
	return c
}
