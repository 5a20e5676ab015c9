// Package agent implements a heuristic opponent for the Fiva engine.
//
// Move choice is a fixed priority ladder, not search: complete a line,
// block an opponent's line, extend the longest own run, spend a Jack,
// otherwise play a uniformly random legal move. Dead cards are flagged
// for discard before anything else. The chooser is pure and synchronous;
// any "thinking delay" belongs to the presentation layer.
package agent

import (
	"math/rand/v2"

	"github.com/dkauper/fiva/engine"
)

// Move is the agent's decision for the acting seat.
type Move struct {
	HandIdx  uint8
	Position uint8
	Discard  bool // true: HandIdx is a dead card to auto-discard
}

// candidate pairs one legal play with its scoring context.
type candidate struct {
	handIdx uint8
	card    engine.Card
	pos     uint8
	action  engine.Action
}

// ChooseMove picks a move for the current player of g. The second result is
// false only when the hand holds no playable card and no dead card, which
// cannot happen on a board with empty cells.
func ChooseMove(g *engine.GameState, rng *rand.Rand) (Move, bool) {
	team := g.CurrentTeam()
	hand := g.Hand(g.CurrentPlayer)

	// Dead cards first: discarding recovers a useless slot for free.
	for i, c := range hand {
		if g.IsDeadCard(c) {
			return Move{HandIdx: uint8(i), Discard: true}, true
		}
	}

	var cands []candidate
	for i, c := range hand {
		for _, pos := range g.ValidPositionsList(c, team) {
			action, err := g.ValidatePlay(c, pos, team)
			if err != nil {
				continue
			}
			cands = append(cands, candidate{uint8(i), c, pos, action})
		}
	}
	if len(cands) == 0 {
		return Move{}, false
	}

	// 1. Immediate completion.
	if m, ok := pickPlacement(g, cands, func(cand candidate) bool {
		return runThrough(g, cand.pos, team, true) >= engine.RunLength
	}); ok {
		return m, true
	}

	// 2. Block: occupy a cell that would finish an opponent line.
	if m, ok := pickPlacement(g, cands, func(cand candidate) bool {
		for t := engine.Team(0); uint8(t) < g.Config.NumTeams; t++ {
			if t == team {
				continue
			}
			if runThrough(g, cand.pos, t, true) >= engine.RunLength {
				return true
			}
		}
		return false
	}); ok {
		return m, true
	}

	// 3. Build: best own run of at least four through the cell.
	best := -1
	bestIdx := -1
	for i, cand := range cands {
		if cand.action != engine.ActionPlaceChip {
			continue
		}
		if r := runThrough(g, cand.pos, team, false); r > best {
			best = r
			bestIdx = i
		}
	}
	if bestIdx >= 0 && best >= engine.RunLength-1 {
		c := cands[bestIdx]
		return Move{HandIdx: c.handIdx, Position: c.pos}, true
	}

	// 4. Spend a Jack: removal of a threatening chip or a wild placement
	// on the current best build cell.
	for _, cand := range cands {
		if cand.action == engine.ActionRemoveChip {
			return Move{HandIdx: cand.handIdx, Position: cand.pos}, true
		}
	}
	if bestIdx >= 0 {
		for _, cand := range cands {
			if cand.card.IsTwoEyedJack() && cand.pos == cands[bestIdx].pos {
				return Move{HandIdx: cand.handIdx, Position: cand.pos}, true
			}
		}
	}

	// 5. Uniformly random legal move.
	c := cands[rng.IntN(len(cands))]
	return Move{HandIdx: c.handIdx, Position: c.pos}, true
}

// pickPlacement returns the first placement candidate satisfying pred.
func pickPlacement(g *engine.GameState, cands []candidate, pred func(candidate) bool) (Move, bool) {
	for _, cand := range cands {
		if cand.action != engine.ActionPlaceChip {
			continue
		}
		if pred(cand) {
			return Move{HandIdx: cand.handIdx, Position: cand.pos}, true
		}
	}
	return Move{}, false
}

// runThrough scores a hypothetical chip for team at pos: the longest
// contiguous same-team run (corners wild) through pos across the four
// axes. With exact, a run counts only when it reaches RunLength.
func runThrough(g *engine.GameState, pos uint8, team engine.Team, exact bool) int {
	if g.ChipAt(pos) != engine.NoTeam {
		return 0
	}
	row, col := engine.RowCol(pos)
	deltas := [4][2]int8{{0, 1}, {1, 0}, {1, 1}, {-1, 1}}
	best := 0
	for _, d := range deltas {
		n := 1 // the hypothetical chip itself
		for _, sign := range [2]int8{1, -1} {
			r, c := int8(row), int8(col)
			for {
				r += d[0] * sign
				c += d[1] * sign
				if r < 0 || r >= engine.BoardSize || c < 0 || c >= engine.BoardSize {
					break
				}
				cell := engine.CellIndex(uint8(r), uint8(c))
				if !engine.IsCorner(cell) && g.ChipAt(cell) != team {
					break
				}
				n++
			}
		}
		if n > best {
			best = n
		}
	}
	if exact && best < engine.RunLength {
		return 0
	}
	return best
}
