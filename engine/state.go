// Package engine implements the Fiva board game rules.
//
// The engine is a self-contained, allocation-light state machine: board
// chips, completed lines, deck lifecycle, hands, and turn order all live in
// one flat GameState value. It is conceptually single-writer; callers that
// expose it across goroutines wrap it behind a mutex (see internal/game).
package engine

// MaxFivas bounds the completed-line list. A placement adds at most four
// lines and the game ends at the win threshold, so the real ceiling is far
// lower; the slack absorbs simultaneous multi-axis completions.
const MaxFivas = 16

// PlayerState holds one seat's hand.
type PlayerState struct {
	Hand    [MaxHandSize]Card
	HandLen uint8
}

// CompletedFiva records one completed five-in-a-row: its five cell indices
// in line order, the owning team, and the axis it lies on. Records are
// append-only for the duration of a game.
type CompletedFiva struct {
	Cells [RunLength]uint8
	Team  Team
	Dir   Direction
}

// Contains reports whether pos is one of the line's five cells.
func (f *CompletedFiva) Contains(pos uint8) bool {
	for _, c := range f.Cells {
		if c == pos {
			return true
		}
	}
	return false
}

// sameCells reports exact cell-set equality with another line. Cells are
// stored in ascending line order, so positional comparison suffices.
func (f *CompletedFiva) sameCells(o *CompletedFiva) bool {
	return f.Cells == o.Cells
}

// Game phase flags.
const (
	FlagStarted  uint16 = 1 << 0
	FlagGameOver uint16 = 1 << 1
)

// GameState is the complete authoritative state of one Fiva game.
type GameState struct {
	Layout *BoardLayout

	Chips     [BoardCells]Team // cell → occupying team, NoTeam = empty
	Covers    [BoardCells]Card // cell → card played to put the chip there
	protected [2]uint64        // bitset: cells inside a completed line

	Fivas     [MaxFivas]CompletedFiva
	FivaLen   uint8
	FivaCount [MaxTeams]uint8

	Deck    Deck
	Players [MaxPlayers]PlayerState

	Config        Config
	CurrentPlayer uint8
	Flags         uint16
	Winner        Team
}

// NewGame builds a GameState with the given seed, configuration, and layout.
// The config is normalized and the deck constructed; call StartNewGame to
// shuffle, deal, and enter play. GameState is a value type: it may be
// copied with = (the deck's RNG state travels with it).
func NewGame(seed uint64, cfg Config, layout *BoardLayout) GameState {
	var g GameState
	if seed == 0 {
		seed = 1 // xorshift can't start at 0
	}
	g.Deck.rng = xorshift{s: seed}
	cfg.Normalize()
	g.Config = cfg
	if layout == nil {
		layout = LayoutClassic
	}
	g.Layout = layout
	g.Winner = NoTeam
	for i := range g.Chips {
		g.Chips[i] = NoTeam
		g.Covers[i] = EmptyCard
	}
	return g
}

// ---------------------------------------------------------------------------
// Query surface — read-only, safe to call between turns.
// ---------------------------------------------------------------------------

// IsStarted reports whether a game is in progress.
func (g *GameState) IsStarted() bool { return g.Flags&FlagStarted != 0 }

// IsGameOver reports whether a winner has been declared.
func (g *GameState) IsGameOver() bool { return g.Flags&FlagGameOver != 0 }

// IsPositionOccupied reports whether a chip rests at pos.
func (g *GameState) IsPositionOccupied(pos uint8) bool {
	return pos < BoardCells && g.Chips[pos] != NoTeam
}

// ChipAt returns the team occupying pos, or NoTeam.
func (g *GameState) ChipAt(pos uint8) Team {
	if pos >= BoardCells {
		return NoTeam
	}
	return g.Chips[pos]
}

// IsProtected reports whether pos belongs to a completed line and is
// therefore immune to removal for the rest of the game.
func (g *GameState) IsProtected(pos uint8) bool {
	return g.protected[pos/64]>>(pos%64)&1 == 1
}

func (g *GameState) protect(pos uint8) {
	g.protected[pos/64] |= 1 << (pos % 64)
}

// TeamOfPlayer returns the team of the given seat.
func (g *GameState) TeamOfPlayer(player uint8) Team {
	if player >= g.Config.NumPlayers {
		return NoTeam
	}
	return g.Config.TeamOf[player]
}

// CurrentTeam returns the acting seat's team.
func (g *GameState) CurrentTeam() Team { return g.TeamOfPlayer(g.CurrentPlayer) }

// Hand returns a copy of the given seat's held cards.
func (g *GameState) Hand(player uint8) []Card {
	if player >= g.Config.NumPlayers {
		return nil
	}
	p := &g.Players[player]
	out := make([]Card, p.HandLen)
	copy(out, p.Hand[:p.HandLen])
	return out
}

// TeamFivaCount returns team's completed-line count.
func (g *GameState) TeamFivaCount(team Team) uint8 {
	if uint8(team) >= MaxTeams {
		return 0
	}
	return g.FivaCount[team]
}

// CompletedFivas returns a copy of the completed-line records.
func (g *GameState) CompletedFivas() []CompletedFiva {
	out := make([]CompletedFiva, g.FivaLen)
	copy(out, g.Fivas[:g.FivaLen])
	return out
}
