package engine

const (
	MinPlayers  = 2
	MaxPlayers  = 12
	MinTeams    = 2
	MaxTeams    = 3
	MaxHandSize = 7
)

// Team identifies a chip color. Valid teams are 0..NumTeams-1.
type Team uint8

// NoTeam marks an empty cell or the absence of a winner.
const NoTeam Team = 0xFF

// Config holds the game setup: seat count, team count, seat→team
// assignment, and display names. Zero-value fields are normalized
// by Normalize before play.
type Config struct {
	NumPlayers uint8            // 2–12, clamped
	NumTeams   uint8            // 2–3, clamped
	TeamOf     [MaxPlayers]Team // seat → team; NoTeam = assign round-robin
	Names      [MaxPlayers]string
}

// DefaultConfig returns a two-player, two-team setup.
func DefaultConfig() Config {
	var c Config
	c.NumPlayers = 2
	c.NumTeams = 2
	for i := range c.TeamOf {
		c.TeamOf[i] = NoTeam
	}
	return c
}

// Normalize clamps player and team counts into range and fills any
// unassigned or out-of-range seat with a round-robin team.
func (c *Config) Normalize() {
	if c.NumPlayers < MinPlayers {
		c.NumPlayers = MinPlayers
	}
	if c.NumPlayers > MaxPlayers {
		c.NumPlayers = MaxPlayers
	}
	if c.NumTeams < MinTeams {
		c.NumTeams = MinTeams
	}
	if c.NumTeams > MaxTeams {
		c.NumTeams = MaxTeams
	}
	for p := uint8(0); p < c.NumPlayers; p++ {
		if c.TeamOf[p] == NoTeam || uint8(c.TeamOf[p]) >= c.NumTeams {
			c.TeamOf[p] = Team(p % c.NumTeams)
		}
	}
}

// CardsPerPlayer returns the dealt hand size for the given seat count.
// Sizes shrink as seats grow so the double deck lasts a full game.
func CardsPerPlayer(numPlayers uint8) uint8 {
	switch {
	case numPlayers <= 2:
		return 7
	case numPlayers <= 4:
		return 6
	case numPlayers <= 6:
		return 5
	case numPlayers <= 9:
		return 4
	default:
		return 3
	}
}

// FivasToWin returns the number of completed lines a team needs:
// two head-to-head teams race to 2, three teams race to 1.
func (c *Config) FivasToWin() uint8 {
	if c.NumTeams == 2 {
		return 2
	}
	return 1
}
