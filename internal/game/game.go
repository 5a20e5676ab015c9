// Package game adapts the Fiva engine for concurrent callers: it wraps the
// flat engine.GameState behind a mutex, maps stable player UUIDs to engine
// seats, and turns engine mutations into broadcast events for whatever
// presentation layer is attached.
package game

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dkauper/fiva/engine"
)

// Player holds the service-side identity of one seat.
type Player struct {
	ID   uuid.UUID
	Name string
	Seat uint8
	Team engine.Team
}

// FivaGame is one game instance. All engine access is serialized through
// Mu; the engine itself is single-writer by design.
type FivaGame struct {
	ID uuid.UUID

	Mu      sync.Mutex
	Engine  engine.GameState
	Players []*Player

	playerSeat map[uuid.UUID]uint8

	// Communication callbacks. Nil callbacks are skipped, so a headless
	// driver can run without an observer attached.
	BroadcastFn         func(ev GameEvent)
	BroadcastToPlayerFn func(playerID uuid.UUID, ev GameEvent)

	// OnGameEnd fires once per game when a winner is declared.
	OnGameEnd func(gameID uuid.UUID, winner engine.Team)

	log *logrus.Entry
}

// cryptoSeed returns a shuffle seed from the operating system's CSPRNG.
func cryptoSeed() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand never fails on supported platforms; treat it as a
		// defect rather than falling back to a weak source.
		panic(fmt.Sprintf("crypto/rand: %v", err))
	}
	return binary.LittleEndian.Uint64(b[:])
}

// New creates a FivaGame for the given configuration and layout, seeding
// the engine's shuffle from crypto/rand.
func New(cfg engine.Config, layout *engine.BoardLayout) *FivaGame {
	return NewSeeded(cfg, layout, cryptoSeed())
}

// NewSeeded is New with an explicit seed, for reproducible games and tests.
func NewSeeded(cfg engine.Config, layout *engine.BoardLayout, seed uint64) *FivaGame {
	id := uuid.New()
	g := &FivaGame{
		ID:         id,
		Engine:     engine.NewGame(seed, cfg, layout),
		playerSeat: make(map[uuid.UUID]uint8),
		log:        logrus.WithField("game_id", id),
	}
	cfg = g.Engine.Config // normalized by the engine
	for seat := uint8(0); seat < cfg.NumPlayers; seat++ {
		name := cfg.Names[seat]
		if name == "" {
			name = fmt.Sprintf("Player %d", seat+1)
		}
		p := &Player{ID: uuid.New(), Name: name, Seat: seat, Team: cfg.TeamOf[seat]}
		g.Players = append(g.Players, p)
		g.playerSeat[p.ID] = seat
	}
	return g
}

// broadcast sends ev to all observers.
func (g *FivaGame) broadcast(ev GameEvent) {
	if g.BroadcastFn != nil {
		g.BroadcastFn(ev)
	}
}

// broadcastToPlayer sends ev to a single player's observer.
func (g *FivaGame) broadcastToPlayer(playerID uuid.UUID, ev GameEvent) {
	if g.BroadcastToPlayerFn != nil {
		g.BroadcastToPlayerFn(playerID, ev)
	}
}

func (g *FivaGame) eventUser(seat uint8) *EventUser {
	p := g.Players[seat]
	return &EventUser{ID: p.ID, Name: p.Name}
}

// Start shuffles, deals, and announces the first turn.
func (g *FivaGame) Start() {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	g.Engine.StartNewGame()
	g.log.WithFields(logrus.Fields{
		"players": g.Engine.Config.NumPlayers,
		"teams":   g.Engine.Config.NumTeams,
		"layout":  g.Engine.Layout.Name,
	}).Info("game started")

	g.broadcast(GameEvent{Type: EventGameStarted})
	g.syncHandsLocked()
	g.broadcast(GameEvent{Type: EventPlayerTurn, User: g.eventUser(g.Engine.CurrentPlayer)})
}

// Restart re-deals with the same configuration and layout.
func (g *FivaGame) Restart() {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	g.Engine.ResetForNewGame()
	g.log.Info("game reset")
	g.broadcast(GameEvent{Type: EventGameStarted})
	g.syncHandsLocked()
	g.broadcast(GameEvent{Type: EventPlayerTurn, User: g.eventUser(g.Engine.CurrentPlayer)})
}

// syncHandsLocked sends each player a private snapshot of their hand.
func (g *FivaGame) syncHandsLocked() {
	for _, p := range g.Players {
		hand := g.Engine.Hand(p.Seat)
		codes := make([]string, len(hand))
		for i, c := range hand {
			codes[i] = c.String()
		}
		g.broadcastToPlayer(p.ID, GameEvent{Type: EventPrivateHandSync, Hand: codes})
	}
}

// seatOf resolves a player UUID to an engine seat.
func (g *FivaGame) seatOf(playerID uuid.UUID) (uint8, error) {
	seat, ok := g.playerSeat[playerID]
	if !ok {
		return 0, fmt.Errorf("unknown player %s", playerID)
	}
	return seat, nil
}

// PlayCard plays the hand card at handIdx of playerID onto pos. Rejections
// come back as the engine's typed errors with no state change; it is the
// caller's job to surface the reason and re-prompt.
func (g *FivaGame) PlayCard(playerID uuid.UUID, handIdx, pos uint8) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	seat, err := g.seatOf(playerID)
	if err != nil {
		return err
	}
	if seat != g.Engine.CurrentPlayer {
		return fmt.Errorf("not %s's turn", g.Players[seat].Name)
	}

	res, err := g.Engine.PlayCard(handIdx, pos)
	if err != nil {
		g.log.WithFields(logrus.Fields{
			"player": g.Players[seat].Name,
			"pos":    pos,
		}).WithError(err).Debug("play rejected")
		return err
	}

	g.emitPlayLocked(seat, res)
	return nil
}

// emitPlayLocked translates a successful PlayResult into events.
func (g *FivaGame) emitPlayLocked(seat uint8, res engine.PlayResult) {
	user := g.eventUser(seat)
	pos := int(res.Position)
	team := int(g.Players[seat].Team)

	switch res.Action {
	case engine.ActionPlaceChip:
		g.broadcast(GameEvent{
			Type: EventChipPlaced, User: user, Card: res.Card.String(),
			Position: intPtr(pos), Team: intPtr(team),
		})
	case engine.ActionRemoveChip:
		g.broadcast(GameEvent{
			Type: EventChipRemoved, User: user, Card: res.Card.String(),
			Position: intPtr(pos), Team: intPtr(int(res.Removed)),
		})
	}

	for _, f := range res.NewFivas {
		cells := make([]int, len(f.Cells))
		for i, c := range f.Cells {
			cells[i] = int(c)
		}
		g.log.WithFields(logrus.Fields{
			"team":  f.Team,
			"cells": cells,
			"dir":   f.Dir.String(),
		}).Info("fiva completed")
		g.broadcast(GameEvent{Type: EventFivaCompleted, Team: intPtr(int(f.Team)), Cells: cells})
	}

	if res.DrewCard {
		p := g.Players[seat]
		hand := g.Engine.Hand(seat)
		g.broadcastToPlayer(p.ID, GameEvent{
			Type: EventPrivateCardDrawn, Card: hand[len(hand)-1].String(),
		})
	}

	if res.GameOver {
		g.log.WithField("winner", res.Winner).Info("game over")
		g.broadcast(GameEvent{Type: EventGameEnd, Winner: intPtr(int(res.Winner))})
		if g.OnGameEnd != nil {
			g.OnGameEnd(g.ID, res.Winner)
		}
		return
	}
	g.broadcast(GameEvent{Type: EventPlayerTurn, User: g.eventUser(res.NextTurn)})
}

// SelectCard applies the dead-card policy for playerID's hand slot. When
// the card is dead it is discarded and the turn advances; the return value
// reports whether that happened.
func (g *FivaGame) SelectCard(playerID uuid.UUID, handIdx uint8) (bool, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	seat, err := g.seatOf(playerID)
	if err != nil {
		return false, err
	}
	if seat != g.Engine.CurrentPlayer {
		return false, fmt.Errorf("not %s's turn", g.Players[seat].Name)
	}

	hand := g.Engine.Hand(seat)
	if int(handIdx) >= len(hand) {
		return false, engine.ErrCardNotInHand
	}
	card := hand[handIdx]

	discarded, err := g.Engine.SelectCard(handIdx)
	if err != nil || !discarded {
		return discarded, err
	}

	user := g.eventUser(seat)
	g.log.WithFields(logrus.Fields{
		"player": g.Players[seat].Name,
		"card":   card.String(),
	}).Info("dead card auto-discarded")
	g.broadcast(GameEvent{Type: EventDeadCardDiscarded, User: user, Card: card.String()})
	g.broadcastToPlayer(g.Players[seat].ID, GameEvent{
		Type: EventPrivateHandSync, Hand: handCodes(g.Engine.Hand(seat)),
	})
	g.broadcast(GameEvent{Type: EventPlayerTurn, User: g.eventUser(g.Engine.CurrentPlayer)})
	return true, nil
}

func handCodes(hand []engine.Card) []string {
	codes := make([]string, len(hand))
	for i, c := range hand {
		codes[i] = c.String()
	}
	return codes
}

// ---------------------------------------------------------------------------
// Query surface — read-locked snapshots for the presentation layer.
// ---------------------------------------------------------------------------

// ValidPositions returns the set of cells where playerID may play card.
func (g *FivaGame) ValidPositions(playerID uuid.UUID, card engine.Card) (map[int]struct{}, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	seat, err := g.seatOf(playerID)
	if err != nil {
		return nil, err
	}
	out := make(map[int]struct{})
	for _, pos := range g.Engine.ValidPositionsList(card, g.Players[seat].Team) {
		out[int(pos)] = struct{}{}
	}
	return out, nil
}

// IsDeadCard reports whether card is currently unplayable.
func (g *FivaGame) IsDeadCard(card engine.Card) bool {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.Engine.IsDeadCard(card)
}

// ChipAt returns the team occupying pos, or NoTeam.
func (g *FivaGame) ChipAt(pos uint8) engine.Team {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.Engine.ChipAt(pos)
}

// IsPartOfCompletedFiva reports whether pos lies in a completed line.
func (g *FivaGame) IsPartOfCompletedFiva(pos uint8) bool {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.Engine.IsPartOfCompletedFiva(pos)
}

// Hand returns playerID's current hand.
func (g *FivaGame) Hand(playerID uuid.UUID) ([]engine.Card, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	seat, err := g.seatOf(playerID)
	if err != nil {
		return nil, err
	}
	return g.Engine.Hand(seat), nil
}

// TeamFivaCounts returns each team's completed-line count.
func (g *FivaGame) TeamFivaCounts() map[engine.Team]uint8 {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	out := make(map[engine.Team]uint8)
	for t := engine.Team(0); uint8(t) < g.Engine.Config.NumTeams; t++ {
		out[t] = g.Engine.TeamFivaCount(t)
	}
	return out
}

// Winner returns the winning team, or NoTeam while play continues.
func (g *FivaGame) Winner() engine.Team {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.Engine.Winner
}

// CurrentPlayer returns the acting player's identity.
func (g *FivaGame) CurrentPlayer() *Player {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.Players[g.Engine.CurrentPlayer]
}
