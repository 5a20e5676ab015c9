package game

import "github.com/google/uuid"

// GameEventType identifies a state-change notification emitted by FivaGame.
type GameEventType string

const (
	EventGameStarted       GameEventType = "game_started"
	EventChipPlaced        GameEventType = "chip_placed"
	EventChipRemoved       GameEventType = "chip_removed"
	EventFivaCompleted     GameEventType = "fiva_completed"
	EventDeadCardDiscarded GameEventType = "dead_card_discarded"
	EventPlayerTurn        GameEventType = "player_turn"
	EventGameEnd           GameEventType = "game_end"

	// Private events, delivered only to the affected player.
	EventPrivateCardDrawn GameEventType = "private_card_drawn"
	EventPrivateHandSync  GameEventType = "private_hand_sync"
)

// EventUser identifies a player within an event payload.
type EventUser struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name,omitempty"`
}

// GameEvent is the structure broadcast on every engine state change. The
// engine itself stays observer-free; this layer translates mutations into
// events after the fact.
type GameEvent struct {
	Type     GameEventType `json:"type"`
	User     *EventUser    `json:"user,omitempty"`
	Card     string        `json:"card,omitempty"`     // card code, e.g. "TD"
	Position *int          `json:"position,omitempty"` // board cell, if relevant
	Team     *int          `json:"team,omitempty"`
	Cells    []int         `json:"cells,omitempty"` // completed-line cells
	Hand     []string      `json:"hand,omitempty"`  // private hand sync
	Winner   *int          `json:"winner,omitempty"`

	Payload map[string]interface{} `json:"payload,omitempty"`
}

func intPtr(v int) *int { return &v }
