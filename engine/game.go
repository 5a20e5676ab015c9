package engine

// Turn controller. States are implicit in Flags: setup (neither flag),
// playing (FlagStarted), game over (both). Rejected plays mutate nothing:
// the turn does not advance and no card leaves any hand.

// PlayResult summarizes what a legal play did, for callers that relay
// state changes to an observer layer.
type PlayResult struct {
	Player    uint8
	Card      Card
	Position  uint8
	Action    Action
	Removed   Team            // team whose chip was removed (ActionRemoveChip)
	NewFivas  []CompletedFiva // lines completed by this placement
	DrewCard  bool            // replacement draw succeeded
	GameOver  bool
	Winner    Team // NoTeam unless GameOver
	NextTurn  uint8
}

// StartNewGame transitions setup→playing: clears the board, the line list
// and counters, and all hands; shuffles a fresh double deck; deals each seat
// its configured hand.
func (g *GameState) StartNewGame() {
	for i := range g.Chips {
		g.Chips[i] = NoTeam
		g.Covers[i] = EmptyCard
	}
	g.protected = [2]uint64{}
	g.FivaLen = 0
	g.FivaCount = [MaxTeams]uint8{}
	g.Winner = NoTeam
	g.Flags = FlagStarted
	g.CurrentPlayer = 0

	g.Deck.ShuffleNewGame()

	handSize := CardsPerPlayer(g.Config.NumPlayers)
	for p := uint8(0); p < MaxPlayers; p++ {
		g.Players[p] = PlayerState{}
	}
	for c := uint8(0); c < handSize; c++ {
		for p := uint8(0); p < g.Config.NumPlayers; p++ {
			card, ok := g.Deck.DrawCard()
			if !ok {
				break
			}
			pl := &g.Players[p]
			pl.Hand[pl.HandLen] = card
			pl.HandLen++
		}
	}
}

// ResetForNewGame preserves the configuration and layout and starts over.
func (g *GameState) ResetForNewGame() {
	g.Flags = 0
	g.StartNewGame()
}

// ToggleLayout switches between the two board skins. The card→cell mapping
// changes, so toggling is only allowed while no game is in progress.
func (g *GameState) ToggleLayout() error {
	if g.IsStarted() && !g.IsGameOver() {
		return ErrGameInProgress
	}
	if g.Layout == LayoutClassic {
		g.Layout = LayoutScan
	} else {
		g.Layout = LayoutClassic
	}
	return nil
}

// PlayCard plays the card at hand index handIdx of the acting seat onto pos.
// On success it applies the action, runs line detection for placements,
// draws a replacement (the hand shrinks when the deck and discard are both
// exhausted), advances the turn, and declares a winner once the acting team
// reaches its required line count. On error nothing changes.
func (g *GameState) PlayCard(handIdx, pos uint8) (PlayResult, error) {
	if !g.IsStarted() {
		return PlayResult{}, ErrGameNotStarted
	}
	if g.IsGameOver() {
		return PlayResult{}, ErrGameOver
	}
	player := &g.Players[g.CurrentPlayer]
	if handIdx >= player.HandLen {
		return PlayResult{}, ErrCardNotInHand
	}
	card := player.Hand[handIdx]
	team := g.CurrentTeam()

	action, err := g.ValidatePlay(card, pos, team)
	if err != nil {
		return PlayResult{}, err
	}

	res := PlayResult{
		Player:   g.CurrentPlayer,
		Card:     card,
		Position: pos,
		Action:   action,
		Removed:  NoTeam,
		Winner:   NoTeam,
	}

	player.removeAt(handIdx)

	switch action {
	case ActionPlaceChip:
		// The played card stays in play, resting on the board under the
		// chip (for a two-eyed Jack that is the Jack itself).
		g.Chips[pos] = team
		g.Covers[pos] = card
		g.Deck.PlaceOnBoard(card)
		res.NewFivas = g.detectFivas(pos, team)
	case ActionRemoveChip:
		// The one-eyed Jack and the card that had been covering the cell
		// both go to the discard pile.
		res.Removed = g.Chips[pos]
		g.Chips[pos] = NoTeam
		g.Deck.Discard(g.Covers[pos])
		g.Covers[pos] = EmptyCard
		g.Deck.Discard(card)
	}

	if c, ok := g.Deck.DrawCard(); ok {
		player.Hand[player.HandLen] = c
		player.HandLen++
		res.DrewCard = true
	}

	g.advanceTurn()
	res.NextTurn = g.CurrentPlayer

	if g.FivaCount[team] >= g.Config.FivasToWin() {
		g.Flags |= FlagGameOver
		g.Winner = team
		res.GameOver = true
		res.Winner = team
	}
	return res, nil
}

// PlayCardValue plays the first held copy of card onto pos. Addressing by
// value suits callers that track cards rather than hand slots.
func (g *GameState) PlayCardValue(card Card, pos uint8) (PlayResult, error) {
	player := &g.Players[g.CurrentPlayer]
	idx, ok := player.handIndexOf(card)
	if !ok {
		return PlayResult{}, ErrCardNotInHand
	}
	return g.PlayCard(idx, pos)
}

// SelectCard applies the dead-card policy to the card at handIdx of the
// acting seat: if the card is dead it is discarded unconditionally, a
// replacement is drawn, and the turn advances; the caller never picks a
// position for it. Returns true when the card was auto-discarded.
func (g *GameState) SelectCard(handIdx uint8) (bool, error) {
	if !g.IsStarted() {
		return false, ErrGameNotStarted
	}
	if g.IsGameOver() {
		return false, ErrGameOver
	}
	player := &g.Players[g.CurrentPlayer]
	if handIdx >= player.HandLen {
		return false, ErrCardNotInHand
	}
	card := player.Hand[handIdx]
	if !g.IsDeadCard(card) {
		return false, nil
	}

	player.removeAt(handIdx)
	g.Deck.Discard(card)
	if c, ok := g.Deck.DrawCard(); ok {
		player.Hand[player.HandLen] = c
		player.HandLen++
	}
	g.advanceTurn()
	return true, nil
}

// DiscardDeadCard discards card from the acting seat's hand if it is dead.
// Equivalent to SelectCard but addressed by card value.
func (g *GameState) DiscardDeadCard(card Card) (bool, error) {
	player := &g.Players[g.CurrentPlayer]
	idx, ok := player.handIndexOf(card)
	if !ok {
		return false, ErrCardNotInHand
	}
	return g.SelectCard(idx)
}

func (g *GameState) advanceTurn() {
	g.CurrentPlayer = (g.CurrentPlayer + 1) % g.Config.NumPlayers
}
