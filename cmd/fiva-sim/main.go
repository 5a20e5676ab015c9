// Command fiva-sim plays headless Fiva games between heuristic agents and
// reports per-team results. Useful for rules-engine soak testing and for
// eyeballing how rule/layout changes shift win rates.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/dkauper/fiva/engine"
	"github.com/dkauper/fiva/engine/agent"
	"github.com/dkauper/fiva/internal/config"
	"github.com/dkauper/fiva/internal/game"
)

func main() {
	configPath := flag.String("config", "", "path to JSON config file")
	games := flag.Int("games", 0, "number of games to simulate (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	if *games > 0 {
		cfg.Games = *games
	}

	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(lvl)
	}

	layout, err := cfg.BoardLayout()
	if err != nil {
		logrus.WithError(err).Fatal("resolve layout")
	}

	if err := run(cfg, layout); err != nil {
		logrus.WithError(err).Error("simulation failed")
		os.Exit(1)
	}
}

// maxSimTurns caps a single game; a heuristic-vs-heuristic game that runs
// this long indicates an engine bug, not a slow game.
const maxSimTurns = 5000

func run(cfg config.Config, layout *engine.BoardLayout) error {
	if cfg.Games < 1 {
		cfg.Games = 1
	}
	wins := make(map[engine.Team]int)
	totalFivas := make(map[engine.Team]int)
	totalTurns := 0

	for i := 0; i < cfg.Games; i++ {
		var g *game.FivaGame
		if cfg.Seed != 0 {
			g = game.NewSeeded(cfg.EngineConfig(), layout, cfg.Seed+uint64(i))
		} else {
			g = game.New(cfg.EngineConfig(), layout)
		}
		g.Start()

		rng := rand.New(rand.NewPCG(cfg.Seed+uint64(i), uint64(i)+1))
		turns, err := playOut(g, rng)
		if err != nil {
			return fmt.Errorf("game %d: %w", i, err)
		}
		totalTurns += turns

		winner := g.Winner()
		wins[winner]++
		for team, n := range g.TeamFivaCounts() {
			totalFivas[team] += int(n)
		}
		logrus.WithFields(logrus.Fields{
			"game":   i,
			"turns":  turns,
			"winner": winner,
		}).Debug("game finished")
	}

	logrus.WithFields(logrus.Fields{
		"games":     cfg.Games,
		"avg_turns": totalTurns / cfg.Games,
	}).Info("simulation complete")
	for team, n := range wins {
		logrus.WithFields(logrus.Fields{
			"team":  team,
			"wins":  n,
			"fivas": totalFivas[team],
		}).Info("team results")
	}
	return nil
}

// playOut drives every seat with the heuristic agent until a winner.
func playOut(g *game.FivaGame, rng *rand.Rand) (int, error) {
	turns := 0
	for turns < maxSimTurns {
		g.Mu.Lock()
		over := g.Engine.IsGameOver()
		var m agent.Move
		var ok bool
		if !over {
			m, ok = agent.ChooseMove(&g.Engine, rng)
		}
		g.Mu.Unlock()
		if over {
			return turns, nil
		}
		if !ok {
			return turns, fmt.Errorf("agent found no move at turn %d", turns)
		}

		current := g.CurrentPlayer()
		var err error
		if m.Discard {
			_, err = g.SelectCard(current.ID, m.HandIdx)
		} else {
			err = g.PlayCard(current.ID, m.HandIdx, m.Position)
		}
		if err != nil {
			return turns, fmt.Errorf("turn %d: %w", turns, err)
		}
		turns++
	}
	return turns, fmt.Errorf("no winner after %d turns", maxSimTurns)
}
