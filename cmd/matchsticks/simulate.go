package main

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/matchsticks/cmd/matchsticks/shared"
	"github.com/lox/matchsticks/internal/ai"
	"github.com/lox/matchsticks/internal/config"
	"github.com/lox/matchsticks/internal/game"
	"github.com/lox/matchsticks/internal/randutil"
	"github.com/lox/matchsticks/internal/statistics"
)

// SimulateCmd plays bulk games between strategies and reports
// statistics, including how often outcomes match the first-player
// theory (the first mover wins exactly when the count is not a
// multiple of 4).
type SimulateCmd struct {
	Games    int    `default:"1000" help:"Games per starting count"`
	Sticks   int    `short:"s" default:"0" help:"Fixed starting count (0 sweeps 1..50)"`
	First    string `default:"search" help:"First mover strategy: search, heuristic, random"`
	Opponent string `default:"random" help:"Second mover strategy: search, heuristic, random"`
	Seed     int64  `default:"0" help:"RNG seed (0 for time-based)"`
	Workers  int    `default:"0" help:"Parallel workers (0 for GOMAXPROCS)"`
	Verbose  bool   `short:"v" help:"Verbose logging"`
}

type gameSpec struct {
	sticks int
	seed   int64
}

// Run executes the simulation.
func (cmd *SimulateCmd) Run() error {
	level := "info"
	if cmd.Verbose {
		level = "debug"
	}
	logger := shared.SetupLogger(level)

	if cmd.Sticks < 0 || cmd.Sticks > config.MaxStartingSticks {
		return fmt.Errorf("sticks must be between 0 and %d, got %d", config.MaxStartingSticks, cmd.Sticks)
	}
	for _, s := range []string{cmd.First, cmd.Opponent} {
		switch s {
		case "search", "heuristic", "random":
		default:
			return fmt.Errorf("unknown strategy %q, want search, heuristic or random", s)
		}
	}

	seed := randutil.Seed(cmd.Seed)
	workers := cmd.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	counts := []int{cmd.Sticks}
	if cmd.Sticks == 0 {
		counts = counts[:0]
		for c := 1; c <= config.MaxStartingSticks; c++ {
			counts = append(counts, c)
		}
	}

	logger.Info("Starting simulation",
		"games_per_count", cmd.Games,
		"counts", len(counts),
		"first", cmd.First,
		"opponent", cmd.Opponent,
		"workers", workers,
		"seed", seed)

	specs := make(chan gameSpec, workers)
	results := make(chan *statistics.Statistics, workers)

	// One shared search engine: its cache is mutex-guarded, and sharing
	// means later games reuse earlier evaluations.
	search := ai.NewEngine(logger)
	perfectPlay := cmd.First != "random" && cmd.Opponent != "random"

	var group errgroup.Group
	for w := 0; w < workers; w++ {
		workerSeed := seed + int64(w)
		group.Go(func() error {
			stats := statistics.New()
			first := newStrategy(cmd.First, search, workerSeed)
			second := newStrategy(cmd.Opponent, search, workerSeed+1)

			for spec := range specs {
				result, err := playGame(spec, first, second, logger)
				if err != nil {
					return err
				}
				stats.Add(result, perfectPlay)
			}
			results <- stats
			return nil
		})
	}

	rng := randutil.New(seed)
	for _, count := range counts {
		for i := 0; i < cmd.Games; i++ {
			specs <- gameSpec{sticks: count, seed: rng.Int64()}
		}
	}
	close(specs)

	if err := group.Wait(); err != nil {
		return err
	}
	close(results)

	total := statistics.New()
	for stats := range results {
		total.Merge(stats)
	}

	fmt.Println()
	fmt.Print(total.Report())

	if perfectPlay && total.TheoryAgreement != total.TheoryGames {
		return fmt.Errorf("perfect play disagreed with first-player theory in %d games",
			total.TheoryGames-total.TheoryAgreement)
	}
	return nil
}

// newStrategy builds an agent by name. Random agents get their own RNG
// so workers don't contend.
func newStrategy(name string, search *ai.Engine, seed int64) game.Agent {
	switch name {
	case "search":
		return search
	case "heuristic":
		return ai.NewHeuristicAgent()
	default:
		return ai.NewRandomAgent(seed)
	}
}

// moveRecorder captures takes for the statistics.
type moveRecorder struct {
	takes []int
}

func (r *moveRecorder) HandleEvent(event game.GameEvent) {
	if e, ok := event.(game.MovePlayedEvent); ok {
		r.takes = append(r.takes, int(e.Take))
	}
}

func playGame(spec gameSpec, first, second game.Agent, logger *log.Logger) (statistics.GameResult, error) {
	// The first mover sits in the Human seat; only the agents differ.
	g := game.NewGame(spec.sticks, game.Human)
	agents := map[game.PlayerType]game.Agent{
		game.Human: first,
		game.AI:    second,
	}

	engine := game.NewEngine(g, agents, logger)
	recorder := &moveRecorder{}
	engine.EventBus().Subscribe(recorder)

	result, err := engine.PlayGame()
	if err != nil {
		return statistics.GameResult{}, err
	}

	return statistics.GameResult{
		StartingSticks: spec.sticks,
		FirstMoverWon:  result.Winner == game.Human,
		Moves:          result.TotalMoves,
		Takes:          recorder.takes,
		Seed:           spec.seed,
	}, nil
}
