// Package autoplay runs batches of self-play games with a configured
// strategy and aggregates their results.
package autoplay

import (
	"runtime"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
	"lukechampine.com/frand"

	"github.com/twenty48-ai/solver/board"
	"github.com/twenty48-ai/solver/engine"
	"github.com/twenty48-ai/solver/stats"
	"github.com/twenty48-ai/solver/strategy"
)

// maxGameMoves bounds a single game; no real 4x4 game gets near it.
const maxGameMoves = 1 << 16

// GameResult is the outcome of one self-play game.
type GameResult struct {
	Score   int
	MaxTile int
	Moves   int
	Seed    [32]byte
}

// Summary aggregates a batch of game results.
type Summary struct {
	Results []GameResult

	ScoreStats    stats.Statistic
	MeanScore     float64
	StdevScore    float64
	ScoreCI95     float64
	BestScore     int
	MedianScore   float64
	MaxTileCounts map[int]int
}

// Runner plays games with strategies built from one configuration.
// Each game gets its own strategy instance, since strategy instances
// are not safe for concurrent use.
type Runner struct {
	cfg         strategy.Config
	parallelism int
}

// NewRunner returns a runner for the given strategy configuration.
// Nonpositive parallelism means one worker per CPU.
func NewRunner(cfg strategy.Config, parallelism int) *Runner {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	return &Runner{cfg: cfg, parallelism: parallelism}
}

// Run plays n games and returns the aggregated summary.
func (r *Runner) Run(n int) (*Summary, error) {
	seeds, err := GenerateSeeds(n)
	if err != nil {
		return nil, err
	}
	return r.RunSeeded(seeds)
}

// RunSeeded plays one game per seed. The same seeds with a
// deterministic strategy reproduce the same results.
func (r *Runner) RunSeeded(seeds [][32]byte) (*Summary, error) {
	results := make([]GameResult, len(seeds))
	var g errgroup.Group
	g.SetLimit(r.parallelism)
	for i := range results {
		g.Go(func() error {
			results[i] = playGame(strategy.New(r.cfg), seeds[i])
			log.Debug().
				Int("game", i).
				Int("score", results[i].Score).
				Int("maxtile", results[i].MaxTile).
				Int("moves", results[i].Moves).
				Str("seed", EncodeSeed(results[i].Seed)).
				Msg("game finished")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summarize(results), nil
}

// playGame runs one game to completion: the strategy picks, the caller
// validates, and an invalid pick falls back to the first valid
// direction.
func playGame(strat strategy.Strategy, seed [32]byte) GameResult {
	eng := engine.New()
	rng := frand.NewCustom(seed[:], 1024, 12)
	b := eng.NewGame(rng)
	moves := 0
	for moves < maxGameMoves && !eng.IsGameOver(b) {
		dir := strat.PickMove(b)
		if !eng.IsValidMove(b, dir) {
			dir = firstValid(eng, b)
			if dir < 0 {
				break
			}
		}
		b = eng.SpawnRandom(eng.MakeMove(b, dir), rng)
		moves++
	}
	return GameResult{
		Score:   eng.Score(b),
		MaxTile: maxTile(b),
		Moves:   moves,
		Seed:    seed,
	}
}

func firstValid(eng *engine.Engine, b board.Board) int {
	for dir := 0; dir < engine.NumDirections; dir++ {
		if eng.IsValidMove(b, dir) {
			return dir
		}
	}
	return -1
}

func maxTile(b board.Board) int {
	if e := b.MaxExponent(); e > 0 {
		return 1 << e
	}
	return 0
}

func summarize(results []GameResult) *Summary {
	s := &Summary{
		Results:       results,
		MaxTileCounts: lo.CountValuesBy(results, func(r GameResult) int { return r.MaxTile }),
	}
	if len(results) == 0 {
		return s
	}
	scores := lo.Map(results, func(r GameResult, _ int) float64 { return float64(r.Score) })
	for _, sc := range scores {
		s.ScoreStats.Push(sc)
	}
	s.MeanScore = stat.Mean(scores, nil)
	s.StdevScore = stat.StdDev(scores, nil)
	s.ScoreCI95 = s.ScoreStats.StandardError(stats.ZVal(95))
	s.BestScore = lo.Max(lo.Map(results, func(r GameResult, _ int) int { return r.Score }))
	sort.Float64s(scores)
	s.MedianScore = stat.Quantile(0.5, stat.Empirical, scores, nil)
	return s
}
