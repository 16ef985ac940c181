package analysis

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-analyzer/internal/randutil"
	"github.com/lox/holdem-analyzer/poker"
)

const (
	// DefaultChunkSize is how many trials run between cancellation checks.
	DefaultChunkSize = 1000

	// parallelThreshold is the smallest trial count worth splitting across workers.
	parallelThreshold = 500

	maxWorkers = 8
)

// Simulator runs Monte Carlo trials, optionally split across worker goroutines.
// The zero value uses one worker per CPU (capped at 8) and DefaultChunkSize.
//
// Results depend only on the caller's RNG state, the trial count and Workers:
// each worker draws from its own generator derived from the caller's RNG in
// worker order, and partial counts are summed.
type Simulator struct {
	Workers   int
	ChunkSize int
	Logger    *log.Logger
}

// Equity estimates the hero's equity against one random opponent.
func (s Simulator) Equity(ctx context.Context, rng *rand.Rand, hole, board poker.Hand, trials int) (EquityResult, error) {
	if err := validateDeal(hole, board); err != nil {
		return EquityResult{}, err
	}
	if trials <= 0 {
		return EquityResult{}, fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidInput, trials)
	}

	t, err := s.run(ctx, rng, trials, equityTrials(hole, board))
	if err != nil {
		return EquityResult{}, err
	}
	return EquityResult{Wins: t.wins, Ties: t.ties, Losses: t.losses, Trials: uint32(trials)}, nil
}

// Percentile estimates the fraction of random opponent holdings the hero
// beats or ties on the fixed board.
func (s Simulator) Percentile(ctx context.Context, rng *rand.Rand, hole, board poker.Hand, samples int) (PercentileResult, error) {
	if err := validateFixedBoard(hole, board); err != nil {
		return PercentileResult{}, err
	}
	if samples <= 0 {
		return PercentileResult{}, fmt.Errorf("%w: samples must be positive, got %d", ErrInvalidInput, samples)
	}

	fn, err := percentileSamples(hole, board)
	if err != nil {
		return PercentileResult{}, err
	}
	t, err := s.run(ctx, rng, samples, fn)
	if err != nil {
		return PercentileResult{}, err
	}
	return PercentileResult{Worse: t.wins, Equal: t.ties, Better: t.losses, Samples: uint32(samples)}, nil
}

// tally counts outcomes from the hero's point of view.
type tally struct {
	wins, ties, losses uint32
}

func (t *tally) record(cmp int) {
	switch {
	case cmp > 0:
		t.wins++
	case cmp == 0:
		t.ties++
	default:
		t.losses++
	}
}

func (t *tally) add(other tally) {
	t.wins += other.wins
	t.ties += other.ties
	t.losses += other.losses
}

// trialFunc runs n trials with rng and returns their outcomes. It must not
// touch state shared with other calls.
type trialFunc func(rng *rand.Rand, n int) (tally, error)

func (s Simulator) run(ctx context.Context, rng *rand.Rand, n int, fn trialFunc) (tally, error) {
	workers := s.workerCount(n)
	logger := s.logger()

	if workers == 1 {
		return runChunked(ctx, rng, n, s.chunkSize(), fn)
	}

	rngs := randutil.Derive(rng, workers)
	parts := make([]tally, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := range workers {
		share := n / workers
		if w < n%workers {
			share++
		}
		g.Go(func() error {
			part, err := runChunked(gctx, rngs[w], share, s.chunkSize(), fn)
			if err != nil {
				return err
			}
			parts[w] = part
			logger.Debug("worker finished", "worker", w, "trials", share)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return tally{}, err
	}

	var total tally
	for _, part := range parts {
		total.add(part)
	}
	return total, nil
}

// runChunked runs n trials in chunks, checking ctx between chunks.
func runChunked(ctx context.Context, rng *rand.Rand, n, chunk int, fn trialFunc) (tally, error) {
	var total tally
	for done := 0; done < n; {
		if err := ctx.Err(); err != nil {
			return tally{}, err
		}
		step := min(chunk, n-done)
		part, err := fn(rng, step)
		if err != nil {
			return tally{}, err
		}
		total.add(part)
		done += step
	}
	return total, nil
}

func (s Simulator) workerCount(n int) int {
	workers := s.Workers
	if workers <= 0 {
		workers = min(runtime.NumCPU(), maxWorkers)
	}
	if n < parallelThreshold || workers > n {
		return 1
	}
	return workers
}

func (s Simulator) chunkSize() int {
	if s.ChunkSize <= 0 {
		return DefaultChunkSize
	}
	return s.ChunkSize
}

func (s Simulator) logger() *log.Logger {
	if s.Logger == nil {
		return log.New(io.Discard)
	}
	return s.Logger.WithPrefix("simulator")
}
