package analysis

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-analyzer/classification"
	"github.com/lox/holdem-analyzer/poker"
)

const (
	DefaultTrials  = 5000
	DefaultSamples = 1000
)

// Street names the betting round implied by the number of board cards.
type Street int

const (
	PreFlop Street = iota
	Flop
	Turn
	River
)

func (s Street) String() string {
	switch s {
	case PreFlop:
		return "pre-flop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// StreetOf maps a board to its street. Boards of 1, 2 or more than 5 cards
// have no street.
func StreetOf(board poker.Hand) (Street, error) {
	switch n := board.CountCards(); n {
	case 0:
		return PreFlop, nil
	case 3:
		return Flop, nil
	case 4:
		return Turn, nil
	case 5:
		return River, nil
	default:
		return 0, fmt.Errorf("%w: board must have 0, 3, 4 or 5 cards, got %d", ErrInvalidInput, n)
	}
}

// Report is the full analysis of one hand.
//
// Strength, Percentile and Threats are only set after the flop; before it
// HoleCategory describes the starting hand instead.
type Report struct {
	Hole           poker.Hand
	Board          poker.Hand
	Street         Street
	Strength       poker.HandStrength
	HoleCategory   poker.HoleCardCategory
	Equity         EquityResult
	Percentile     PercentileResult
	Texture        classification.BoardTexture
	Threats        []classification.Threat
	Recommendation Recommendation
	Started        time.Time
	Elapsed        time.Duration
}

// HasPercentile reports whether the percentile and threats were computed.
func (r Report) HasPercentile() bool {
	return r.Street != PreFlop
}

// Analyzer produces a Report per hand from the simulators and the board classifiers.
type Analyzer struct {
	trials  int
	samples int
	sim     Simulator
	logger  *log.Logger
	clock   quartz.Clock
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithTrials sets the number of equity trials per hand.
func WithTrials(n int) Option {
	return func(a *Analyzer) { a.trials = n }
}

// WithSamples sets the number of percentile samples per hand.
func WithSamples(n int) Option {
	return func(a *Analyzer) { a.samples = n }
}

// WithWorkers sets the simulation worker count; 0 picks one per CPU.
func WithWorkers(n int) Option {
	return func(a *Analyzer) { a.sim.Workers = n }
}

// WithChunkSize sets how many trials run between cancellation checks.
func WithChunkSize(n int) Option {
	return func(a *Analyzer) { a.sim.ChunkSize = n }
}

func WithLogger(logger *log.Logger) Option {
	return func(a *Analyzer) { a.logger = logger }
}

// WithClock replaces the real clock used for timings.
func WithClock(clock quartz.Clock) Option {
	return func(a *Analyzer) { a.clock = clock }
}

// NewAnalyzer creates an Analyzer with DefaultTrials and DefaultSamples
// unless overridden.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		trials:  DefaultTrials,
		samples: DefaultSamples,
		logger:  log.New(io.Discard),
		clock:   quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.WithPrefix("analyzer")
	a.sim.Logger = a.logger
	return a
}

// Analyze runs equity, percentile and threat analysis for one hand. Preflop
// the recommendation is driven by equity alone.
func (a *Analyzer) Analyze(ctx context.Context, rng *rand.Rand, hole, board poker.Hand) (Report, error) {
	if err := validateDeal(hole, board); err != nil {
		return Report{}, err
	}
	street, err := StreetOf(board)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Hole:    hole,
		Board:   board,
		Street:  street,
		Texture: classification.AnalyzeBoardTexture(board),
		Started: a.clock.Now(),
	}

	report.Equity, err = a.sim.Equity(ctx, rng, hole, board, a.trials)
	if err != nil {
		return Report{}, fmt.Errorf("equity: %w", err)
	}

	percentile := report.Equity.Equity()
	if street == PreFlop {
		report.HoleCategory = poker.CategorizeHole(hole)
	} else {
		if report.Strength, err = poker.Evaluate(hole | board); err != nil {
			return Report{}, err
		}
		report.Percentile, err = a.sim.Percentile(ctx, rng, hole, board, a.samples)
		if err != nil {
			return Report{}, fmt.Errorf("percentile: %w", err)
		}
		percentile = report.Percentile.Percentile()
		report.Threats = classification.ThreatsFor(board, report.Strength.Category)
	}

	report.Recommendation = Recommend(report.Equity.Equity(), percentile)
	report.Elapsed = a.clock.Since(report.Started)

	a.logger.Debug("analyzed hand",
		"hole", hole,
		"board", board,
		"street", street,
		"equity", report.Equity.Equity(),
		"elapsed", report.Elapsed)
	return report, nil
}
