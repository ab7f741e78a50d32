// Package statistics aggregates results across simulated games.
package statistics

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// GameResult represents the outcome of a single simulated game
type GameResult struct {
	StartingSticks int   // Sticks on the table at the start
	FirstMoverWon  bool  // Did the side that moved first win?
	Moves          int   // Total moves played
	Takes          []int // Sticks taken per move, in play order
	Seed           int64 // RNG seed for this game (for replay)
}

// countStats tracks statistics for one starting count
type countStats struct {
	Games         int
	FirstMoverWon int
}

// Statistics tracks comprehensive simulation statistics
type Statistics struct {
	Games  int
	SumMv  float64
	SumMv2 float64   // Sum of squares for variance calculation
	Values []float64 // Store all game lengths for median/percentile calculation

	FirstMoverWins int
	TakeCounts     [4]int // Index 1-3: how often each take size was played

	// Theory tracking: with best play the first mover wins exactly when
	// the starting count is not a multiple of 4
	TheoryGames     int // Games where both sides played a perfect strategy
	TheoryAgreement int // ...whose outcome matched the first-player theory

	byCount map[int]*countStats
}

// New creates an empty statistics accumulator.
func New() *Statistics {
	return &Statistics{byCount: make(map[int]*countStats)}
}

// Mean returns the arithmetic mean game length in moves
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumMv / float64(s.Games)
}

// Variance returns the sample variance of game lengths
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumMv2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of game lengths
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	se := s.StdError()
	margin := 1.96 * se // 95% confidence
	return mean - margin, mean + margin
}

// Median returns the median game length
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the pth percentile (0 < p < 1) of game lengths
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}

	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	idx := p * float64(len(sorted)-1)
	lower := int(math.Floor(idx))
	upper := int(math.Ceil(idx))
	if lower == upper {
		return sorted[lower]
	}

	frac := idx - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}

// FirstMoverWinRate returns the fraction of games won by the first mover
func (s *Statistics) FirstMoverWinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.FirstMoverWins) / float64(s.Games)
}

// TheoryAgreementRate returns the fraction of perfect-play games whose
// outcome matched the first-player theory
func (s *Statistics) TheoryAgreementRate() float64 {
	if s.TheoryGames == 0 {
		return 0
	}
	return float64(s.TheoryAgreement) / float64(s.TheoryGames)
}

// Add incorporates a new game result into the statistics. perfectPlay
// marks games where both sides used the full search, which makes the
// outcome a theory check rather than a sample.
func (s *Statistics) Add(result GameResult, perfectPlay bool) {
	moves := float64(result.Moves)
	s.Games++
	s.SumMv += moves
	s.SumMv2 += moves * moves
	s.Values = append(s.Values, moves)

	if result.FirstMoverWon {
		s.FirstMoverWins++
	}

	for _, take := range result.Takes {
		if take >= 1 && take <= 3 {
			s.TakeCounts[take]++
		}
	}

	if perfectPlay {
		s.TheoryGames++
		theoryWin := result.StartingSticks%4 != 0
		if result.FirstMoverWon == theoryWin {
			s.TheoryAgreement++
		}
	}

	if s.byCount == nil {
		s.byCount = make(map[int]*countStats)
	}
	cs := s.byCount[result.StartingSticks]
	if cs == nil {
		cs = &countStats{}
		s.byCount[result.StartingSticks] = cs
	}
	cs.Games++
	if result.FirstMoverWon {
		cs.FirstMoverWon++
	}
}

// Merge folds another accumulator into this one. Used to combine
// per-worker results after a parallel simulation run.
func (s *Statistics) Merge(other *Statistics) {
	s.Games += other.Games
	s.SumMv += other.SumMv
	s.SumMv2 += other.SumMv2
	s.Values = append(s.Values, other.Values...)
	s.FirstMoverWins += other.FirstMoverWins
	for i := range s.TakeCounts {
		s.TakeCounts[i] += other.TakeCounts[i]
	}
	s.TheoryGames += other.TheoryGames
	s.TheoryAgreement += other.TheoryAgreement

	if s.byCount == nil {
		s.byCount = make(map[int]*countStats)
	}
	for count, ocs := range other.byCount {
		cs := s.byCount[count]
		if cs == nil {
			cs = &countStats{}
			s.byCount[count] = cs
		}
		cs.Games += ocs.Games
		cs.FirstMoverWon += ocs.FirstMoverWon
	}
}

// Report renders a readable summary of the accumulated statistics.
func (s *Statistics) Report() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Games:                %d\n", s.Games)
	fmt.Fprintf(&b, "First mover wins:     %d (%.1f%%)\n", s.FirstMoverWins, s.FirstMoverWinRate()*100)
	fmt.Fprintf(&b, "Game length:          mean %.2f moves, median %.1f, stddev %.2f\n", s.Mean(), s.Median(), s.StdDev())

	lo, hi := s.ConfidenceInterval95()
	fmt.Fprintf(&b, "95%% CI mean length:   [%.2f, %.2f]\n", lo, hi)

	total := s.TakeCounts[1] + s.TakeCounts[2] + s.TakeCounts[3]
	if total > 0 {
		fmt.Fprintf(&b, "Take distribution:    1:%.1f%% 2:%.1f%% 3:%.1f%%\n",
			float64(s.TakeCounts[1])/float64(total)*100,
			float64(s.TakeCounts[2])/float64(total)*100,
			float64(s.TakeCounts[3])/float64(total)*100)
	}

	if s.TheoryGames > 0 {
		fmt.Fprintf(&b, "Theory agreement:     %d/%d (%.1f%%)\n", s.TheoryAgreement, s.TheoryGames, s.TheoryAgreementRate()*100)
	}

	counts := make([]int, 0, len(s.byCount))
	for count := range s.byCount {
		counts = append(counts, count)
	}
	sort.Ints(counts)
	for _, count := range counts {
		cs := s.byCount[count]
		fmt.Fprintf(&b, "  %2d sticks: %4d games, first mover won %4d (%.1f%%)\n",
			count, cs.Games, cs.FirstMoverWon, float64(cs.FirstMoverWon)/float64(cs.Games)*100)
	}

	return b.String()
}
