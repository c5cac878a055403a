package valuation

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/arnavgupta1/FF-Metrics/model"
)

// Per-player group weights for the tier average. Standard positions weight
// starters against bench 70/30; wide receiver splits into top-two, other
// starters and bench at 60/20/20.
const (
	starterWeight = 0.7
	benchWeight   = 0.3

	wrTopTwoWeight  = 0.6
	wrStarterWeight = 0.2
	wrBenchWeight   = 0.2
)

// TierConfig carries the tables the tier aggregation depends on. All three
// are league configuration, not derived data.
type TierConfig struct {
	// StarterRequirements is the lineup's per-position starter count.
	StarterRequirements map[model.Position]int
	// OverallWeights scales each position's tier average in the overall
	// team score.
	OverallWeights map[model.Position]float64
	// RankOverrides forces a rank value for specific player names. It
	// exists to patch bad source data for team defenses whose sheet rows
	// carry no usable tier.
	RankOverrides map[string]float64
}

func DefaultTierConfig() TierConfig {
	return TierConfig{
		StarterRequirements: map[model.Position]int{
			model.POS_QB:  1,
			model.POS_RB:  2,
			model.POS_WR:  2,
			model.POS_TE:  1,
			model.POS_K:   1,
			model.POS_DEF: 1,
		},
		OverallWeights: map[model.Position]float64{
			model.POS_QB:  1.2,
			model.POS_RB:  1.5,
			model.POS_WR:  1.5,
			model.POS_TE:  1.0,
			model.POS_K:   0.3,
			model.POS_DEF: 0.5,
		},
		RankOverrides: map[string]float64{
			"Green Bay Packers": 13,
		},
	}
}

var tierDigits = regexp.MustCompile(`\d+`)

// TierValue extracts the numeric rank from a tier label: "QB1" is 1, "7"
// is 7. Labels with no digits ("N/A", "") carry no data and return false.
func TierValue(tier string) (float64, bool) {
	if m := tierDigits.FindString(tier); m != "" {
		v, err := strconv.ParseFloat(m, 64)
		if err == nil {
			return v, true
		}
	}
	if v, err := strconv.ParseFloat(tier, 64); err == nil {
		return v, true
	}
	return 0, false
}

// RankValue resolves one matched record to the rank value used by the tier
// average. Override table first, then the tier label, then the position
// rank. False means the record carries no usable rank and must be excluded.
func (c TierConfig) RankValue(rec model.RankingRecord) (float64, bool) {
	if v, ok := c.RankOverrides[rec.Name]; ok {
		return v, true
	}
	if v, ok := TierValue(rec.Tier); ok {
		return v, true
	}
	if rec.PositionRank > 0 {
		return float64(rec.PositionRank), true
	}
	return 0, false
}

// PositionAverage computes the weighted tier average for one position's
// rank values. Lower values are better; the first `required` values in
// ascending order are the starters. A position with no values has no
// average: the false return means "exclude from the overall score", never
// "worst tier".
func (c TierConfig) PositionAverage(position model.Position, rankValues []float64) (float64, bool) {
	if len(rankValues) == 0 {
		return 0, false
	}

	values := make([]float64, len(rankValues))
	copy(values, rankValues)
	sort.Float64s(values)

	required := c.StarterRequirements[position]
	if position == model.POS_WR {
		return wrAverage(values, required), true
	}

	split := required
	if split > len(values) {
		split = len(values)
	}
	starters := values[:split]
	bench := values[split:]

	weighted := sum(starters)*starterWeight + sum(bench)*benchWeight
	weight := starterWeight*float64(len(starters)) + benchWeight*float64(len(bench))
	return weighted / weight, true
}

// wrAverage is the bespoke wide-receiver weighting: the top two receivers
// carry most of the score, any further required starters a little, and the
// bench a little.
func wrAverage(values []float64, required int) float64 {
	topSplit := 2
	if topSplit > len(values) {
		topSplit = len(values)
	}
	starterSplit := topSplit
	if required > 2 {
		starterSplit = required
		if starterSplit > len(values) {
			starterSplit = len(values)
		}
	}

	top := values[:topSplit]
	starters := values[topSplit:starterSplit]
	bench := values[starterSplit:]

	weighted := sum(top)*wrTopTwoWeight + sum(starters)*wrStarterWeight + sum(bench)*wrBenchWeight
	weight := wrTopTwoWeight*float64(len(top)) +
		wrStarterWeight*float64(len(starters)) +
		wrBenchWeight*float64(len(bench))
	return weighted / weight
}

// OverallScore folds per-position tier averages into one team score.
// Positions without data drop out of both numerator and denominator.
func (c TierConfig) OverallScore(positions map[model.Position]model.PositionTierAggregate) float64 {
	weighted := 0.0
	weight := 0.0
	for position, agg := range positions {
		if !agg.HasData {
			continue
		}
		w := c.OverallWeights[position]
		weighted += agg.Average * w
		weight += w
	}
	if weight == 0 {
		return 0
	}
	return weighted / weight
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
