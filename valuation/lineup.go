package valuation

import (
	"sort"

	"github.com/arnavgupta1/FF-Metrics/model"
)

// ScoredPlayer is the minimal input for lineup optimization.
type ScoredPlayer struct {
	Position model.Position
	Points   float64
}

// Dedicated lineup slots; one flex slot on top of these accepts RB/WR/TE.
func DefaultLineupLimits() map[model.Position]int {
	return map[model.Position]int{
		model.POS_QB: 1,
		model.POS_RB: 2,
		model.POS_WR: 2,
		model.POS_TE: 1,
		model.POS_K:  1,
	}
}

func flexEligible(p model.Position) bool {
	return p == model.POS_RB || p == model.POS_WR || p == model.POS_TE
}

// OptimalLineupPoints returns the points of the best hindsight lineup:
// fill each dedicated slot with the highest scorers at that position, then
// hand the flex slot to the best remaining flex-eligible player.
func OptimalLineupPoints(players []ScoredPlayer, limits map[model.Position]int) float64 {
	byPosition := make(map[model.Position][]float64)
	for _, p := range players {
		byPosition[p.Position] = append(byPosition[p.Position], p.Points)
	}
	for _, points := range byPosition {
		sort.Sort(sort.Reverse(sort.Float64Slice(points)))
	}

	total := 0.0
	bestFlex := 0.0
	for position, points := range byPosition {
		limit := limits[position]
		for i, pts := range points {
			if i < limit {
				total += pts
				continue
			}
			if flexEligible(position) && pts > bestFlex {
				bestFlex = pts
			}
		}
	}

	return total + bestFlex
}

// BestBenchPoints is the highest score among bench players, 0 when the
// bench is empty.
func BestBenchPoints(benchPoints []float64) float64 {
	best := 0.0
	for _, pts := range benchPoints {
		if pts > best {
			best = pts
		}
	}
	return best
}
