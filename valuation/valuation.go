// Package valuation holds the scoring math: value-over-replacement deltas,
// the power-rank composite, lineup optimization, and position-tier weighted
// averages. Everything here is a total function over already-resolved
// numeric input. No fetching, no matching, no errors.
package valuation

import (
	"sort"

	"github.com/arnavgupta1/FF-Metrics/model"
)

// Power composite weights. Total season points dominate, hindsight-optimal
// lineup average rewards roster depth, and the recent-weeks average captures
// momentum.
const (
	powerTotalWeight   = 0.4
	powerOptimalWeight = 0.35
	powerRecentWeight  = 0.25
)

// RecentWeeks is the window for the momentum term of the power composite.
const RecentWeeks = 3

// DefaultBaselinePoints is the per-position weekly baseline a starter is
// measured against, tuned for a ten-team league. Swap the table for other
// league sizes.
func DefaultBaselinePoints() map[model.Position]float64 {
	return map[model.Position]float64{
		model.POS_QB:  20.0,
		model.POS_RB:  14.0,
		model.POS_WR:  13.5,
		model.POS_TE:  10.0,
		model.POS_K:   9.0,
		model.POS_DEF: 8.0,
	}
}

// DefaultReplacementPoints is the season-total points of a freely available
// replacement at each position.
func DefaultReplacementPoints() map[model.Position]float64 {
	return map[model.Position]float64{
		model.POS_QB: 200.0,
		model.POS_RB: 150.0,
		model.POS_WR: 140.0,
		model.POS_TE: 120.0,
		model.POS_K:  100.0,
	}
}

func ValueOverReplacement(playerPoints, replacementPoints float64) float64 {
	return playerPoints - replacementPoints
}

func ValueOverBaselineStarter(playerPoints, baselinePoints float64) float64 {
	return playerPoints - baselinePoints
}

func ValueOverBenchPlayer(playerPoints, bestBenchPoints float64) float64 {
	return playerPoints - bestBenchPoints
}

// SelfInflictedLoss reports a week where the lineup choice, not the roster,
// cost the game: the projected lineup would have beaten the opponent but the
// actual lineup did not.
func SelfInflictedLoss(projectedPoints, actualPoints, opponentPoints float64) bool {
	return projectedPoints > opponentPoints && actualPoints < opponentPoints
}

// PotentialWin is the hindsight variant of SelfInflictedLoss: the best
// possible lineup would have won.
func PotentialWin(optimalPoints, actualPoints, opponentPoints float64) bool {
	return optimalPoints > opponentPoints && actualPoints < opponentPoints
}

func PowerRankComposite(totalPoints, optimalLineupAverage, recentAverage float64) float64 {
	return powerTotalWeight*totalPoints +
		powerOptimalWeight*optimalLineupAverage +
		powerRecentWeight*recentAverage
}

// RankByPower sorts teams descending by power score and writes 1-based
// PowerRank into each entry.
func RankByPower(teams []model.TeamMetrics) {
	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].PowerScore > teams[j].PowerScore
	})
	for i := range teams {
		teams[i].PowerRank = i + 1
	}
}

// RankByStandings writes the league's native standings order into
// SleeperRank: wins descending, then points-for descending. It does not
// reorder the slice.
func RankByStandings(teams []model.TeamMetrics) {
	order := make([]int, len(teams))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ti, tj := teams[order[a]], teams[order[b]]
		if ti.Wins != tj.Wins {
			return ti.Wins > tj.Wins
		}
		return ti.PointsFor > tj.PointsFor
	})
	for rank, i := range order {
		teams[i].SleeperRank = rank + 1
	}
}
