package valuation

import (
	"math"
	"testing"

	"github.com/arnavgupta1/FF-Metrics/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestValueDeltas(t *testing.T) {
	if v := ValueOverReplacement(250, 200); v != 50 {
		t.Errorf("expected VORP 50, got %f", v)
	}
	if v := ValueOverBaselineStarter(12.5, 14.0); v != -1.5 {
		t.Errorf("expected VORS -1.5, got %f", v)
	}
	if v := ValueOverBenchPlayer(18, 11); v != 7 {
		t.Errorf("expected VOBP 7, got %f", v)
	}
}

func TestSelfInflictedLoss(t *testing.T) {
	tests := []struct {
		projected, actual, opponent float64
		expected                    bool
	}{
		{120, 95, 100, true},   // projected to win, lost
		{120, 105, 100, false}, // won anyway
		{90, 85, 100, false},   // never projected to win
		{100, 95, 100, false},  // projection ties, not beats
	}
	for _, tc := range tests {
		if got := SelfInflictedLoss(tc.projected, tc.actual, tc.opponent); got != tc.expected {
			t.Errorf("SelfInflictedLoss(%f, %f, %f) = %t, expected %t",
				tc.projected, tc.actual, tc.opponent, got, tc.expected)
		}
	}
}

func TestPotentialWin(t *testing.T) {
	if !PotentialWin(130, 95, 100) {
		t.Error("expected potential win when optimal beats opponent and actual does not")
	}
	if PotentialWin(130, 105, 100) {
		t.Error("a game actually won is not a potential win")
	}
}

func TestPowerRankComposite(t *testing.T) {
	got := PowerRankComposite(1000, 120, 110)
	expected := 0.4*1000 + 0.35*120 + 0.25*110
	if !almostEqual(got, expected) {
		t.Errorf("expected composite %f, got %f", expected, got)
	}
}

func TestRankByPowerAndStandingsAreIndependent(t *testing.T) {
	teams := []model.TeamMetrics{
		{RosterID: "1", Wins: 8, PointsFor: 900, PowerScore: 400},
		{RosterID: "2", Wins: 5, PointsFor: 1100, PowerScore: 520},
		{RosterID: "3", Wins: 8, PointsFor: 950, PowerScore: 460},
	}

	RankByStandings(teams)
	RankByPower(teams)

	byRoster := map[string]model.TeamMetrics{}
	for _, tm := range teams {
		byRoster[tm.RosterID] = tm
	}

	// Standings: wins first, points break the tie.
	if byRoster["3"].SleeperRank != 1 || byRoster["1"].SleeperRank != 2 || byRoster["2"].SleeperRank != 3 {
		t.Errorf("unexpected standings ranks: %+v", byRoster)
	}
	// Power: composite only.
	if byRoster["2"].PowerRank != 1 || byRoster["3"].PowerRank != 2 || byRoster["1"].PowerRank != 3 {
		t.Errorf("unexpected power ranks: %+v", byRoster)
	}
}

func TestOptimalLineupPoints(t *testing.T) {
	players := []ScoredPlayer{
		{model.POS_QB, 25},
		{model.POS_QB, 18}, // second QB never starts
		{model.POS_RB, 20},
		{model.POS_RB, 15},
		{model.POS_RB, 12}, // best flex
		{model.POS_WR, 14},
		{model.POS_WR, 13},
		{model.POS_WR, 9},
		{model.POS_TE, 8},
		{model.POS_K, 10},
	}

	got := OptimalLineupPoints(players, DefaultLineupLimits())
	expected := 25.0 + 20 + 15 + 14 + 13 + 8 + 10 + 12
	if !almostEqual(got, expected) {
		t.Errorf("expected %f, got %f", expected, got)
	}
}

func TestOptimalLineupPointsEmptyRoster(t *testing.T) {
	if got := OptimalLineupPoints(nil, DefaultLineupLimits()); got != 0 {
		t.Errorf("expected 0 for empty roster, got %f", got)
	}
}

func TestBestBenchPoints(t *testing.T) {
	if got := BestBenchPoints([]float64{3, 11.5, 7}); got != 11.5 {
		t.Errorf("expected 11.5, got %f", got)
	}
	if got := BestBenchPoints(nil); got != 0 {
		t.Errorf("expected 0 for empty bench, got %f", got)
	}
}
