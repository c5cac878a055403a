package controller

import (
	"context"
	"testing"

	"github.com/arnavgupta1/FF-Metrics/model"
	"github.com/arnavgupta1/FF-Metrics/testutils"
)

func TestAnalyzeDraft(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	league := addTestLeague(t, c)
	sheet := addTestSheet(t, c)

	analysis, err := c.AnalyzeDraft(ctx, league.ID, sheet.ID)
	if err != nil {
		t.Fatalf("error analyzing draft: %v", err)
	}

	if analysis.DraftID != testutils.SleeperDraftID {
		t.Errorf("expected the most recent draft, got %s", analysis.DraftID)
	}
	if analysis.LeagueName != "Test League 2024" {
		t.Errorf("unexpected league name %q", analysis.LeagueName)
	}
	if analysis.TotalPicks != 8 {
		t.Fatalf("expected 8 picks, got %d", analysis.TotalPicks)
	}

	byName := map[string]model.PickValuation{}
	for _, p := range analysis.Picks {
		byName[p.PlayerName] = p
	}

	// Bijan Robinson: ADP 1.03 flattens to 3, drafted pick 1 -> reach +2.
	bijan := byName["Bijan Robinson"]
	if !bijan.Matched {
		t.Fatal("expected Bijan Robinson to match")
	}
	if bijan.ADP != 3 || bijan.Reach != 2 || !bijan.IsValuePick || bijan.IsReach {
		t.Errorf("unexpected valuation: %+v", bijan)
	}
	if bijan.Tier != "RB1" || bijan.TeamName != "gee17" {
		t.Errorf("unexpected pick metadata: %+v", bijan)
	}

	// Christian McCaffrey: ADP 1.01 -> 1, drafted pick 2 -> reach -1.
	cmc := byName["Christian McCaffrey"]
	if cmc.Reach != -1 || cmc.IsValuePick || !cmc.IsReach {
		t.Errorf("unexpected valuation: %+v", cmc)
	}

	// The Ravens defense is matched but has neutral reach fields.
	bal := byName["Baltimore Ravens"]
	if !bal.Matched {
		t.Fatal("expected the Ravens defense to match")
	}
	if bal.ADP != 0 || bal.Reach != 0 || bal.IsValuePick || bal.IsReach {
		t.Errorf("defense reach fields not neutral: %+v", bal)
	}
	if bal.PlayoffShare != "N/A" {
		t.Errorf("expected N/A playoff share for a defense, got %q", bal.PlayoffShare)
	}
}

func TestAnalyzeDraftPositionSummaries(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	league := addTestLeague(t, c)
	sheet := addTestSheet(t, c)

	analysis, err := c.AnalyzeDraft(ctx, league.ID, sheet.ID)
	if err != nil {
		t.Fatalf("error analyzing draft: %v", err)
	}

	byPosition := map[model.Position]model.PositionDraftSummary{}
	for _, s := range analysis.Positions {
		byPosition[s.Position] = s
	}

	// QBs drafted: Burrow (reach 37), Jackson (21), Allen (15); all value picks.
	qb := byPosition[model.POS_QB]
	if qb.TotalPicks != 3 || qb.ValuePicks != 3 || qb.ReachPicks != 0 {
		t.Errorf("unexpected QB summary: %+v", qb)
	}
	expectedAvg := (37.0 + 21.0 + 15.0) / 3.0
	if qb.AverageReach != expectedAvg {
		t.Errorf("expected average reach %f, got %f", expectedAvg, qb.AverageReach)
	}
	// Best value is the smallest reach among value picks.
	if qb.BestValue == nil || qb.BestValue.PlayerName != "Josh Allen" {
		t.Errorf("unexpected best value: %+v", qb.BestValue)
	}

	rb := byPosition[model.POS_RB]
	if rb.TotalPicks != 2 || rb.ValuePicks != 1 || rb.ReachPicks != 1 {
		t.Errorf("unexpected RB summary: %+v", rb)
	}
	if rb.WorstReach == nil || rb.WorstReach.PlayerName != "Christian McCaffrey" {
		t.Errorf("unexpected worst reach: %+v", rb.WorstReach)
	}

	// The lone DEF pick is excluded from the valid-pick aggregates but kept
	// in the pick list.
	def := byPosition[model.POS_DEF]
	if def.TotalPicks != 0 || len(def.Picks) != 1 {
		t.Errorf("unexpected DEF summary: %+v", def)
	}
}
