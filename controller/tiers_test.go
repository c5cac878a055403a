package controller

import (
	"context"
	"math"
	"testing"

	"github.com/arnavgupta1/FF-Metrics/model"
)

func TestTeamTiers(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	league := addTestLeague(t, c)
	sheet := addTestSheet(t, c)

	valuations, err := c.TeamTiers(ctx, league.ID, sheet.ID)
	if err != nil {
		t.Fatalf("error computing team tiers: %v", err)
	}
	if len(valuations) != 4 {
		t.Fatalf("expected 4 teams, got %d", len(valuations))
	}

	byRoster := map[string]model.TeamValuation{}
	for _, tv := range valuations {
		byRoster[tv.RosterID] = tv
	}

	team1 := byRoster["1"]
	if team1.TeamName != "gee17" {
		t.Errorf("unexpected team name %q", team1.TeamName)
	}

	// Roster 1 has exactly one QB, Josh Allen, tier QB1 -> average 1.0.
	qb := team1.Positions[model.POS_QB]
	if !qb.HasData {
		t.Fatal("expected QB data for roster 1")
	}
	if qb.Average != 1.0 {
		t.Errorf("expected QB average 1.0, got %f", qb.Average)
	}
	if qb.BestPlayer == nil || qb.BestPlayer.PlayerName != "Josh Allen" {
		t.Errorf("unexpected best QB: %+v", qb.BestPlayer)
	}

	// Roster 1 WRs: Jefferson (WR1), Wilson (WR2), Moore (WR5 on the
	// bench). Top-two weighting: (1+2)*0.6 + 5*0.2 over 1.4.
	wr := team1.Positions[model.POS_WR]
	expected := ((1.0+2.0)*0.6 + 5.0*0.2) / (0.6*2 + 0.2*1)
	if math.Abs(wr.Average-expected) > 1e-9 {
		t.Errorf("expected WR average %f, got %f", expected, wr.Average)
	}
	if wr.TotalPlayers != 3 {
		t.Errorf("expected 3 pooled WRs, got %d", wr.TotalPlayers)
	}

	// Every team has a defense in the fixture, and defenses carry numeric
	// tiers, so the position participates in the overall score.
	def := team1.Positions[model.POS_DEF]
	if !def.HasData {
		t.Error("expected DEF data for roster 1")
	}
	if team1.OverallScore <= 0 {
		t.Errorf("expected a positive overall score, got %f", team1.OverallScore)
	}
}

func TestTeamTiersPoolsDraftAndRoster(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	league := addTestLeague(t, c)
	sheet := addTestSheet(t, c)

	valuations, err := c.TeamTiers(ctx, league.ID, sheet.ID)
	if err != nil {
		t.Fatalf("error computing team tiers: %v", err)
	}

	// Roster 1 drafted Bijan Robinson and still rosters him; the pool must
	// hold him once.
	for _, tv := range valuations {
		if tv.RosterID != "1" {
			continue
		}
		count := 0
		for _, p := range tv.Positions[model.POS_RB].Players {
			if p.PlayerName == "Bijan Robinson" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("expected Bijan Robinson pooled exactly once, got %d", count)
		}
	}
}

func TestTeamTiersSortedByOverallScore(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	league := addTestLeague(t, c)
	sheet := addTestSheet(t, c)

	valuations, err := c.TeamTiers(ctx, league.ID, sheet.ID)
	if err != nil {
		t.Fatalf("error computing team tiers: %v", err)
	}
	for i := 1; i < len(valuations); i++ {
		if valuations[i-1].OverallScore > valuations[i].OverallScore {
			t.Fatalf("teams not sorted best-first: %f before %f",
				valuations[i-1].OverallScore, valuations[i].OverallScore)
		}
	}
}
