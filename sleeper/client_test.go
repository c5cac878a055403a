package sleeper

import (
	"context"
	"testing"

	"github.com/arnavgupta1/FF-Metrics/model"
	"github.com/arnavgupta1/FF-Metrics/testutils"
)

func TestGetLeague(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	l, err := c.GetLeague(context.Background(), testutils.SleeperLeagueID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.ExternalID != testutils.SleeperLeagueID {
		t.Errorf("wrong league id: %s", l.ExternalID)
	}
	if l.Name != "Test League 2024" || l.Year != "2024" {
		t.Errorf("unexpected league data: %+v", l)
	}
	if l.Status != model.StatusInSeason {
		t.Errorf("expected in_season status, got %s", l.Status)
	}
	if l.TotalRosters != 4 {
		t.Errorf("expected 4 rosters, got %d", l.TotalRosters)
	}
}

func TestGetLeagueNotFound(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	if _, err := c.GetLeague(context.Background(), "1"); err == nil {
		t.Fatal("expected an error for an unknown league")
	}
}

func TestGetLeagueRetriesAfterRateLimit(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	fakeSleeper.RateLimitNextRequest()
	c := NewForTest(fakeSleeper.URL())

	l, err := c.GetLeague(context.Background(), testutils.SleeperLeagueID)
	if err != nil {
		t.Fatalf("expected retry to succeed, got: %v", err)
	}
	if l.Name != "Test League 2024" {
		t.Errorf("unexpected league data after retry: %+v", l)
	}
}

func TestGetRosters(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	rosters, err := c.GetRosters(context.Background(), testutils.SleeperLeagueID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rosters) != 4 {
		t.Fatalf("expected 4 rosters, got %d", len(rosters))
	}

	r := rosters[0]
	if r.ID != "1" {
		t.Errorf("expected roster id 1, got %s", r.ID)
	}
	if len(r.PlayerIDs) != 9 || len(r.StarterIDs) != 8 {
		t.Errorf("unexpected roster sizes: %d players, %d starters", len(r.PlayerIDs), len(r.StarterIDs))
	}
	bench := r.BenchIDs()
	if len(bench) != 1 || bench[0] != "7588" {
		t.Errorf("unexpected bench: %v", bench)
	}
}

func TestGetUsers(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	users, err := c.GetUsers(context.Background(), testutils.SleeperLeagueID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 4 {
		t.Fatalf("expected 4 users, got %d", len(users))
	}
	if users[0].ID != "300638784440004608" || users[0].DisplayName != "gee17" {
		t.Errorf("unexpected user: %+v", users[0])
	}
}

func TestGetMatchupsPairsByMatchupID(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	matchups, err := c.GetMatchups(context.Background(), testutils.SleeperLeagueID, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matchups) != 2 {
		t.Fatalf("expected 2 matchups, got %d", len(matchups))
	}

	m := matchups[0]
	team, opponent, ok := m.ResultFor("1")
	if !ok {
		t.Fatal("expected roster 1 in the first matchup")
	}
	if team.Score != 112.5 || opponent.Score != 98.2 {
		t.Errorf("unexpected scores: for=%f against=%f", team.Score, opponent.Score)
	}
}

func TestGetMatchupsDropsUnpairedEntries(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	// Week 2 fixture contains a stray single-roster matchup id.
	matchups, err := c.GetMatchups(context.Background(), testutils.SleeperLeagueID, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matchups) != 2 {
		t.Fatalf("expected stray entry dropped, got %d matchups", len(matchups))
	}
}

func TestGetDraftsMostRecentFirst(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	drafts, err := c.GetDrafts(context.Background(), testutils.SleeperLeagueID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(drafts))
	}
	if drafts[0].ID != testutils.SleeperDraftID || drafts[0].Season != "2024" {
		t.Errorf("expected the 2024 draft first, got %+v", drafts[0])
	}
}

func TestGetDraftPicks(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	picks, err := c.GetDraftPicks(context.Background(), testutils.SleeperDraftID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(picks) != 8 {
		t.Fatalf("expected 8 picks, got %d", len(picks))
	}
	first := picks[0]
	if first.PickNo != 1 || first.Round != 1 || first.RosterID != "1" || first.PlayerID != "9509" {
		t.Errorf("unexpected first pick: %+v", first)
	}
}

func TestLoadPlayersFiltersInvalidEntries(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	players, err := c.LoadPlayers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byID := map[string]model.Player{}
	for _, p := range players {
		byID[p.ID] = p
	}

	if _, found := byID["0000"]; found {
		t.Error("the Player Invalid placeholder should be filtered")
	}
	if _, found := byID["1111"]; found {
		t.Error("players at unknown positions should be filtered")
	}

	p, found := byID["4984"]
	if !found {
		t.Fatal("expected Josh Allen in the directory")
	}
	if p.FirstName != "Josh" || p.LastName != "Allen" || p.Position != model.POS_QB {
		t.Errorf("unexpected player data: %+v", p)
	}
	def, found := byID["BAL"]
	if !found {
		t.Fatal("expected the Ravens defense in the directory")
	}
	if def.Position != model.POS_DEF || def.FullName() != "Baltimore Ravens" {
		t.Errorf("unexpected defense data: %+v", def)
	}
}

func TestGetStats(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	stats, err := c.GetStats(context.Background(), "2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats["4984"] != 389.2 {
		t.Errorf("expected ppr points, got %f", stats["4984"])
	}
	// Defenses only carry standard points in the fixture.
	if stats["BAL"] != 131.5 {
		t.Errorf("expected std fallback, got %f", stats["BAL"])
	}
}

func TestGetStatsMissingSeasonDegrades(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	stats, err := c.GetStats(context.Background(), "1987")
	if err != nil {
		t.Fatalf("missing stats should degrade, got: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("expected empty stats, got %d entries", len(stats))
	}
}

func TestGetProjectionsMissingWeekDegrades(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	projections, err := c.GetProjections(context.Background(), "2024", 9)
	if err != nil {
		t.Fatalf("missing projections should degrade, got: %v", err)
	}
	if len(projections) != 0 {
		t.Errorf("expected empty projections, got %d entries", len(projections))
	}
}

func TestGetState(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	state, err := c.GetState(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Season != "2024" || state.Week != 2 {
		t.Errorf("unexpected state: %+v", state)
	}
}
