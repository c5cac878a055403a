package controller

import (
	"context"
	"sort"

	"github.com/arnavgupta1/FF-Metrics/model"
	"github.com/arnavgupta1/FF-Metrics/sleeper"
	"github.com/arnavgupta1/FF-Metrics/valuation"
)

// teamWeek is one roster's resolved week: actual and opponent score plus
// the derived projected and hindsight-optimal lineup points.
type teamWeek struct {
	actual    float64
	opponent  float64
	projected float64
	optimal   float64
}

func (c *controller) PowerRankings(ctx context.Context, leagueID int32) ([]model.TeamMetrics, error) {
	league, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	rosters, err := c.sleeper.GetRosters(ctx, league.ExternalID)
	if err != nil {
		return nil, err
	}
	users, err := c.sleeper.GetUsers(ctx, league.ExternalID)
	if err != nil {
		return nil, err
	}
	owners := ownerNames(rosters, users)

	players, err := c.sleeper.LoadPlayers(ctx)
	if err != nil {
		return nil, err
	}
	directory := playerDirectory(players)

	state, err := c.sleeper.GetState(ctx)
	if err != nil {
		return nil, err
	}

	weeks, err := c.loadSeason(ctx, league, state, directory)
	if err != nil {
		return nil, err
	}

	teams := make([]model.TeamMetrics, 0, len(rosters))
	for _, roster := range rosters {
		teams = append(teams, buildMetrics(roster.ID, owners[roster.ID], weeks[roster.ID]))
	}

	valuation.RankByStandings(teams)
	valuation.RankByPower(teams)
	return teams, nil
}

// loadSeason walks the played weeks and resolves every roster's weekly
// numbers. A week with no matchups ends the walk; missing projections
// degrade that week's projected points to zero.
func (c *controller) loadSeason(ctx context.Context, league *model.League, state *sleeper.NFLState, directory map[string]model.Player) (map[string][]teamWeek, error) {
	weeks := make(map[string][]teamWeek)

	lastWeek := state.Week
	if league.Year != state.Season {
		// A finished prior-season league has all its weeks available.
		lastWeek = maxSeasonWeeks
	}

	for week := 1; week <= lastWeek; week++ {
		matchups, err := c.sleeper.GetMatchups(ctx, league.ExternalID, week)
		if err != nil {
			return nil, err
		}
		if len(matchups) == 0 {
			break
		}

		projections, err := c.sleeper.GetProjections(ctx, league.Year, week)
		if err != nil {
			return nil, err
		}

		for _, m := range matchups {
			for _, id := range []string{m.TeamA.RosterID, m.TeamB.RosterID} {
				team, opponent, ok := m.ResultFor(id)
				if !ok {
					continue
				}
				addWeek(weeks, team, opponent, projections, directory, c.lineup)
			}
		}
	}
	return weeks, nil
}

const maxSeasonWeeks = 18

func addWeek(weeks map[string][]teamWeek, team, opponent *model.TeamResult, projections map[string]float64, directory map[string]model.Player, limits map[model.Position]int) {
	projected := 0.0
	for _, id := range team.StarterIDs {
		projected += projections[id]
	}

	scored := make([]valuation.ScoredPlayer, 0, len(team.PlayerPoints))
	for id, points := range team.PlayerPoints {
		player, found := directory[id]
		if !found {
			continue
		}
		scored = append(scored, valuation.ScoredPlayer{Position: player.Position, Points: points})
	}

	weeks[team.RosterID] = append(weeks[team.RosterID], teamWeek{
		actual:    team.Score,
		opponent:  opponent.Score,
		projected: projected,
		optimal:   valuation.OptimalLineupPoints(scored, limits),
	})
}

func buildMetrics(rosterID, owner string, season []teamWeek) model.TeamMetrics {
	m := model.TeamMetrics{
		RosterID: rosterID,
		Owner:    owner,
	}

	optimalTotal := 0.0
	optimalWeeks := 0
	for _, w := range season {
		m.PointsFor += w.actual
		m.PointsAgainst += w.opponent
		switch {
		case w.actual > w.opponent:
			m.Wins++
		case w.actual < w.opponent:
			m.Losses++
		default:
			m.Ties++
		}
		if valuation.SelfInflictedLoss(w.projected, w.actual, w.opponent) {
			m.SelfInflictedLosses++
		}
		if valuation.PotentialWin(w.optimal, w.actual, w.opponent) {
			m.PotentialWins++
		}
		if w.optimal > 0 {
			optimalTotal += w.optimal
			optimalWeeks++
		}
	}

	optimalAverage := 0.0
	if optimalWeeks > 0 {
		optimalAverage = optimalTotal / float64(optimalWeeks)
	}
	m.PowerScore = valuation.PowerRankComposite(m.PointsFor, optimalAverage, recentAverage(season, valuation.RecentWeeks))
	return m
}

func recentAverage(season []teamWeek, n int) float64 {
	if len(season) == 0 {
		return 0
	}
	start := len(season) - n
	if start < 0 {
		start = 0
	}
	recent := season[start:]

	total := 0.0
	for _, w := range recent {
		total += w.actual
	}
	return total / float64(len(recent))
}

func (c *controller) PlayerValues(ctx context.Context, leagueID int32) ([]model.PlayerValue, error) {
	league, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	rosters, err := c.sleeper.GetRosters(ctx, league.ExternalID)
	if err != nil {
		return nil, err
	}
	users, err := c.sleeper.GetUsers(ctx, league.ExternalID)
	if err != nil {
		return nil, err
	}
	owners := ownerNames(rosters, users)

	players, err := c.sleeper.LoadPlayers(ctx)
	if err != nil {
		return nil, err
	}
	directory := playerDirectory(players)

	stats, err := c.sleeper.GetStats(ctx, league.Year)
	if err != nil {
		return nil, err
	}

	values := make([]model.PlayerValue, 0, len(rosters)*16)
	for _, roster := range rosters {
		bench := make([]float64, 0, len(roster.PlayerIDs))
		for _, id := range roster.BenchIDs() {
			bench = append(bench, stats[id])
		}
		bestBench := valuation.BestBenchPoints(bench)

		for _, id := range roster.PlayerIDs {
			player, found := directory[id]
			if !found {
				continue
			}
			points := stats[id]
			values = append(values, model.PlayerValue{
				PlayerID: id,
				Name:     player.FullName(),
				Owner:    owners[roster.ID],
				Position: player.Position,
				Points:   points,
				VORP:     valuation.ValueOverReplacement(points, c.replacement[player.Position]),
				VORS:     valuation.ValueOverBaselineStarter(points, c.baseline[player.Position]),
				VOBP:     valuation.ValueOverBenchPlayer(points, bestBench),
			})
		}
	}

	rankByPosition(values)
	sort.SliceStable(values, func(i, j int) bool { return values[i].Points > values[j].Points })
	return values, nil
}

// rankByPosition assigns each player's points rank within their position
// group, 1 = highest scorer.
func rankByPosition(values []model.PlayerValue) {
	byPosition := make(map[model.Position][]int)
	for i, v := range values {
		byPosition[v.Position] = append(byPosition[v.Position], i)
	}

	for _, indexes := range byPosition {
		sort.SliceStable(indexes, func(a, b int) bool {
			return values[indexes[a]].Points > values[indexes[b]].Points
		})
		for rank, i := range indexes {
			values[i].Rank = rank + 1
		}
	}
}
