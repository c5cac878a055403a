package controller

import (
	"context"
	"sort"

	"github.com/arnavgupta1/FF-Metrics/match"
	"github.com/arnavgupta1/FF-Metrics/model"
)

func (c *controller) TeamTiers(ctx context.Context, leagueID, sheetID int32) ([]model.TeamValuation, error) {
	league, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	records, err := c.ParseSheet(ctx, sheetID)
	if err != nil {
		return nil, err
	}
	index := match.NewIndex(records)

	players, err := c.sleeper.LoadPlayers(ctx)
	if err != nil {
		return nil, err
	}
	directory := playerDirectory(players)

	rosters, err := c.sleeper.GetRosters(ctx, league.ExternalID)
	if err != nil {
		return nil, err
	}
	users, err := c.sleeper.GetUsers(ctx, league.ExternalID)
	if err != nil {
		return nil, err
	}
	owners := ownerNames(rosters, users)

	draftPicks, err := c.draftPool(ctx, league.ExternalID, directory, index)
	if err != nil {
		return nil, err
	}
	picksByRoster := make(map[string][]model.PickValuation)
	for _, v := range draftPicks {
		picksByRoster[v.RosterID] = append(picksByRoster[v.RosterID], v)
	}

	valuations := make([]model.TeamValuation, 0, len(rosters))
	for _, roster := range rosters {
		pool := c.teamPool(roster, picksByRoster[roster.ID], directory, index)

		tv := model.TeamValuation{
			TeamName:  owners[roster.ID],
			RosterID:  roster.ID,
			OwnerID:   roster.OwnerID,
			Positions: make(map[model.Position]model.PositionTierAggregate, len(model.AllPositions)),
		}
		for _, position := range model.AllPositions {
			tv.Positions[position] = c.aggregatePosition(position, pool[position])
		}
		tv.OverallScore = c.tiers.OverallScore(tv.Positions)
		valuations = append(valuations, tv)
	}

	sort.SliceStable(valuations, func(i, j int) bool {
		return valuations[i].OverallScore < valuations[j].OverallScore
	})
	return valuations, nil
}

// teamPool unions a team's draft picks with its current roster, de-duped by
// normalized name and position. Rostered players not in the draft (waiver
// adds, trades) enter as pickless valuations.
func (c *controller) teamPool(roster model.Roster, picks []model.PickValuation, directory map[string]model.Player, index *match.Index) map[model.Position][]model.PickValuation {
	pool := make(map[model.Position][]model.PickValuation)
	seen := make(map[string]bool)

	add := func(v model.PickValuation) {
		key := string(v.Position) + "|" + match.Normalize(v.PlayerName)
		if seen[key] {
			return
		}
		seen[key] = true
		pool[v.Position] = append(pool[v.Position], v)
	}

	for _, v := range picks {
		add(v)
	}
	for _, id := range roster.PlayerIDs {
		player, found := directory[id]
		if !found {
			continue
		}
		v := c.valuePick(model.DraftPick{RosterID: roster.ID}, &player, index)
		add(v)
	}
	return pool
}

// aggregatePosition turns one position's player pool into a tier aggregate.
// Players whose records carry no usable rank are kept in the pool but
// excluded from the average; a pool with no ranked players at all yields
// HasData=false.
func (c *controller) aggregatePosition(position model.Position, pool []model.PickValuation) model.PositionTierAggregate {
	agg := model.PositionTierAggregate{
		Position:     position,
		Players:      pool,
		TotalPlayers: len(pool),
	}

	rankValues := make([]float64, 0, len(pool))
	bestRank := 0.0
	for i := range pool {
		v := &pool[i]
		if !v.Matched {
			continue
		}
		rank, ok := c.tiers.RankValue(model.RankingRecord{
			Name:         v.PlayerName,
			Position:     v.Position,
			Tier:         v.Tier,
			PositionRank: v.PositionRank,
		})
		if !ok {
			continue
		}
		rankValues = append(rankValues, rank)
		if agg.BestPlayer == nil || rank < bestRank {
			agg.BestPlayer = v
			bestRank = rank
		}
	}

	if avg, ok := c.tiers.PositionAverage(position, rankValues); ok {
		agg.Average = avg
		agg.HasData = true
	}
	return agg
}
