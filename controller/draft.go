package controller

import (
	"context"
	"fmt"

	"github.com/arnavgupta1/FF-Metrics/match"
	"github.com/arnavgupta1/FF-Metrics/model"
)

func (c *controller) AnalyzeDraft(ctx context.Context, leagueID, sheetID int32) (*model.DraftAnalysis, error) {
	league, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	records, err := c.ParseSheet(ctx, sheetID)
	if err != nil {
		return nil, err
	}
	index := match.NewIndex(records)

	drafts, err := c.sleeper.GetDrafts(ctx, league.ExternalID)
	if err != nil {
		return nil, err
	}
	if len(drafts) == 0 {
		return nil, ErrNoDraft
	}
	draft := drafts[0]

	picks, err := c.sleeper.GetDraftPicks(ctx, draft.ID)
	if err != nil {
		return nil, err
	}

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

	valuations := make([]model.PickValuation, 0, len(picks))
	for _, pick := range picks {
		player, found := directory[pick.PlayerID]
		if !found {
			continue
		}
		v := c.valuePick(pick, &player, index)
		v.TeamName = owners[pick.RosterID]
		valuations = append(valuations, v)
	}

	return &model.DraftAnalysis{
		LeagueID:   league.ID,
		DraftID:    draft.ID,
		LeagueName: league.Name,
		TotalPicks: len(valuations),
		Positions:  positionSummaries(valuations),
		Picks:      valuations,
	}, nil
}

// valuePick matches one draft pick against the ranking index and computes
// its reach classification. Kickers and defenses structurally lack ADP, so
// their reach fields are forced neutral no matter what the sheet holds.
func (c *controller) valuePick(pick model.DraftPick, player *model.Player, index *match.Index) model.PickValuation {
	v := model.PickValuation{
		PickNumber:   pick.PickNo,
		PlayerName:   player.FullName(),
		Position:     player.Position,
		RosterID:     pick.RosterID,
		ValueOverADP: "N/A",
		Tier:         "N/A",
		PlayoffShare: "N/A",
	}

	rec, found := index.Find(player.FullName(), player.Position)
	if !found {
		return v
	}

	v.Matched = true
	v.ExpertRank = rec.ECR
	v.PositionRank = rec.PositionRank
	v.Tier = rec.Tier
	v.Val = rec.Val
	v.ValueOverADP = rec.ValueOverADP
	v.PlayoffShare = rec.PlayoffShare

	if neutralReach(player.Position) {
		v.ValueOverADP = "N/A"
		v.PlayoffShare = "N/A"
		return v
	}

	v.ADP = rec.ADP
	if rec.ADP > 0 {
		v.Reach = rec.ADP - float64(pick.PickNo)
		v.IsValuePick = v.Reach > 0
		v.IsReach = v.Reach < 0
	}
	return v
}

func neutralReach(p model.Position) bool {
	return p == model.POS_K || p == model.POS_DEF
}

func validPick(v model.PickValuation) bool {
	return v.Matched && v.ADP > 0 && !neutralReach(v.Position)
}

func positionSummaries(picks []model.PickValuation) []model.PositionDraftSummary {
	byPosition := make(map[model.Position][]model.PickValuation)
	for _, v := range picks {
		byPosition[v.Position] = append(byPosition[v.Position], v)
	}

	summaries := make([]model.PositionDraftSummary, 0, len(byPosition))
	for _, position := range model.AllPositions {
		positionPicks, found := byPosition[position]
		if !found {
			continue
		}
		summaries = append(summaries, summarizePosition(position, positionPicks))
	}
	return summaries
}

func summarizePosition(position model.Position, picks []model.PickValuation) model.PositionDraftSummary {
	s := model.PositionDraftSummary{
		Position: position,
		Picks:    picks,
	}

	totalReach := 0.0
	for i := range picks {
		v := &picks[i]
		if !validPick(*v) {
			continue
		}
		s.TotalPicks++
		totalReach += v.Reach

		if v.IsValuePick {
			s.ValuePicks++
			if s.BestValue == nil || v.Reach < s.BestValue.Reach {
				s.BestValue = v
			}
		}
		if v.IsReach {
			s.ReachPicks++
			if s.WorstReach == nil || v.Reach > s.WorstReach.Reach {
				s.WorstReach = v
			}
		}
	}

	if s.TotalPicks > 0 {
		s.AverageReach = totalReach / float64(s.TotalPicks)
	}
	return s
}

// draftPool returns the league's draft picks as pick valuations, used by
// the tier aggregation to pool drafted and rostered players.
func (c *controller) draftPool(ctx context.Context, externalID string, directory map[string]model.Player, index *match.Index) ([]model.PickValuation, error) {
	drafts, err := c.sleeper.GetDrafts(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if len(drafts) == 0 {
		return nil, nil
	}

	picks, err := c.sleeper.GetDraftPicks(ctx, drafts[0].ID)
	if err != nil {
		return nil, fmt.Errorf("error loading picks for draft %s: %w", drafts[0].ID, err)
	}

	valuations := make([]model.PickValuation, 0, len(picks))
	for _, pick := range picks {
		player, found := directory[pick.PlayerID]
		if !found {
			continue
		}
		valuations = append(valuations, c.valuePick(pick, &player, index))
	}
	return valuations, nil
}
