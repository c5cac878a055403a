package sleeper

import (
	"strconv"

	"github.com/arnavgupta1/FF-Metrics/model"
)

// Wire shapes for the Sleeper API. Conversion to model types happens here
// so the client methods stay readable.

type leagueJSON struct {
	LeagueID     string `json:"league_id"`
	Name         string `json:"name"`
	Season       string `json:"season"`
	Status       string `json:"status"`
	TotalRosters int    `json:"total_rosters"`
}

func (l *leagueJSON) toLeague() *model.League {
	return &model.League{
		ExternalID:   l.LeagueID,
		Name:         l.Name,
		Year:         l.Season,
		Status:       model.ParseLeagueStatus(l.Status),
		TotalRosters: l.TotalRosters,
	}
}

type rosterJSON struct {
	RosterID int      `json:"roster_id"`
	OwnerID  string   `json:"owner_id"`
	Players  []string `json:"players"`
	Starters []string `json:"starters"`
}

func (r *rosterJSON) toRoster() *model.Roster {
	return &model.Roster{
		ID:         strconv.Itoa(r.RosterID),
		OwnerID:    r.OwnerID,
		PlayerIDs:  r.Players,
		StarterIDs: r.Starters,
	}
}

type userJSON struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

type matchupJSON struct {
	RosterID      int                `json:"roster_id"`
	MatchupID     int32              `json:"matchup_id"`
	Points        float64            `json:"points"`
	Starters      []string           `json:"starters"`
	PlayersPoints map[string]float64 `json:"players_points"`
}

func (m *matchupJSON) toResult() *model.TeamResult {
	return &model.TeamResult{
		RosterID:     strconv.Itoa(m.RosterID),
		Score:        m.Points,
		StarterIDs:   m.Starters,
		PlayerPoints: m.PlayersPoints,
	}
}

type draftJSON struct {
	DraftID string `json:"draft_id"`
	Season  string `json:"season"`
	Status  string `json:"status"`
	Created int64  `json:"created"`
}

type draftPickJSON struct {
	PickNo   int    `json:"pick_no"`
	Round    int    `json:"round"`
	RosterID int    `json:"roster_id"`
	PickedBy string `json:"picked_by"`
	PlayerID string `json:"player_id"`
}

type sleeperPlayer struct {
	ID        string `json:"player_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
	Active    bool   `json:"active"`
}

func (p *sleeperPlayer) toPlayer() *model.Player {
	return &model.Player{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Position:  model.ParsePosition(p.Position),
		Team:      p.Team,
		Active:    p.Active,
	}
}

// statLine is one player's stat or projection map. Only the fantasy-points
// entries matter; PPR is preferred, with half-PPR and standard as
// fallbacks.
type statLine map[string]float64

func (s statLine) fantasyPoints() float64 {
	for _, key := range []string{"pts_ppr", "pts_half_ppr", "pts_std"} {
		if v, ok := s[key]; ok {
			return v
		}
	}
	return 0
}

func points(lines map[string]statLine) map[string]float64 {
	out := make(map[string]float64, len(lines))
	for id, line := range lines {
		out[id] = line.fantasyPoints()
	}
	return out
}

type nflStateJSON struct {
	Season string `json:"season"`
	Week   int    `json:"week"`
}
