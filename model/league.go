package model

import (
	"strings"
)

type LeagueStatus string

const (
	StatusPreDraft  LeagueStatus = "pre_draft"
	StatusDrafting  LeagueStatus = "drafting"
	StatusInSeason  LeagueStatus = "in_season"
	StatusComplete  LeagueStatus = "complete"
	StatusPostDraft LeagueStatus = "post_draft"
)

// ParseLeagueStatus is lenient: statuses Sleeper adds later pass through
// unchanged rather than failing league registration.
func ParseLeagueStatus(s string) LeagueStatus {
	switch strings.ToLower(s) {
	case "pre_draft":
		return StatusPreDraft
	case "drafting":
		return StatusDrafting
	case "in_season":
		return StatusInSeason
	case "complete":
		return StatusComplete
	case "post_draft":
		return StatusPostDraft
	default:
		return LeagueStatus(s)
	}
}

type League struct {
	ID           int32
	ExternalID   string
	Name         string
	Year         string
	Status       LeagueStatus
	TotalRosters int
	Archived     bool
}

// User maps a Sleeper user id to a display name, used for owner resolution.
type User struct {
	ID          string
	DisplayName string
}

type Roster struct {
	ID         string
	OwnerID    string
	PlayerIDs  []string
	StarterIDs []string
}

// BenchIDs returns the roster players that are not in the starting lineup.
func (r *Roster) BenchIDs() []string {
	starters := make(map[string]bool, len(r.StarterIDs))
	for _, id := range r.StarterIDs {
		starters[id] = true
	}

	bench := make([]string, 0, len(r.PlayerIDs))
	for _, id := range r.PlayerIDs {
		if !starters[id] {
			bench = append(bench, id)
		}
	}
	return bench
}

// TeamResult is one roster's side of a weekly matchup. PlayerPoints holds
// the week's points for every rostered player, which is what makes
// hindsight-optimal lineup math possible.
type TeamResult struct {
	RosterID     string
	Score        float64
	StarterIDs   []string
	PlayerPoints map[string]float64
}

// Matchup is a single week's head-to-head pairing. Both sides are always
// present; unpaired results are dropped before a Matchup is built.
type Matchup struct {
	TeamA     *TeamResult
	TeamB     *TeamResult
	MatchupID int32
	Week      int
}

// ResultFor returns the given roster's side of the matchup and its
// opponent, and false if the roster did not play in this matchup.
func (m *Matchup) ResultFor(rosterID string) (team, opponent *TeamResult, ok bool) {
	switch rosterID {
	case m.TeamA.RosterID:
		return m.TeamA, m.TeamB, true
	case m.TeamB.RosterID:
		return m.TeamB, m.TeamA, true
	default:
		return nil, nil, false
	}
}

type Draft struct {
	ID     string
	Season string
}

type DraftPick struct {
	PickNo   int
	Round    int
	RosterID string
	PickedBy string
	PlayerID string
}
