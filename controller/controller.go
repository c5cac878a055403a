// Package controller encapsulates the business logic without worrying
// about any web layers. Analysis output (draft valuations, team tiers,
// power rankings, player values) is computed fresh per call from the stored
// sheet text and live Sleeper data; none of it is persisted.
package controller

import (
	"context"
	"errors"
	"io"

	"github.com/arnavgupta1/FF-Metrics/db"
	"github.com/arnavgupta1/FF-Metrics/model"
	"github.com/arnavgupta1/FF-Metrics/sheet"
	"github.com/arnavgupta1/FF-Metrics/sleeper"
	"github.com/arnavgupta1/FF-Metrics/valuation"
	"github.com/itbasis/go-clock"
)

var ErrNoDraft = errors.New("league has no drafts")

type C interface {
	// AddSheet stores a ranking sheet export. The text is validated by a
	// trial parse before it is saved.
	AddSheet(ctx context.Context, name string, r io.Reader) (*model.Sheet, error)
	GetSheet(ctx context.Context, id int32) (*model.Sheet, error)
	ListSheets(ctx context.Context) ([]model.Sheet, error)
	DeleteSheet(ctx context.Context, id int32) error
	// ParseSheet returns the de-duplicated ranking records of a stored
	// sheet.
	ParseSheet(ctx context.Context, id int32) ([]model.RankingRecord, error)

	// AddLeague registers a Sleeper league by its external id, pulling the
	// metadata from the API.
	AddLeague(ctx context.Context, externalID string) (*model.League, error)
	GetLeague(ctx context.Context, id int32) (*model.League, error)
	ListLeagues(ctx context.Context) ([]model.League, error)
	ArchiveLeague(ctx context.Context, id int32) error
	// RefreshLeague re-fetches the league metadata from Sleeper and saves
	// the current name, season and status.
	RefreshLeague(ctx context.Context, id int32) (*model.League, error)

	// AnalyzeDraft values every pick of the league's most recent draft
	// against a stored ranking sheet.
	AnalyzeDraft(ctx context.Context, leagueID, sheetID int32) (*model.DraftAnalysis, error)
	// TeamTiers computes per-team position-tier averages over the pool of
	// drafted plus rostered players.
	TeamTiers(ctx context.Context, leagueID, sheetID int32) ([]model.TeamValuation, error)
	// PowerRankings computes season metrics and both ranking orders for
	// every team in the league.
	PowerRankings(ctx context.Context, leagueID int32) ([]model.TeamMetrics, error)
	// PlayerValues computes VORP/VORS/VOBP for every rostered player.
	PlayerValues(ctx context.Context, leagueID int32) ([]model.PlayerValue, error)
}

type controller struct {
	clock   clock.Clock
	sleeper sleeper.Client
	db      db.DB

	layout      sheet.Layout
	tiers       valuation.TierConfig
	baseline    map[model.Position]float64
	replacement map[model.Position]float64
	lineup      map[model.Position]int
}

func New(clock clock.Clock, sleeper sleeper.Client, db db.DB) (C, error) {
	c := &controller{
		clock:       clock,
		sleeper:     sleeper,
		db:          db,
		layout:      sheet.DefaultLayout(),
		tiers:       valuation.DefaultTierConfig(),
		baseline:    valuation.DefaultBaselinePoints(),
		replacement: valuation.DefaultReplacementPoints(),
		lineup:      valuation.DefaultLineupLimits(),
	}
	return c, nil
}

// ownerNames maps roster ids to owner display names. Rosters without a
// resolvable owner fall back to the roster id.
func ownerNames(rosters []model.Roster, users []model.User) map[string]string {
	byID := make(map[string]string, len(users))
	for _, u := range users {
		byID[u.ID] = u.DisplayName
	}

	names := make(map[string]string, len(rosters))
	for _, r := range rosters {
		if name, ok := byID[r.OwnerID]; ok && name != "" {
			names[r.ID] = name
		} else {
			names[r.ID] = "Roster " + r.ID
		}
	}
	return names
}

func playerDirectory(players []model.Player) map[string]model.Player {
	byID := make(map[string]model.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}
	return byID
}
