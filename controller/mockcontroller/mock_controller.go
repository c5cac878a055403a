package mockcontroller

import (
	"context"
	"io"

	"github.com/arnavgupta1/FF-Metrics/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) AddSheet(ctx context.Context, name string, r io.Reader) (*model.Sheet, error) {
	args := c.Called(ctx, name, r)

	var s *model.Sheet
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Sheet)
	}
	return s, args.Error(1)
}

func (c *C) GetSheet(ctx context.Context, id int32) (*model.Sheet, error) {
	args := c.Called(ctx, id)

	var s *model.Sheet
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Sheet)
	}
	return s, args.Error(1)
}

func (c *C) ListSheets(ctx context.Context) ([]model.Sheet, error) {
	args := c.Called(ctx)

	var res []model.Sheet
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Sheet)
	}
	return res, args.Error(1)
}

func (c *C) DeleteSheet(ctx context.Context, id int32) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) ParseSheet(ctx context.Context, id int32) ([]model.RankingRecord, error) {
	args := c.Called(ctx, id)

	var res []model.RankingRecord
	if args.Get(0) != nil {
		res = args.Get(0).([]model.RankingRecord)
	}
	return res, args.Error(1)
}

func (c *C) AddLeague(ctx context.Context, externalID string) (*model.League, error) {
	args := c.Called(ctx, externalID)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}
	return l, args.Error(1)
}

func (c *C) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	args := c.Called(ctx, id)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}
	return l, args.Error(1)
}

func (c *C) ListLeagues(ctx context.Context) ([]model.League, error) {
	args := c.Called(ctx)

	var res []model.League
	if args.Get(0) != nil {
		res = args.Get(0).([]model.League)
	}
	return res, args.Error(1)
}

func (c *C) ArchiveLeague(ctx context.Context, id int32) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) RefreshLeague(ctx context.Context, id int32) (*model.League, error) {
	args := c.Called(ctx, id)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}
	return l, args.Error(1)
}

func (c *C) AnalyzeDraft(ctx context.Context, leagueID, sheetID int32) (*model.DraftAnalysis, error) {
	args := c.Called(ctx, leagueID, sheetID)

	var a *model.DraftAnalysis
	if args.Get(0) != nil {
		a = args.Get(0).(*model.DraftAnalysis)
	}
	return a, args.Error(1)
}

func (c *C) TeamTiers(ctx context.Context, leagueID, sheetID int32) ([]model.TeamValuation, error) {
	args := c.Called(ctx, leagueID, sheetID)

	var res []model.TeamValuation
	if args.Get(0) != nil {
		res = args.Get(0).([]model.TeamValuation)
	}
	return res, args.Error(1)
}

func (c *C) PowerRankings(ctx context.Context, leagueID int32) ([]model.TeamMetrics, error) {
	args := c.Called(ctx, leagueID)

	var res []model.TeamMetrics
	if args.Get(0) != nil {
		res = args.Get(0).([]model.TeamMetrics)
	}
	return res, args.Error(1)
}

func (c *C) PlayerValues(ctx context.Context, leagueID int32) ([]model.PlayerValue, error) {
	args := c.Called(ctx, leagueID)

	var res []model.PlayerValue
	if args.Get(0) != nil {
		res = args.Get(0).([]model.PlayerValue)
	}
	return res, args.Error(1)
}
