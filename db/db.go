// Package db persists the two things that outlive a request: uploaded
// ranking sheets (raw text, parsed fresh per analysis) and registered
// leagues. All analysis output is request-scoped and never stored.
package db

import (
	"context"

	"github.com/arnavgupta1/FF-Metrics/model"
)

type DB interface {
	// ListSheets returns the 20 most recent sheets, newest first, with the
	// raw text omitted. Use GetSheet for the full text.
	ListSheets(ctx context.Context) ([]model.Sheet, error)
	GetSheet(ctx context.Context, id int32) (*model.Sheet, error)
	AddSheet(ctx context.Context, name, raw string) (*model.Sheet, error)
	DeleteSheet(ctx context.Context, id int32) error

	ListLeagues(ctx context.Context) ([]model.League, error)
	GetLeague(ctx context.Context, id int32) (*model.League, error)
	AddLeague(ctx context.Context, league *model.League) error
	UpdateLeague(ctx context.Context, league *model.League) error
	ArchiveLeague(ctx context.Context, id int32) error
}
