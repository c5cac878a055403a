package controller

import (
	"context"
	"fmt"

	"github.com/arnavgupta1/FF-Metrics/model"
)

func (c *controller) AddLeague(ctx context.Context, externalID string) (*model.League, error) {
	if externalID == "" {
		return nil, fmt.Errorf("league id must not be empty")
	}

	l, err := c.sleeper.GetLeague(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("error fetching league %s: %w", externalID, err)
	}

	if err := c.db.AddLeague(ctx, l); err != nil {
		return nil, fmt.Errorf("error saving league: %w", err)
	}
	return l, nil
}

func (c *controller) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	return c.db.GetLeague(ctx, id)
}

func (c *controller) ListLeagues(ctx context.Context) ([]model.League, error) {
	return c.db.ListLeagues(ctx)
}

func (c *controller) ArchiveLeague(ctx context.Context, id int32) error {
	return c.db.ArchiveLeague(ctx, id)
}

func (c *controller) RefreshLeague(ctx context.Context, id int32) (*model.League, error) {
	l, err := c.db.GetLeague(ctx, id)
	if err != nil {
		return nil, err
	}

	fresh, err := c.sleeper.GetLeague(ctx, l.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("error refreshing league %d: %w", id, err)
	}

	l.Name = fresh.Name
	l.Year = fresh.Year
	l.Status = fresh.Status
	l.TotalRosters = fresh.TotalRosters
	if err := c.db.UpdateLeague(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}
