package controller

import (
	"context"
	"fmt"
	"io"

	"github.com/arnavgupta1/FF-Metrics/match"
	"github.com/arnavgupta1/FF-Metrics/model"
	"github.com/arnavgupta1/FF-Metrics/sheet"
)

func (c *controller) AddSheet(ctx context.Context, name string, r io.Reader) (*model.Sheet, error) {
	if name == "" {
		return nil, fmt.Errorf("sheet name must not be empty")
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading sheet upload: %w", err)
	}

	// Reject structurally broken sheets at upload time instead of at first
	// analysis.
	if _, err := sheet.Parse(string(raw), c.layout); err != nil {
		return nil, fmt.Errorf("error validating sheet: %w", err)
	}

	s, err := c.db.AddSheet(ctx, name, string(raw))
	if err != nil {
		return nil, fmt.Errorf("error saving sheet: %w", err)
	}
	return s, nil
}

func (c *controller) GetSheet(ctx context.Context, id int32) (*model.Sheet, error) {
	return c.db.GetSheet(ctx, id)
}

func (c *controller) ListSheets(ctx context.Context) ([]model.Sheet, error) {
	return c.db.ListSheets(ctx)
}

func (c *controller) DeleteSheet(ctx context.Context, id int32) error {
	return c.db.DeleteSheet(ctx, id)
}

func (c *controller) ParseSheet(ctx context.Context, id int32) ([]model.RankingRecord, error) {
	s, err := c.db.GetSheet(ctx, id)
	if err != nil {
		return nil, err
	}

	records, err := sheet.Parse(s.Raw, c.layout)
	if err != nil {
		return nil, fmt.Errorf("error parsing sheet %d: %w", id, err)
	}

	// Overlapping row ranges can emit the same player twice; collapse them
	// before anything downstream sees the records.
	return match.Dedupe(records), nil
}
