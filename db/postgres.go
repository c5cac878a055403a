package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/arnavgupta1/FF-Metrics/model"
	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrSheetNotFound  error = errors.New("sheet not found")
	ErrLeagueNotFound error = errors.New("league not found")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresDB) ListSheets(ctx context.Context) ([]model.Sheet, error) {
	const query = `SELECT id, name, uploaded FROM sheets ORDER BY uploaded DESC LIMIT 20`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing sheets: %w", err)
	}
	defer rows.Close()

	results := make([]model.Sheet, 0, 8)
	for rows.Next() {
		var s model.Sheet
		if err := rows.Scan(&s.ID, &s.Name, &s.Uploaded); err != nil {
			return nil, fmt.Errorf("error scanning sheet row: %w", err)
		}
		results = append(results, s)
	}
	return results, nil
}

func (db *postgresDB) GetSheet(ctx context.Context, id int32) (*model.Sheet, error) {
	const query = `SELECT id, name, uploaded, raw FROM sheets WHERE id=@id`

	var s model.Sheet
	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	if err := row.Scan(&s.ID, &s.Name, &s.Uploaded, &s.Raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSheetNotFound
		}
		return nil, fmt.Errorf("error loading sheet %d: %w", id, err)
	}
	return &s, nil
}

func (db *postgresDB) AddSheet(ctx context.Context, name, raw string) (*model.Sheet, error) {
	const query = `INSERT INTO sheets(name, uploaded, raw)
					VALUES (@name, @uploaded, @raw)
					RETURNING id`

	uploaded := db.clock.Now().UTC()
	args := pgx.NamedArgs{
		"name":     name,
		"uploaded": uploaded,
		"raw":      raw,
	}

	var id int32
	if err := db.pool.QueryRow(ctx, query, args).Scan(&id); err != nil {
		return nil, fmt.Errorf("error inserting sheet: %w", err)
	}

	return &model.Sheet{ID: id, Name: name, Uploaded: uploaded, Raw: raw}, nil
}

func (db *postgresDB) DeleteSheet(ctx context.Context, id int32) error {
	const query = `DELETE FROM sheets WHERE id=@id`

	tag, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting sheet %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSheetNotFound
	}
	return nil
}

func (db *postgresDB) ListLeagues(ctx context.Context) ([]model.League, error) {
	const query = `SELECT id, external_id, name, year, status, total_rosters, archived
					FROM leagues WHERE archived=FALSE ORDER BY year DESC, name ASC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing leagues: %w", err)
	}
	defer rows.Close()

	results := make([]model.League, 0, 8)
	for rows.Next() {
		l, err := scanLeague(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *l)
	}
	return results, nil
}

func (db *postgresDB) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	const query = `SELECT id, external_id, name, year, status, total_rosters, archived
					FROM leagues WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	l, err := scanLeague(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("error loading league %d: %w", id, err)
	}
	return l, nil
}

func (db *postgresDB) AddLeague(ctx context.Context, league *model.League) error {
	const query = `INSERT INTO leagues(external_id, name, year, status, total_rosters, archived)
					VALUES (@externalID, @name, @year, @status, @totalRosters, FALSE)
					RETURNING id`

	args := pgx.NamedArgs{
		"externalID":   league.ExternalID,
		"name":         league.Name,
		"year":         league.Year,
		"status":       string(league.Status),
		"totalRosters": league.TotalRosters,
	}

	if err := db.pool.QueryRow(ctx, query, args).Scan(&league.ID); err != nil {
		return fmt.Errorf("error inserting league: %w", err)
	}
	return nil
}

func (db *postgresDB) UpdateLeague(ctx context.Context, league *model.League) error {
	const query = `UPDATE leagues
					SET name=@name, year=@year, status=@status, total_rosters=@totalRosters
					WHERE id=@id`

	args := pgx.NamedArgs{
		"id":           league.ID,
		"name":         league.Name,
		"year":         league.Year,
		"status":       string(league.Status),
		"totalRosters": league.TotalRosters,
	}

	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error updating league %d: %w", league.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLeagueNotFound
	}
	return nil
}

func (db *postgresDB) ArchiveLeague(ctx context.Context, id int32) error {
	const query = `UPDATE leagues SET archived=TRUE WHERE id=@id`

	tag, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error archiving league %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLeagueNotFound
	}
	return nil
}

func scanLeague(row pgx.Row) (*model.League, error) {
	var l model.League
	var status string
	if err := row.Scan(&l.ID, &l.ExternalID, &l.Name, &l.Year, &status, &l.TotalRosters, &l.Archived); err != nil {
		return nil, err
	}
	l.Status = model.ParseLeagueStatus(status)
	return &l, nil
}
