// Package db provides an SQL-backed query engine over the bikeshare records.
// The database lives in memory only and is rebuilt from the dataset at startup.
package db

import (
	"context"
	"database/sql"
	"fmt"

	// Import modernc.org/sqlite as a blank import to register the driver
	_ "modernc.org/sqlite"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
)

// DB wraps the SQL database connection with dashboard query methods.
type DB struct {
	*sql.DB
	bounds models.DateRange
	rows   int
}

// New opens an in-memory database, creates the schema and imports records.
func New(records []models.Record) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(context.Background()); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := &DB{DB: sqlDB}

	if err := db.configure(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	if err := db.createSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	if err := db.importRecords(records); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to import records: %w", err)
	}

	if err := db.loadBounds(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to read date bounds: %w", err)
	}

	return db, nil
}

// Name identifies the engine in logs and the about view.
func (db *DB) Name() string {
	return "sqlite"
}

// Rows returns the number of imported hourly rows.
func (db *DB) Rows() int {
	return db.rows
}

// configure sets up pragmas for a read-mostly in-memory database.
func (db *DB) configure() error {
	pragmas := []string{
		"PRAGMA journal_mode=MEMORY",
		"PRAGMA synchronous=OFF",
		"PRAGMA temp_store=MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(context.Background(), pragma); err != nil {
			return fmt.Errorf("failed to execute %s: %w", pragma, err)
		}
	}

	return nil
}

func (db *DB) createSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS hourly_rentals (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		dteday TEXT NOT NULL,
		hr INTEGER NOT NULL,
		season INTEGER NOT NULL,
		weekday INTEGER NOT NULL,
		cnt INTEGER NOT NULL DEFAULT 0,
		year INTEGER GENERATED ALWAYS AS (CAST(strftime('%Y', dteday) AS INTEGER)) STORED,
		month INTEGER GENERATED ALWAYS AS (CAST(strftime('%m', dteday) AS INTEGER)) STORED
	);
	CREATE INDEX IF NOT EXISTS idx_hourly_rentals_dteday ON hourly_rentals(dteday);
	`
	_, err := db.ExecContext(context.Background(), query)
	return err
}

func (db *DB) importRecords(records []models.Record) error {
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO hourly_rentals (dteday, hr, season, weekday, cnt) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx,
			r.Date.Format(models.DateLayout), r.Hour, r.Season, r.Weekday, r.Count); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	db.rows = len(records)
	return nil
}

func (db *DB) loadBounds() error {
	var minDay, maxDay sql.NullString
	err := db.QueryRowContext(context.Background(),
		`SELECT MIN(dteday), MAX(dteday) FROM hourly_rentals`).Scan(&minDay, &maxDay)
	if err != nil {
		return err
	}
	if !minDay.Valid || !maxDay.Valid {
		return nil
	}

	start, err := models.ParseDay(minDay.String)
	if err != nil {
		return err
	}
	end, err := models.ParseDay(maxDay.String)
	if err != nil {
		return err
	}
	db.bounds = models.DateRange{Start: start, End: end}
	return nil
}
