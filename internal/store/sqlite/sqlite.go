/*
Package sqlite stores named input profiles in SQLite.

Only inputs are persisted: a saved profile is the salary, dependents, state,
invest percent, starting age and market assumptions a user entered. Plans are
always recomputed from those inputs, so nothing derived from the tax tables is
ever stored and a tax-rule change never leaves stale results behind.

TABLES:

	profiles: one row per profile name, decimals stored as TEXT

CONCURRENCY:

	Uses sync.RWMutex for thread-safety. The HTTP server shares one Store
	across requests.

USAGE:

	store, err := sqlite.New("./money-for-life.db")
	if err != nil {
		return err
	}
	defer store.Close()

Use ":memory:" for an in-memory database.
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/stephenkarpeles/money-for-life/internal/domain"
)

var (
	// ErrProfileNotFound is returned by DeleteProfile for unknown names
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileNameRequired is returned when saving a profile without a name
	ErrProfileNameRequired = errors.New("profile name is required")
)

// ProfileRecord is a saved profile together with the assumptions it was saved with
type ProfileRecord struct {
	Name        string             `json:"name"`
	Profile     domain.Profile     `json:"profile"`
	Assumptions domain.Assumptions `json:"assumptions"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// Store persists profiles in a SQLite database.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New opens (or creates) the database at dbPath and migrates the schema.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// every pooled connection to ":memory:" would be a fresh database
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS profiles (
		name TEXT PRIMARY KEY,
		gross_income TEXT NOT NULL,
		dependents INTEGER NOT NULL DEFAULT 0,
		state TEXT NOT NULL,
		invest_percent TEXT NOT NULL,
		starting_age INTEGER NOT NULL,
		annual_return TEXT NOT NULL,
		horizon_age INTEGER NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_profiles_updated ON profiles(updated_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveProfile inserts or replaces the profile stored under rec.Name. The
// original creation time is kept on replace.
func (s *Store) SaveProfile(ctx context.Context, rec ProfileRecord) error {
	name := strings.TrimSpace(rec.Name)
	if name == "" {
		return ErrProfileNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO profiles (name, gross_income, dependents, state, invest_percent, starting_age,
			annual_return, horizon_age, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			gross_income = excluded.gross_income,
			dependents = excluded.dependents,
			state = excluded.state,
			invest_percent = excluded.invest_percent,
			starting_age = excluded.starting_age,
			annual_return = excluded.annual_return,
			horizon_age = excluded.horizon_age,
			updated_at = excluded.updated_at
	`

	p := rec.Profile
	a := rec.Assumptions
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx, query,
		name, p.GrossIncome.String(), p.Dependents, p.State, p.InvestPercent.String(), p.StartingAge,
		a.AnnualReturn.String(), a.HorizonAge, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile %q: %w", name, err)
	}
	return nil
}

const profileColumns = "name, gross_income, dependents, state, invest_percent, starting_age, annual_return, horizon_age, created_at, updated_at"

type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(row scanner) (*ProfileRecord, error) {
	var rec ProfileRecord
	var createdAt, updatedAt string
	p := &rec.Profile
	a := &rec.Assumptions
	if err := row.Scan(&rec.Name, &p.GrossIncome, &p.Dependents, &p.State, &p.InvestPercent, &p.StartingAge,
		&a.AnnualReturn, &a.HorizonAge, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	p.Name = rec.Name
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	rec.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return &rec, nil
}

// GetProfile returns the profile saved under name, or nil if there is none.
func (s *Store) GetProfile(ctx context.Context, name string) (*ProfileRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, err := scanProfile(s.db.QueryRowContext(ctx,
		"SELECT "+profileColumns+" FROM profiles WHERE name = ?", strings.TrimSpace(name)))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %q: %w", name, err)
	}
	return rec, nil
}

// ListProfiles returns every saved profile ordered by name.
func (s *Store) ListProfiles(ctx context.Context) ([]ProfileRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT "+profileColumns+" FROM profiles ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []ProfileRecord
	for rows.Next() {
		rec, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *rec)
	}
	return profiles, rows.Err()
}

// DeleteProfile removes the profile saved under name.
func (s *Store) DeleteProfile(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM profiles WHERE name = ?", strings.TrimSpace(name))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	return nil
}
