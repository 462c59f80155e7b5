package jsondb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const recordsSchema = `
CREATE TABLE IF NOT EXISTS records (
	seq        BIGSERIAL PRIMARY KEY,
	collection TEXT  NOT NULL,
	id         TEXT  NOT NULL,
	body       JSONB NOT NULL,
	UNIQUE (collection, id)
);
CREATE INDEX IF NOT EXISTS records_body_gin ON records USING GIN (body jsonb_path_ops);
`

// PostgresStore keeps records as JSONB rows of one table. Matching uses
// containment, so a matcher on nested objects or arrays selects supersets.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore creates a store over db
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the records table if it does not exist
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, recordsSchema); err != nil {
		return fmt.Errorf("failed to migrate records table: %w", err)
	}
	return nil
}

func decodeBodies(bodies []string) ([]Record, error) {
	out := make([]Record, 0, len(bodies))
	for _, b := range bodies {
		var r Record
		if err := json.Unmarshal([]byte(b), &r); err != nil {
			return nil, fmt.Errorf("failed to decode record body: %w", err)
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *PostgresStore) Get(ctx context.Context, collection string) ([]Record, error) {
	var bodies []string
	query := `SELECT body FROM records WHERE collection = $1 ORDER BY seq`
	if err := s.db.SelectContext(ctx, &bodies, query, collection); err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", collection, err)
	}
	return decodeBodies(bodies)
}

func (s *PostgresStore) Insert(ctx context.Context, collection string, item Record) (Record, error) {
	record, err := prepareInsert(item)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}

	query := `INSERT INTO records (collection, id, body) VALUES ($1, $2, $3)`
	if _, err := s.db.ExecContext(ctx, query, collection, fmt.Sprint(record["id"]), string(body)); err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	return record, nil
}

func (s *PostgresStore) Update(ctx context.Context, collection, id string, fields Record) (Record, error) {
	patch, err := normalizeRecord(fields)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var body string
	query := `SELECT body FROM records WHERE collection = $1 AND id = $2 FOR UPDATE`
	if err := tx.GetContext(ctx, &body, query, collection, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s/%s: %w", collection, id, err)
	}

	var current Record
	if err := json.Unmarshal([]byte(body), &current); err != nil {
		return nil, fmt.Errorf("failed to decode record body: %w", err)
	}
	updated := merge(current, patch)
	newBody, err := json.Marshal(updated)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE records SET body = $3 WHERE collection = $1 AND id = $2`,
		collection, id, string(newBody)); err != nil {
		return nil, fmt.Errorf("failed to update %s/%s: %w", collection, id, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit update: %w", err)
	}
	return updated, nil
}

func (s *PostgresStore) Delete(ctx context.Context, collection string, matcher Matcher) (int, error) {
	filter, err := matcherJSON(matcher)
	if err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE collection = $1 AND body @> $2::jsonb`, collection, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete from %s: %w", collection, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted rows: %w", err)
	}
	return int(n), nil
}

func (s *PostgresStore) FindOne(ctx context.Context, collection string, matcher Matcher) (Record, error) {
	filter, err := matcherJSON(matcher)
	if err != nil {
		return nil, err
	}
	var bodies []string
	query := `SELECT body FROM records WHERE collection = $1 AND body @> $2::jsonb ORDER BY seq LIMIT 1`
	if err := s.db.SelectContext(ctx, &bodies, query, collection, filter); err != nil {
		return nil, fmt.Errorf("failed to find in %s: %w", collection, err)
	}
	records, err := decodeBodies(bodies)
	if err != nil || len(records) == 0 {
		return nil, err
	}
	return records[0], nil
}

func (s *PostgresStore) Find(ctx context.Context, collection string, matcher Matcher) ([]Record, error) {
	filter, err := matcherJSON(matcher)
	if err != nil {
		return nil, err
	}
	var bodies []string
	query := `SELECT body FROM records WHERE collection = $1 AND body @> $2::jsonb ORDER BY seq`
	if err := s.db.SelectContext(ctx, &bodies, query, collection, filter); err != nil {
		return nil, fmt.Errorf("failed to find in %s: %w", collection, err)
	}
	return decodeBodies(bodies)
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func matcherJSON(matcher Matcher) (string, error) {
	m, err := normalizeMatcher(matcher)
	if err != nil {
		return "", err
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to encode matcher: %w", err)
	}
	return string(raw), nil
}
