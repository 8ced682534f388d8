package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/hashid/pkg/filter"
)

// Store is a sink that keeps one row per fingerprint.
type Store struct {
	pool   *pgxpool.Pool
	table  string
	insert string
}

// NewStore returns a Store writing into table.
// The name is used as a quoted identifier, exactly as the migration
// creates it, so its case is preserved.
func NewStore(pool *pgxpool.Pool, table string) (*Store, error) {
	if table == "" {
		return nil, ErrEmptyTableName
	}
	if strings.ContainsAny(table, "\"\x00") {
		return nil, ErrInvalidTableName
	}
	if pool == nil {
		return nil, ErrNilPool
	}
	return &Store{
		pool:   pool,
		table:  table,
		insert: insertQuery(table),
	}, nil
}

func insertQuery(table string) string {
	return fmt.Sprintf(
		"INSERT INTO %s (id, event) VALUES ($1, $2)",
		pgx.Identifier{table}.Sanitize(),
	)
}

func (s *Store) Name() string { return "postgres" }

// Write inserts ev under id. A row that already exists is left untouched:
// the primary key violation means the event is already stored.
func (s *Store) Write(ctx context.Context, id string, ev filter.Event) error {
	doc, err := json.Marshal(ev)
	if err != nil {
		return errors.Join(ErrInsertFailed, err)
	}
	if _, err := s.pool.Exec(ctx, s.insert, id, doc); err != nil {
		if IsDuplicateKeyError(err) {
			return nil
		}
		return errors.Join(ErrInsertFailed, err)
	}
	return nil
}

// Ping checks that a pooled connection is usable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return errors.Join(ErrHealthcheckFailed, err)
	}
	return nil
}

// Get loads the stored event for id. The boolean is false when no row exists.
func (s *Store) Get(ctx context.Context, id string) (filter.Event, bool, error) {
	query := fmt.Sprintf("SELECT event FROM %s WHERE id = $1", pgx.Identifier{s.table}.Sanitize())

	var doc []byte
	if err := s.pool.QueryRow(ctx, query, id).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	ev, err := filter.DecodeEvent(doc)
	if err != nil {
		return nil, false, err
	}
	return ev, true, nil
}
