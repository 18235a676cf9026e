package blob

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// defaultDocumentKey identifies the single hospital records document in
// the documents table. The table is keyed so several deployments can
// share one database without colliding.
const defaultDocumentKey = "hospital-records"

// PGStore keeps the document as a single row in Postgres. Save is an
// upsert, so the whole-document rewrite stays one statement.
type PGStore struct {
	pool *pgxpool.Pool
	key  string
}

// NewPostgres prepares the documents table and returns a store bound to
// the default document key.
func NewPostgres(ctx context.Context, pool *pgxpool.Pool) (*PGStore, error) {
	const ddl = `CREATE TABLE IF NOT EXISTS documents (
		key        TEXT PRIMARY KEY,
		data       BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return nil, fmt.Errorf("create documents table: %w", err)
	}
	return &PGStore{pool: pool, key: defaultDocumentKey}, nil
}

func (s *PGStore) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM documents WHERE key = $1`, s.key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("load document: %w", err)
	}
	return data, nil
}

func (s *PGStore) Save(ctx context.Context, data []byte) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO documents (key, data, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		s.key, data)
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}
