package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"stoik.com/outreach/internal/core/domain"
)

// ThreadsStorage keeps thread entries in the candidates table, as a JSON
// map from job id to owner id to entry.
type ThreadsStorage struct {
	db *PostgresDB
}

func NewThreadsStorage(db *PostgresDB) *ThreadsStorage {
	return &ThreadsStorage{
		db: db,
	}
}

func (s *ThreadsStorage) GetThread(ctx context.Context, ownerID uuid.UUID, key domain.ContextKey) (*domain.ThreadEntry, error) {
	var raw []byte
	err := s.db.QueryRow(ctx,
		"SELECT gmail_threads #> ARRAY[$2::text, $3::text] FROM candidates WHERE id = $1",
		key.CandidateID,
		key.JobID.String(),
		ownerID.String(),
	).Scan(&raw)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var entry domain.ThreadEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("failed to decode thread entry: %w", err)
	}
	return &entry, nil
}

// UpsertThread creates the job object first: jsonb_set does not create
// missing intermediate keys.
func (s *ThreadsStorage) UpsertThread(ctx context.Context, ownerID uuid.UUID, key domain.ContextKey, entry domain.ThreadEntry) error {
	entry.OwnerID = ownerID
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode thread entry: %w", err)
	}

	tag, err := s.db.Exec(ctx,
		`UPDATE candidates
		 SET gmail_threads = jsonb_set(
		     jsonb_set(
		         COALESCE(gmail_threads, '{}'::jsonb),
		         ARRAY[$2::text],
		         COALESCE(gmail_threads -> $2::text, '{}'::jsonb),
		         true
		     ),
		     ARRAY[$2::text, $3::text],
		     $4::jsonb,
		     true
		 )
		 WHERE id = $1`,
		key.CandidateID,
		key.JobID.String(),
		ownerID.String(),
		string(payload),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCandidateNotFound
	}
	return nil
}
