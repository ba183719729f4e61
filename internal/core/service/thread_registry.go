package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"stoik.com/outreach/internal/core/domain"
	"stoik.com/outreach/internal/core/port"
)

// ThreadRegistry remembers, per owner, job and candidate, the mail thread
// last written in. Thread ids are scoped to a mailbox, so each owner keeps
// its own entry. Sends without a complete context key are not tracked.
type ThreadRegistry struct {
	storage port.ThreadStorage
	now     func() time.Time
}

func NewThreadRegistry(storage port.ThreadStorage) *ThreadRegistry {
	return &ThreadRegistry{
		storage: storage,
		now:     time.Now,
	}
}

// Lookup returns nil when there is no prior conversation for this owner.
func (r *ThreadRegistry) Lookup(ctx context.Context, ownerID uuid.UUID, key domain.ContextKey) (*domain.ThreadEntry, error) {
	if !key.Complete() {
		return nil, nil
	}

	entry, err := r.storage.GetThread(ctx, ownerID, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load thread: %w", err)
	}
	if entry == nil || entry.ThreadID == "" {
		return nil, nil
	}
	return entry, nil
}

// Record upserts the thread entry. Concurrent records for one key are last-write-wins.
func (r *ThreadRegistry) Record(ctx context.Context, ownerID uuid.UUID, key domain.ContextKey, threadID, messageID string) error {
	if !key.Complete() || threadID == "" {
		return nil
	}

	previous, err := r.storage.GetThread(ctx, ownerID, key)
	if err != nil {
		return fmt.Errorf("failed to load thread: %w", err)
	}
	if previous != nil && previous.ThreadID != "" && previous.ThreadID != threadID {
		log.WithFields(log.Fields{
			"ownerID":          ownerID,
			"jobID":            key.JobID,
			"candidateID":      key.CandidateID,
			"previousThreadID": previous.ThreadID,
			"threadID":         threadID,
		}).Warn("Provider started a new thread for an existing conversation")
	}

	entry := domain.ThreadEntry{
		OwnerID:   ownerID,
		ThreadID:  threadID,
		MessageID: messageID,
		UpdatedAt: r.now(),
	}
	if err := r.storage.UpsertThread(ctx, ownerID, key, entry); err != nil {
		return fmt.Errorf("failed to record thread: %w", err)
	}
	return nil
}
