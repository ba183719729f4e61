package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"stoik.com/outreach/internal/core/domain"
)

func (suite *StorageSuite) TestGetThread_OK() {
	entry, err := suite.threads.GetThread(context.Background(), fixtureOwner, domain.ContextKey{
		JobID:       fixtureJob,
		CandidateID: fixtureCandidate,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(fixtureOwner, entry.OwnerID)
	suite.Equal("18e2f0c1a2b3c4d5", entry.ThreadID)
}

func (suite *StorageSuite) TestGetThread_Absent() {
	ctx := context.Background()

	tests := []struct {
		ownerID uuid.UUID
		key     domain.ContextKey
	}{
		{fixtureOwner, domain.ContextKey{JobID: uuid.New(), CandidateID: fixtureCandidate}},
		{fixtureImplicitOwner, domain.ContextKey{JobID: fixtureJob, CandidateID: fixtureCandidate}},
		{fixtureOwner, domain.ContextKey{JobID: fixtureJob, CandidateID: fixtureBareCandidate}},
		{fixtureOwner, domain.ContextKey{JobID: fixtureJob, CandidateID: uuid.New()}},
	}
	for _, tt := range tests {
		entry, err := suite.threads.GetThread(ctx, tt.ownerID, tt.key)
		suite.NoError(err)
		suite.Nil(entry)
	}
}

func (suite *StorageSuite) TestUpsertThread_KeepsOtherJobs() {
	ctx := context.Background()
	otherJob := uuid.New()
	updatedAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	otherKey := domain.ContextKey{JobID: otherJob, CandidateID: fixtureCandidate}

	err := suite.threads.UpsertThread(ctx, fixtureOwner, otherKey, domain.ThreadEntry{
		ThreadID:  "T-other",
		MessageID: "M-other",
		UpdatedAt: updatedAt,
	})
	suite.Require().NoError(err)

	other, err := suite.threads.GetThread(ctx, fixtureOwner, otherKey)
	suite.Require().NoError(err)
	suite.Equal("T-other", other.ThreadID)
	suite.Equal(fixtureOwner, other.OwnerID)
	suite.True(other.UpdatedAt.Equal(updatedAt))

	original, err := suite.threads.GetThread(ctx, fixtureOwner, domain.ContextKey{JobID: fixtureJob, CandidateID: fixtureCandidate})
	suite.Require().NoError(err)
	suite.Equal("18e2f0c1a2b3c4d5", original.ThreadID)
}

func (suite *StorageSuite) TestUpsertThread_KeepsOtherOwners() {
	ctx := context.Background()
	key := domain.ContextKey{JobID: fixtureJob, CandidateID: fixtureCandidate}

	suite.Require().NoError(suite.threads.UpsertThread(ctx, fixtureImplicitOwner, key, domain.ThreadEntry{ThreadID: "T2", MessageID: "M2"}))

	mine, err := suite.threads.GetThread(ctx, fixtureOwner, key)
	suite.Require().NoError(err)
	suite.Require().NotNil(mine)
	suite.Equal("18e2f0c1a2b3c4d5", mine.ThreadID)
	suite.Equal("18e2f0c1a2b3c4d5", mine.MessageID)

	theirs, err := suite.threads.GetThread(ctx, fixtureImplicitOwner, key)
	suite.Require().NoError(err)
	suite.Require().NotNil(theirs)
	suite.Equal("T2", theirs.ThreadID)
}

func (suite *StorageSuite) TestUpsertThread_NullColumn() {
	ctx := context.Background()
	key := domain.ContextKey{JobID: fixtureJob, CandidateID: fixtureBareCandidate}

	suite.Require().NoError(suite.threads.UpsertThread(ctx, fixtureOwner, key, domain.ThreadEntry{ThreadID: "T1", MessageID: "M1"}))
	suite.Require().NoError(suite.threads.UpsertThread(ctx, fixtureOwner, key, domain.ThreadEntry{ThreadID: "T1", MessageID: "M2"}))

	entry, err := suite.threads.GetThread(ctx, fixtureOwner, key)
	suite.Require().NoError(err)
	suite.Equal("M2", entry.MessageID)
}

func (suite *StorageSuite) TestUpsertThread_UnknownCandidate() {
	err := suite.threads.UpsertThread(context.Background(), fixtureOwner, domain.ContextKey{JobID: fixtureJob, CandidateID: uuid.New()}, domain.ThreadEntry{ThreadID: "T1"})

	suite.ErrorIs(err, domain.ErrCandidateNotFound)
}
