package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/suite"

	"stoik.com/outreach/internal/core/domain"
	"stoik.com/outreach/internal/storage"
	"stoik.com/outreach/test"
)

var (
	fixtureOwner         = uuid.MustParse("3b6f0d2a-5c1e-4f7a-9b8d-2e4c6a8f0b1d")
	fixtureImplicitOwner = uuid.MustParse("7c2e9a14-0b3d-4e5f-8a6b-1c9d2e3f4a5b")
	fixtureCandidate     = uuid.MustParse("b9a4d9e2-8f3a-4c61-a2b7-5c3b2a1d0e99")
	fixtureBareCandidate = uuid.MustParse("d4e5f6a7-b8c9-4d0e-9f1a-2b3c4d5e6f70")
	fixtureJob           = uuid.MustParse("6f1c7a52-3f0e-4f39-9d2c-0d9b8f0b7a11")
)

func TestStorage(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

type StorageSuite struct {
	suite.Suite
	dockerPool       *dockertest.Pool
	postgresResource *dockertest.Resource
	postgresDB       *sql.DB
	pgPool           *storage.PostgresDB
	credentials      *storage.CredentialsStorage
	threads          *storage.ThreadsStorage
}

func (suite *StorageSuite) SetupSuite() {
	pool, err := dockertest.NewPool("")
	if err != nil {
		suite.T().Fatalf("Could not connect to docker: %s", err)
	}
	suite.dockerPool = pool
	db, port, postgresResource := test.SetupPostgresDB(suite.T(), pool)
	suite.postgresDB = db
	suite.postgresResource = postgresResource

	if !suite.T().Failed() {
		ctx := context.Background()
		postgresDB, err := storage.NewPostgresDB(ctx, test.PostgresHost, port, test.PostgresUser, test.PostgresPassword, test.PostgresDB)
		if err != nil {
			suite.T().Fatalf("Failed to connect to database: %v", err)
		}

		suite.pgPool = postgresDB
		suite.credentials = storage.NewCredentialsStorage(postgresDB)
		suite.threads = storage.NewThreadsStorage(postgresDB)
	}
}

func (suite *StorageSuite) SetupTest() {
	test.ExecFile(suite.T(), suite.postgresDB, "../sql/create_tables.sql")
	test.ExecFile(suite.T(), suite.postgresDB, "../sql/fixtures.sql")

	if suite.T().Failed() {
		suite.TearDownSuite()
		suite.T().FailNow()
	}
}

func (suite *StorageSuite) TearDownSuite() {
	if suite.pgPool != nil {
		suite.pgPool.Close()
	}
	if suite.postgresDB != nil {
		_ = suite.postgresDB.Close()
	}
	if suite.dockerPool != nil {
		if suite.postgresResource != nil {
			_ = suite.dockerPool.Purge(suite.postgresResource)
		}
	}
}

func (suite *StorageSuite) TestGetCredential_OK() {
	credential, err := suite.credentials.GetCredential(context.Background(), fixtureOwner)

	suite.Require().NoError(err)
	suite.Equal("ya29.fixture-access", credential.AccessToken)
	suite.Equal("1//fixture-refresh", credential.RefreshToken)
	suite.True(credential.ExpiresAt.Equal(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func (suite *StorageSuite) TestGetCredential_NullRefreshToken() {
	credential, err := suite.credentials.GetCredential(context.Background(), fixtureImplicitOwner)

	suite.Require().NoError(err)
	suite.Empty(credential.RefreshToken)
	suite.False(credential.Renewable())
}

func (suite *StorageSuite) TestGetCredential_NotFound() {
	_, err := suite.credentials.GetCredential(context.Background(), uuid.New())

	suite.ErrorIs(err, domain.ErrCredentialNotFound)
}

func (suite *StorageSuite) TestSaveCredential_Overwrites() {
	ctx := context.Background()
	expiresAt := time.Date(2031, 6, 1, 12, 0, 0, 0, time.UTC)

	err := suite.credentials.SaveCredential(ctx, &domain.OAuthCredential{
		OwnerID:     fixtureOwner,
		AccessToken: "ya29.replaced",
		ExpiresAt:   expiresAt,
		UpdatedAt:   time.Now(),
	})
	suite.Require().NoError(err)

	credential, err := suite.credentials.GetCredential(ctx, fixtureOwner)
	suite.Require().NoError(err)
	suite.Equal("ya29.replaced", credential.AccessToken)
	suite.Empty(credential.RefreshToken, "the whole record is replaced")
	suite.True(credential.ExpiresAt.Equal(expiresAt))
}

func (suite *StorageSuite) TestSaveCredential_Inserts() {
	ctx := context.Background()
	ownerID := uuid.New()

	suite.Require().NoError(suite.credentials.SaveCredential(ctx, &domain.OAuthCredential{
		OwnerID:      ownerID,
		AccessToken:  "ya29.new",
		RefreshToken: "1//new",
		ExpiresAt:    time.Now().Add(time.Hour),
		UpdatedAt:    time.Now(),
	}))

	credential, err := suite.credentials.GetCredential(ctx, ownerID)
	suite.Require().NoError(err)
	suite.Equal("1//new", credential.RefreshToken)
}

func (suite *StorageSuite) TestDeleteCredential() {
	ctx := context.Background()

	suite.Require().NoError(suite.credentials.DeleteCredential(ctx, fixtureOwner))
	suite.Require().NoError(suite.credentials.DeleteCredential(ctx, fixtureOwner), "deleting twice is fine")

	_, err := suite.credentials.GetCredential(ctx, fixtureOwner)
	suite.ErrorIs(err, domain.ErrCredentialNotFound)
}
