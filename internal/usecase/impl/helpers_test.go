package impl

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"scrobbler/config"
	"scrobbler/internal/domain/entity"
	"scrobbler/internal/domain/repository"
	"scrobbler/internal/infra/persistence/postgres"
	"scrobbler/internal/testsupport"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// storeFixture is a migrated SQLite store with its transaction manager.
type storeFixture struct {
	db        *gorm.DB
	txManager repository.TransactionManager
}

func newStoreFixture(t *testing.T) storeFixture {
	t.Helper()

	db := testsupport.MustOpenDB(t)

	return storeFixture{db: db, txManager: postgres.NewTransactionManager(db)}
}

func (f storeFixture) createUser(t *testing.T, username string) *entity.User {
	t.Helper()

	user, err := postgres.NewUserRepository(f.db).FindOrCreate(context.Background(), username)
	require.NoError(t, err)

	return user
}

// inTx runs fn in a committed transaction and fails the test on error.
func (f storeFixture) inTx(t *testing.T, fn func(repos repository.RepositoryFactory) error) {
	t.Helper()

	require.NoError(t, f.txManager.Execute(context.Background(), fn))
}

func (f storeFixture) countContent(t *testing.T, userID uuid.UUID, kind entity.ContentKind) int {
	t.Helper()

	contents, err := postgres.NewContentRepository(f.db).ListByKind(context.Background(), userID, kind)
	require.NoError(t, err)

	return len(contents)
}

func mustMetadata(t *testing.T, raw string) entity.Metadata {
	t.Helper()

	var metadata entity.Metadata
	require.NoError(t, json.Unmarshal([]byte(raw), &metadata))

	return metadata
}

func mustMetadataPtr(t *testing.T, raw string) *entity.Metadata {
	t.Helper()

	metadata := mustMetadata(t, raw)

	return &metadata
}

func testConfig() *config.Config {
	return &config.Config{
		DeviceAuth: &config.DeviceAuthConfig{
			VerificationURL: "http://localhost:8080/activate",
			CodeTTL:         600 * time.Second,
			PollInterval:    5 * time.Second,
			TokenTTL:        7200 * time.Second,
			UserCodeLength:  8,
		},
	}
}

func float64Ptr(v float64) *float64 {
	return &v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
