package postgres_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"scrobbler/internal/domain/entity"
	domainerrors "scrobbler/internal/domain/errors"
	"scrobbler/internal/domain/repository"
	"scrobbler/internal/errors"
	"scrobbler/internal/infra/persistence/postgres"
	"scrobbler/internal/testsupport"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_FindOrCreateIsIdempotent(t *testing.T) {
	db := testsupport.MustOpenDB(t)
	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	first, err := repo.FindOrCreate(ctx, "alice")
	require.NoError(t, err)
	second, err := repo.FindOrCreate(ctx, "alice")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	locked, err := repo.LockByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", locked.Username)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func newCredential(access, refresh, code string) *entity.Credential {
	return &entity.Credential{AccessSecret: access, RefreshSecret: refresh, LinkingCode: code}
}

func TestCredentialRepository_CreateConflict(t *testing.T) {
	db := testsupport.MustOpenDB(t)
	repo := postgres.NewCredentialRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newCredential("a1", "r1", "CODE0001")))

	err := repo.Create(ctx, newCredential("a2", "r2", "CODE0001"))
	assert.ErrorIs(t, err, domainerrors.ErrCredentialConflict)

	err = repo.Create(ctx, newCredential("a1", "r3", "CODE0003"))
	assert.ErrorIs(t, err, domainerrors.ErrCredentialConflict)
}

func TestCredentialRepository_SecretAndCodeLookups(t *testing.T) {
	db := testsupport.MustOpenDB(t)
	repo := postgres.NewCredentialRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newCredential("access-1", "refresh-1", "ABCD2345")))

	for _, secret := range []string{"access-1", "refresh-1"} {
		exists, err := repo.SecretExists(ctx, secret)
		require.NoError(t, err)
		assert.True(t, exists, secret)
	}
	exists, err := repo.SecretExists(ctx, "ABCD2345")
	require.NoError(t, err)
	assert.False(t, exists, "linking codes live in their own namespace")

	exists, err = repo.LinkingCodeExists(ctx, "ABCD2345")
	require.NoError(t, err)
	assert.True(t, exists)

	pending, err := repo.FindPendingByLinkingCode(ctx, "ABCD2345")
	require.NoError(t, err)
	assert.False(t, pending.IsLinked())
}

func TestCredentialRepository_AssignUserAndRotate(t *testing.T) {
	db := testsupport.MustOpenDB(t)
	users := postgres.NewUserRepository(db)
	repo := postgres.NewCredentialRepository(db)
	ctx := context.Background()

	user, err := users.FindOrCreate(ctx, "bob")
	require.NoError(t, err)

	cred := newCredential("access-1", "refresh-1", "ABCD2345")
	require.NoError(t, repo.Create(ctx, cred))
	require.NoError(t, repo.AssignUser(ctx, cred.ID, user.ID))

	// A linked credential is no longer claimable.
	_, err = repo.FindPendingByLinkingCode(ctx, "ABCD2345")
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
	assert.ErrorIs(t, repo.AssignUser(ctx, cred.ID, user.ID), repository.ErrCredentialNotFound)

	rotatedAt := time.Now().Add(time.Minute).Truncate(time.Second)
	require.NoError(t, repo.Rotate(ctx, cred.ID, "access-1", "refresh-1", "refresh-2", rotatedAt))

	rotated, err := repo.FindByAccessSecret(ctx, "refresh-1")
	require.NoError(t, err)
	assert.Equal(t, "refresh-2", rotated.RefreshSecret)
	assert.Equal(t, user.ID, *rotated.UserID)
	assert.WithinDuration(t, rotatedAt, rotated.CreatedAt, time.Second)

	// The stale access secret loses the compare-and-swap.
	err = repo.Rotate(ctx, cred.ID, "access-1", "x", "y", time.Now())
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)

	_, err = repo.FindByAccessSecret(ctx, "access-1")
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)

	require.NoError(t, repo.Delete(ctx, cred.ID))
	assert.ErrorIs(t, repo.Delete(ctx, cred.ID), repository.ErrCredentialNotFound)
}

func TestIdentifierRepository_GlobalRowPerUserLookup(t *testing.T) {
	db := testsupport.MustOpenDB(t)
	users := postgres.NewUserRepository(db)
	identifiers := postgres.NewIdentifierRepository(db)
	contents := postgres.NewContentRepository(db)
	ctx := context.Background()

	alice, err := users.FindOrCreate(ctx, "alice")
	require.NoError(t, err)
	bob, err := users.FindOrCreate(ctx, "bob")
	require.NoError(t, err)

	first, err := identifiers.FindOrCreate(ctx, "tvdb", 334824)
	require.NoError(t, err)
	again, err := identifiers.FindOrCreate(ctx, "tvdb", 334824)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	show := entity.NewContent(alice.ID, entity.ContentKindShow, entity.Metadata{}, true, nil)
	require.NoError(t, contents.Create(ctx, show))
	require.NoError(t, contents.AttachIdentifiers(ctx, show.ID, []uuid.UUID{first.ID, first.ID}))
	require.NoError(t, contents.AttachIdentifiers(ctx, show.ID, []uuid.UUID{first.ID}))

	linked, err := identifiers.FindLinkedForUser(ctx, alice.ID, "tvdb", 334824)
	require.NoError(t, err)
	assert.Equal(t, first.ID, linked.ID)

	_, err = identifiers.FindLinkedForUser(ctx, bob.ID, "tvdb", 334824)
	assert.ErrorIs(t, err, repository.ErrIdentifierNotFound)

	byContent, err := identifiers.ListByContentIDs(ctx, []uuid.UUID{show.ID})
	require.NoError(t, err)
	require.Len(t, byContent[show.ID], 1)
	assert.Equal(t, int64(334824), byContent[show.ID][0].Value)
}

func TestContentRepository_MetadataOrderSurvivesStorage(t *testing.T) {
	db := testsupport.MustOpenDB(t)
	users := postgres.NewUserRepository(db)
	contents := postgres.NewContentRepository(db)
	ctx := context.Background()

	user, err := users.FindOrCreate(ctx, "carol")
	require.NoError(t, err)

	var metadata entity.Metadata
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Dark","year":2017,"aired":"2017-12-01"}`), &metadata))

	show := entity.NewContent(user.ID, entity.ContentKindShow, metadata, true, nil)
	require.NoError(t, contents.Create(ctx, show))

	stored, err := contents.FindByID(ctx, user.ID, show.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "year", "aired"}, stored.Metadata.Keys())
	assert.Equal(t, 1, stored.Plays)
	assert.True(t, stored.Watched)

	require.NoError(t, stored.Metadata.Set("title", "Dark (2017)"))
	stored.Watched = false
	require.NoError(t, contents.Update(ctx, stored))

	updated, err := contents.FindByID(ctx, user.ID, show.ID)
	require.NoError(t, err)
	raw, _ := updated.Metadata.Get("title")
	assert.JSONEq(t, `"Dark (2017)"`, string(raw))
	assert.False(t, updated.Watched)
	assert.Equal(t, 1, updated.Plays)

	_, err = contents.FindByID(ctx, uuid.New(), show.ID)
	assert.ErrorIs(t, err, repository.ErrContentNotFound)
}

func TestContentRepository_ListEpisodes(t *testing.T) {
	db := testsupport.MustOpenDB(t)
	users := postgres.NewUserRepository(db)
	contents := postgres.NewContentRepository(db)
	ctx := context.Background()

	user, err := users.FindOrCreate(ctx, "dave")
	require.NoError(t, err)

	show := entity.NewContent(user.ID, entity.ContentKindShow, entity.Metadata{}, true, nil)
	require.NoError(t, contents.Create(ctx, show))
	for range 3 {
		episode := entity.NewContent(user.ID, entity.ContentKindEpisode, entity.Metadata{}, false, &show.ID)
		require.NoError(t, contents.Create(ctx, episode))
	}
	orphan := entity.NewContent(user.ID, entity.ContentKindEpisode, entity.Metadata{}, true, nil)
	require.NoError(t, contents.Create(ctx, orphan))

	episodes, err := contents.ListEpisodes(ctx, user.ID, show.ID)
	require.NoError(t, err)
	assert.Len(t, episodes, 3)
	for _, episode := range episodes {
		assert.Equal(t, show.ID, *episode.ShowID)
		assert.Equal(t, 0, episode.Plays)
	}

	shows, err := contents.ListByKind(ctx, user.ID, entity.ContentKindShow)
	require.NoError(t, err)
	assert.Len(t, shows, 1)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := testsupport.MustOpenDB(t)
	txManager := postgres.NewTransactionManager(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := repos.UserRepo().FindOrCreate(ctx, "eve"); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = postgres.NewUserRepository(db).FindByUsername(ctx, "eve")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		_, err := repos.UserRepo().FindOrCreate(ctx, "eve")

		return err
	})
	require.NoError(t, err)

	_, err = postgres.NewUserRepository(db).FindByUsername(ctx, "eve")
	assert.NoError(t, err)
}
