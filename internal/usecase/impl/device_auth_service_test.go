package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"scrobbler/internal/domain/entity"
	domainerrors "scrobbler/internal/domain/errors"
	"scrobbler/internal/domain/repository"
	"scrobbler/internal/domain/service"
	"scrobbler/internal/errors"
	"scrobbler/internal/infra/auth"
	"scrobbler/internal/infra/persistence/model"
	"scrobbler/internal/infra/persistence/postgres"
	mockRepo "scrobbler/internal/mocks/repository"
	mockSvc "scrobbler/internal/mocks/service"
	"scrobbler/internal/testsupport"
	"scrobbler/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deviceAuthFixture struct {
	storeFixture
	credentialRepo repository.CredentialRepository
	srv            usecase.DeviceAuthUsecase
}

func newDeviceAuthFixture(t *testing.T, limiter service.PollLimiter) deviceAuthFixture {
	t.Helper()

	store := newStoreFixture(t)
	credentialRepo := postgres.NewCredentialRepository(store.db)

	return deviceAuthFixture{
		storeFixture:   store,
		credentialRepo: credentialRepo,
		srv: NewDeviceAuthService(DeviceAuthServiceParams{
			TxManager:      store.txManager,
			CredentialRepo: credentialRepo,
			Generator:      auth.NewSecretGeneratorWithLength(8),
			Limiter:        limiter,
			Config:         testConfig(),
			Logger:         testsupport.DiscardLogger(),
		}),
	}
}

func (f deviceAuthFixture) credential(t *testing.T, accessSecret string) *entity.Credential {
	t.Helper()

	credential, err := f.credentialRepo.FindByAccessSecret(context.Background(), accessSecret)
	require.NoError(t, err)

	return credential
}

func TestDeviceAuthService_IssueDeviceCode(t *testing.T) {
	f := newDeviceAuthFixture(t, nil)

	output, err := f.srv.IssueDeviceCode(context.Background(), "kodi")
	require.NoError(t, err)

	assert.NotEmpty(t, output.DeviceCode)
	assert.Len(t, output.UserCode, 8)
	assert.Equal(t, "http://localhost:8080/activate", output.VerificationURL)
	assert.Equal(t, int64(600), output.ExpiresIn)
	assert.Equal(t, int64(5), output.Interval)

	credential := f.credential(t, output.DeviceCode)
	assert.False(t, credential.IsLinked())
	assert.Equal(t, output.UserCode, credential.LinkingCode)
	assert.NotEqual(t, credential.AccessSecret, credential.RefreshSecret)
}

func TestDeviceAuthService_FullFlowRotatesSecrets(t *testing.T) {
	f := newDeviceAuthFixture(t, nil)
	ctx := context.Background()

	issued, err := f.srv.IssueDeviceCode(ctx, "kodi")
	require.NoError(t, err)
	pending := f.credential(t, issued.DeviceCode)

	_, err = f.srv.Poll(ctx, issued.DeviceCode)
	require.ErrorIs(t, err, domainerrors.ErrAuthorizationPending)
	unchanged := f.credential(t, issued.DeviceCode)
	assert.Equal(t, pending.RefreshSecret, unchanged.RefreshSecret, "a pending poll must not rotate")

	require.NoError(t, f.srv.LinkUser(ctx, issued.UserCode, "alice"))

	token, err := f.srv.Poll(ctx, issued.DeviceCode)
	require.NoError(t, err)
	assert.Equal(t, pending.RefreshSecret, token.AccessToken, "the previous refresh secret becomes the access token")
	assert.NotEqual(t, pending.RefreshSecret, token.RefreshToken)
	assert.NotEqual(t, issued.DeviceCode, token.RefreshToken)
	assert.Equal(t, usecase.TokenTypeBearer, token.TokenType)
	assert.Equal(t, usecase.TokenScopePublic, token.Scope)
	assert.Equal(t, int64(7200), token.ExpiresIn)

	_, err = f.srv.Poll(ctx, issued.DeviceCode)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceCodeNotFound, "the device code is spent after the first successful poll")

	userID, err := f.srv.Authenticate(ctx, token.AccessToken)
	require.NoError(t, err)
	user, err := postgres.NewUserRepository(f.db).FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	refreshed, err := f.srv.Refresh(ctx, token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, token.RefreshToken, refreshed.AccessToken)

	_, err = f.srv.Authenticate(ctx, token.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden, "rotated access secrets stop working")
	_, err = f.srv.Refresh(ctx, token.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDeviceAuthService_LinkUser(t *testing.T) {
	f := newDeviceAuthFixture(t, nil)
	ctx := context.Background()

	issued, err := f.srv.IssueDeviceCode(ctx, "kodi")
	require.NoError(t, err)

	typed := strings.ToLower(issued.UserCode[:4] + "-" + issued.UserCode[4:])

	require.NoError(t, f.srv.LinkUser(ctx, " "+typed+" ", "alice"))
	assert.True(t, f.credential(t, issued.DeviceCode).IsLinked())

	err = f.srv.LinkUser(ctx, issued.UserCode, "bob")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceCodeNotFound, "a linked code cannot be claimed again")

	err = f.srv.LinkUser(ctx, "NOPE1234", "alice")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceCodeNotFound)

	err = f.srv.LinkUser(ctx, "", "alice")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceCodeNotFound)
}

func TestDeviceAuthService_LinkUserRequiresUsername(t *testing.T) {
	f := newDeviceAuthFixture(t, nil)
	ctx := context.Background()

	issued, err := f.srv.IssueDeviceCode(ctx, "kodi")
	require.NoError(t, err)

	err = f.srv.LinkUser(ctx, issued.UserCode, "  ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.False(t, f.credential(t, issued.DeviceCode).IsLinked())
}

func TestDeviceAuthService_SameUserLinksManyDevices(t *testing.T) {
	f := newDeviceAuthFixture(t, nil)
	ctx := context.Background()

	first, err := f.srv.IssueDeviceCode(ctx, "kodi")
	require.NoError(t, err)
	second, err := f.srv.IssueDeviceCode(ctx, "plex")
	require.NoError(t, err)

	require.NoError(t, f.srv.LinkUser(ctx, first.UserCode, "alice"))
	require.NoError(t, f.srv.LinkUser(ctx, second.UserCode, "alice"))

	assert.Equal(t, *f.credential(t, first.DeviceCode).UserID, *f.credential(t, second.DeviceCode).UserID)
}

func TestDeviceAuthService_PendingCredentialCannotAuthenticate(t *testing.T) {
	f := newDeviceAuthFixture(t, nil)
	ctx := context.Background()

	issued, err := f.srv.IssueDeviceCode(ctx, "kodi")
	require.NoError(t, err)

	_, err = f.srv.Authenticate(ctx, issued.DeviceCode)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = f.srv.Refresh(ctx, issued.DeviceCode)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.False(t, f.credential(t, issued.DeviceCode).IsLinked())
}

func TestDeviceAuthService_PollUnknownCode(t *testing.T) {
	f := newDeviceAuthFixture(t, nil)

	_, err := f.srv.Poll(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceCodeNotFound)

	_, err = f.srv.Poll(context.Background(), "")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceCodeNotFound)
}

func TestDeviceAuthService_PollLimiter(t *testing.T) {
	tests := []struct {
		name    string
		allowed bool
		err     error
		wantErr error
	}{
		{name: "too fast", allowed: false, wantErr: domainerrors.ErrSlowDown},
		{name: "allowed", allowed: true, wantErr: domainerrors.ErrAuthorizationPending},
		{name: "limiter down fails open", err: errors.New("redis: connection refused"), wantErr: domainerrors.ErrAuthorizationPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := mockSvc.NewMockPollLimiter(t)
			f := newDeviceAuthFixture(t, limiter)
			ctx := context.Background()

			issued, err := f.srv.IssueDeviceCode(ctx, "kodi")
			require.NoError(t, err)

			limiter.EXPECT().Allow(mock.Anything, issued.DeviceCode, 5*time.Second).Return(tt.allowed, tt.err).Once()

			_, err = f.srv.Poll(ctx, issued.DeviceCode)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeviceAuthService_BearerChecksIgnoreLaggingReplica(t *testing.T) {
	f := newDeviceAuthFixture(t, nil)
	testsupport.AttachLaggingReplica(t, f.db)
	ctx := context.Background()

	issued, err := f.srv.IssueDeviceCode(ctx, "kodi")
	require.NoError(t, err)
	require.NoError(t, f.srv.LinkUser(ctx, issued.UserCode, "alice"))
	token, err := f.srv.Poll(ctx, issued.DeviceCode)
	require.NoError(t, err)

	var replicaRows int64
	require.NoError(t, f.db.Model(&model.CredentialModel{}).Count(&replicaRows).Error)
	require.Zero(t, replicaRows, "plain reads must hit the empty replica")

	userID, err := f.srv.Authenticate(ctx, token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, *f.credential(t, token.AccessToken).UserID, userID)

	_, err = f.srv.Authenticate(ctx, issued.DeviceCode)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden, "the retired secret is rejected")

	require.NoError(t, f.srv.Revoke(ctx, token.AccessToken))
	_, err = f.srv.Authenticate(ctx, token.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDeviceAuthService_Revoke(t *testing.T) {
	f := newDeviceAuthFixture(t, nil)
	ctx := context.Background()

	issued, err := f.srv.IssueDeviceCode(ctx, "kodi")
	require.NoError(t, err)
	require.NoError(t, f.srv.LinkUser(ctx, issued.UserCode, "alice"))
	token, err := f.srv.Poll(ctx, issued.DeviceCode)
	require.NoError(t, err)

	require.NoError(t, f.srv.Revoke(ctx, token.AccessToken))

	_, err = f.srv.Authenticate(ctx, token.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.ErrorIs(t, f.srv.Revoke(ctx, token.AccessToken), domainerrors.ErrForbidden)
}

func TestDeviceAuthService_IssueSkipsTakenSecrets(t *testing.T) {
	ctx := context.Background()
	generator := mockSvc.NewMockSecretGenerator(t)
	credentialRepo := mockRepo.NewMockCredentialRepository(t)
	srv := NewDeviceAuthService(DeviceAuthServiceParams{
		CredentialRepo: credentialRepo,
		Generator:      generator,
		Config:         testConfig(),
		Logger:         testsupport.DiscardLogger(),
	})

	generator.EXPECT().NewSecret().Return("taken", nil).Once()
	generator.EXPECT().NewSecret().Return("access", nil).Once()
	generator.EXPECT().NewSecret().Return("access", nil).Once()
	generator.EXPECT().NewSecret().Return("refresh", nil).Once()
	generator.EXPECT().NewLinkingCode().Return("TAKEN123", nil).Once()
	generator.EXPECT().NewLinkingCode().Return("FREE1234", nil).Once()

	credentialRepo.EXPECT().SecretExists(mock.Anything, "taken").Return(true, nil).Once()
	credentialRepo.EXPECT().SecretExists(mock.Anything, "access").Return(false, nil).Once()
	credentialRepo.EXPECT().SecretExists(mock.Anything, "refresh").Return(false, nil).Once()
	credentialRepo.EXPECT().LinkingCodeExists(mock.Anything, "TAKEN123").Return(true, nil).Once()
	credentialRepo.EXPECT().LinkingCodeExists(mock.Anything, "FREE1234").Return(false, nil).Once()
	credentialRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(c *entity.Credential) bool {
			return c.AccessSecret == "access" && c.RefreshSecret == "refresh" && c.LinkingCode == "FREE1234" && c.UserID == nil
		})).
		Return(nil).
		Once()

	output, err := srv.IssueDeviceCode(ctx, "kodi")
	require.NoError(t, err)
	assert.Equal(t, "access", output.DeviceCode)
	assert.Equal(t, "FREE1234", output.UserCode)
}

func TestDeviceAuthService_IssueRetriesOnInsertConflict(t *testing.T) {
	ctx := context.Background()
	generator := mockSvc.NewMockSecretGenerator(t)
	credentialRepo := mockRepo.NewMockCredentialRepository(t)
	srv := NewDeviceAuthService(DeviceAuthServiceParams{
		CredentialRepo: credentialRepo,
		Generator:      generator,
		Config:         testConfig(),
		Logger:         testsupport.DiscardLogger(),
	})

	generator.EXPECT().NewSecret().Return("a1", nil).Once()
	generator.EXPECT().NewSecret().Return("r1", nil).Once()
	generator.EXPECT().NewSecret().Return("a2", nil).Once()
	generator.EXPECT().NewSecret().Return("r2", nil).Once()
	generator.EXPECT().NewLinkingCode().Return("CODE0001", nil).Once()
	generator.EXPECT().NewLinkingCode().Return("CODE0002", nil).Once()
	credentialRepo.EXPECT().SecretExists(mock.Anything, mock.Anything).Return(false, nil)
	credentialRepo.EXPECT().LinkingCodeExists(mock.Anything, mock.Anything).Return(false, nil)

	credentialRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Return(domainerrors.ErrCredentialConflict.WrapMessage("duplicate access secret")).
		Once()
	credentialRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

	output, err := srv.IssueDeviceCode(ctx, "kodi")
	require.NoError(t, err)
	assert.Equal(t, "a2", output.DeviceCode)
	assert.Equal(t, "CODE0002", output.UserCode)
}

func TestDeviceAuthService_IssueSurfacesGeneratorFailure(t *testing.T) {
	generator := mockSvc.NewMockSecretGenerator(t)
	srv := NewDeviceAuthService(DeviceAuthServiceParams{
		CredentialRepo: mockRepo.NewMockCredentialRepository(t),
		Generator:      generator,
		Config:         testConfig(),
		Logger:         testsupport.DiscardLogger(),
	})

	generator.EXPECT().NewSecret().Return("", errors.New("entropy exhausted")).Once()

	_, err := srv.IssueDeviceCode(context.Background(), "kodi")
	assert.Error(t, err)
}

func TestNormalizeLinkingCode(t *testing.T) {
	assert.Equal(t, "ABCD2345", normalizeLinkingCode(" abcd-2345 "))
	assert.Equal(t, "ABCD2345", normalizeLinkingCode("ab_cd 23\t45"))
	assert.Equal(t, "", normalizeLinkingCode("--"))
}
