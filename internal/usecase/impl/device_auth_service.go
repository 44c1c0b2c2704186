// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"scrobbler/config"
	deliverycontext "scrobbler/internal/delivery/context"
	"scrobbler/internal/domain/entity"
	domainerrors "scrobbler/internal/domain/errors"
	"scrobbler/internal/domain/repository"
	"scrobbler/internal/domain/service"
	"scrobbler/internal/errors"
	"scrobbler/internal/infra/metrics"
	"scrobbler/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	rotationTriggerPoll    = "poll"
	rotationTriggerRefresh = "refresh"
)

// deviceAuthService implements the DeviceAuthUsecase interface.
type deviceAuthService struct {
	txManager       repository.TransactionManager
	credentialRepo  repository.CredentialRepository
	generator       service.SecretGenerator
	limiter         service.PollLimiter
	verificationURL string
	codeTTL         time.Duration
	pollInterval    time.Duration
	tokenTTL        time.Duration
	now             func() time.Time
	logger          *slog.Logger
}

// DeviceAuthServiceParams holds dependencies for DeviceAuthService, injected by Fx.
type DeviceAuthServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CredentialRepo repository.CredentialRepository
	Generator      service.SecretGenerator
	Limiter        service.PollLimiter
	Config         *config.Config
	Logger         *slog.Logger
}

// NewDeviceAuthService is the constructor for deviceAuthService.
func NewDeviceAuthService(params DeviceAuthServiceParams) usecase.DeviceAuthUsecase {
	deviceAuth := params.Config.DeviceAuth
	if deviceAuth == nil {
		deviceAuth = &config.DeviceAuthConfig{}
	}

	return &deviceAuthService{
		txManager:       params.TxManager,
		credentialRepo:  params.CredentialRepo,
		generator:       params.Generator,
		limiter:         params.Limiter,
		verificationURL: deviceAuth.VerificationURL,
		codeTTL:         deviceAuth.CodeTTL,
		pollInterval:    deviceAuth.PollInterval,
		tokenTTL:        deviceAuth.TokenTTL,
		now:             time.Now,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *deviceAuthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueDeviceCode creates a pending credential. The existence checks make collisions unlikely;
// the unique indexes settle the remaining race with another instance, after which it simply tries again.
func (srv *deviceAuthService) IssueDeviceCode(ctx context.Context, clientID string) (*usecase.DeviceCodeOutput, error) {
	srv.log(ctx).Debug("Issuing device code", slog.String("client_id", clientID))

	for {
		credential, err := srv.newPendingCredential(ctx)
		if err != nil {
			return nil, err
		}

		err = srv.credentialRepo.Create(ctx, credential)
		if errors.Is(err, domainerrors.ErrCredentialConflict) {
			srv.log(ctx).Warn("Generated credential collided, regenerating")

			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to create credential")
		}

		metrics.IncDeviceCodeIssued()
		srv.log(ctx).Info("Device code issued", slog.String("credential_id", credential.ID.String()))

		return &usecase.DeviceCodeOutput{
			DeviceCode:      credential.AccessSecret,
			UserCode:        credential.LinkingCode,
			VerificationURL: srv.verificationURL,
			ExpiresIn:       int64(srv.codeTTL / time.Second),
			Interval:        int64(srv.pollInterval / time.Second),
		}, nil
	}
}

func (srv *deviceAuthService) newPendingCredential(ctx context.Context) (*entity.Credential, error) {
	access, err := srv.uniqueSecret(ctx, srv.credentialRepo)
	if err != nil {
		return nil, err
	}
	refresh, err := srv.uniqueSecret(ctx, srv.credentialRepo, access)
	if err != nil {
		return nil, err
	}
	code, err := srv.uniqueLinkingCode(ctx)
	if err != nil {
		return nil, err
	}

	return &entity.Credential{AccessSecret: access, RefreshSecret: refresh, LinkingCode: code}, nil
}

// uniqueSecret loops until the generator yields a secret unused by any credential and not in exclude.
func (srv *deviceAuthService) uniqueSecret(ctx context.Context, repo repository.CredentialRepository, exclude ...string) (string, error) {
	for {
		secret, err := srv.generator.NewSecret()
		if err != nil {
			return "", err
		}
		if slices.Contains(exclude, secret) {
			continue
		}

		exists, err := repo.SecretExists(ctx, secret)
		if err != nil {
			return "", err
		}
		if !exists {
			return secret, nil
		}
	}
}

func (srv *deviceAuthService) uniqueLinkingCode(ctx context.Context) (string, error) {
	for {
		code, err := srv.generator.NewLinkingCode()
		if err != nil {
			return "", err
		}

		exists, err := srv.credentialRepo.LinkingCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
}

// LinkUser claims the pending credential carrying userCode for username.
func (srv *deviceAuthService) LinkUser(ctx context.Context, userCode, username string) error {
	code := normalizeLinkingCode(userCode)
	username = strings.TrimSpace(username)
	if code == "" {
		return domainerrors.ErrDeviceCodeNotFound
	}
	if username == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("username is required")
	}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		credential, err := repos.CredentialRepo().FindPendingByLinkingCode(ctx, code)
		if err != nil {
			return err
		}

		user, err := repos.UserRepo().FindOrCreate(ctx, username)
		if err != nil {
			return err
		}

		return repos.CredentialRepo().AssignUser(ctx, credential.ID, user.ID)
	})
	if errors.Is(err, repository.ErrCredentialNotFound) {
		srv.log(ctx).Info("Linking code not found", slog.String("user_code", code))

		return domainerrors.ErrDeviceCodeNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to link credential")
	}

	srv.log(ctx).Info("Device linked", slog.String("username", username))

	return nil
}

// Poll rotates a linked credential. Pending credentials are left untouched.
func (srv *deviceAuthService) Poll(ctx context.Context, deviceCode string) (*usecase.TokenOutput, error) {
	if deviceCode == "" {
		return nil, domainerrors.ErrDeviceCodeNotFound
	}

	if srv.limiter != nil {
		allowed, err := srv.limiter.Allow(ctx, deviceCode, srv.pollInterval)
		if err != nil {
			srv.log(ctx).Warn("Poll limiter unavailable, allowing request", slog.Any("error", err))
		} else if !allowed {
			return nil, domainerrors.ErrSlowDown
		}
	}

	var output *usecase.TokenOutput
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		credentialRepo := repos.CredentialRepo()
		credential, err := credentialRepo.LockByAccessSecret(ctx, deviceCode)
		if err != nil {
			return err
		}
		if !credential.IsLinked() {
			return domainerrors.ErrAuthorizationPending
		}

		output, err = srv.rotate(ctx, credentialRepo, credential, rotationTriggerPoll)

		return err
	})
	if errors.Is(err, repository.ErrCredentialNotFound) {
		return nil, domainerrors.ErrDeviceCodeNotFound
	}
	if err != nil {
		return nil, err
	}

	return output, nil
}

// Refresh rotates the linked credential presented as bearer.
func (srv *deviceAuthService) Refresh(ctx context.Context, accessSecret string) (*usecase.TokenOutput, error) {
	if accessSecret == "" {
		return nil, domainerrors.ErrForbidden
	}

	var output *usecase.TokenOutput
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		credentialRepo := repos.CredentialRepo()
		credential, err := credentialRepo.LockByAccessSecret(ctx, accessSecret)
		if err != nil {
			return err
		}
		if !credential.IsLinked() {
			return domainerrors.ErrForbidden
		}

		output, err = srv.rotate(ctx, credentialRepo, credential, rotationTriggerRefresh)

		return err
	})
	if errors.Is(err, repository.ErrCredentialNotFound) {
		return nil, domainerrors.ErrForbidden
	}
	if err != nil {
		return nil, err
	}

	return output, nil
}

// rotate replaces both secrets of a locked credential: the refresh secret becomes the access secret
// and a new refresh secret is generated. It is the only place secrets change after issuance.
func (srv *deviceAuthService) rotate(ctx context.Context, credentialRepo repository.CredentialRepository, credential *entity.Credential, trigger string) (*usecase.TokenOutput, error) {
	newRefresh, err := srv.uniqueSecret(ctx, credentialRepo, credential.AccessSecret, credential.RefreshSecret)
	if err != nil {
		return nil, err
	}

	rotatedAt := srv.now()
	if err := credentialRepo.Rotate(ctx, credential.ID, credential.AccessSecret, credential.RefreshSecret, newRefresh, rotatedAt); err != nil {
		return nil, err
	}

	metrics.IncCredentialRotation(trigger)
	srv.log(ctx).Info("Credential rotated",
		slog.String("credential_id", credential.ID.String()),
		slog.String("trigger", trigger),
	)

	return &usecase.TokenOutput{
		AccessToken:  credential.RefreshSecret,
		TokenType:    usecase.TokenTypeBearer,
		ExpiresIn:    int64(srv.tokenTTL / time.Second),
		RefreshToken: newRefresh,
		Scope:        usecase.TokenScopePublic,
		CreatedAt:    rotatedAt.Unix(),
	}, nil
}

// Authenticate resolves a bearer to the owner of a linked credential.
func (srv *deviceAuthService) Authenticate(ctx context.Context, accessSecret string) (uuid.UUID, error) {
	if accessSecret == "" {
		return uuid.Nil, domainerrors.ErrForbidden
	}

	credential, err := srv.credentialRepo.FindByAccessSecret(ctx, accessSecret)
	if errors.Is(err, repository.ErrCredentialNotFound) {
		return uuid.Nil, domainerrors.ErrForbidden
	}
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to authenticate bearer")
	}
	if !credential.IsLinked() {
		return uuid.Nil, domainerrors.ErrForbidden
	}

	return *credential.UserID, nil
}

// Revoke deletes the credential presented as bearer.
func (srv *deviceAuthService) Revoke(ctx context.Context, accessSecret string) error {
	if accessSecret == "" {
		return domainerrors.ErrForbidden
	}

	credential, err := srv.credentialRepo.FindByAccessSecret(ctx, accessSecret)
	if err == nil {
		err = srv.credentialRepo.Delete(ctx, credential.ID)
	}
	if errors.Is(err, repository.ErrCredentialNotFound) {
		return domainerrors.ErrForbidden
	}
	if err != nil {
		return errors.Wrap(err, "failed to revoke credential")
	}

	srv.log(ctx).Info("Credential revoked", slog.String("credential_id", credential.ID.String()))

	return nil
}

// normalizeLinkingCode upper-cases the code and drops the separators people type.
func normalizeLinkingCode(code string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', ' ', '_', '\t':
			return -1
		}

		return r
	}, strings.ToUpper(strings.TrimSpace(code)))
}
