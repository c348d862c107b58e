package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-nutri-track/internal/adapter"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/internal/store"
	"github.com/MKhiriev/go-nutri-track/internal/utils"
	"github.com/MKhiriev/go-nutri-track/internal/validators"
	"github.com/MKhiriev/go-nutri-track/models"
)

type clientAuthService struct {
	sessions  store.SessionRepository
	cache     store.EntryCacheRepository
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger
	now       func() time.Time
}

func NewClientAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions:  localStore.SessionRepository,
		cache:     localStore.EntryCacheRepository,
		adapter:   serverAdapter,
		validator: validators.NewFoodEntryValidator(),
		logger:    logger,
		now:       time.Now,
	}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.Session, error) {
	if err := a.validator.Validate(ctx, user, validators.FieldLogin, validators.FieldPassword); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	registered, err := a.adapter.Register(ctx, user)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	return a.startSession(ctx, registered)
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.Session, error) {
	if err := a.validator.Validate(ctx, user, validators.FieldLogin, validators.FieldPassword); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	found, err := a.adapter.Login(ctx, user)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	return a.startSession(ctx, found)
}

func (a *clientAuthService) startSession(ctx context.Context, user models.User) (models.Session, error) {
	session := models.Session{
		UserID:    user.UserID,
		Login:     user.Login,
		Token:     a.adapter.Token(),
		CreatedAt: a.now().UTC(),
	}

	if err := a.sessions.SaveSession(ctx, session); err != nil {
		// the token still works for this run; only the next start will ask again
		a.logger.Err(err).Str("func", "clientAuthService.startSession").Msg("failed to save session locally")
	}

	return session, nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.GetSession(ctx)
	if err != nil {
		return models.Session{}, err
	}

	if session.IsZero() {
		return models.Session{}, store.ErrLocalSessionNotFound
	}

	if userID, err := utils.ParseUserIDFromJWT(session.Token); err != nil || userID != session.UserID {
		a.logger.Warn().Str("func", "clientAuthService.RestoreSession").Msg("saved session token is unusable, dropping it")
		if delErr := a.sessions.DeleteSession(ctx); delErr != nil {
			return models.Session{}, delErr
		}
		return models.Session{}, store.ErrLocalSessionNotFound
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context, session models.Session) error {
	a.adapter.SetToken("")

	var errs []error
	if err := a.sessions.DeleteSession(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := a.cache.Clear(ctx, session.UserID); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
