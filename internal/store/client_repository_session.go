package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/models"
)

type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, saveSession, session.UserID, session.Login, session.Token, session.CreatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "localSessionRepository.SaveSession").
			Int64("user_id", session.UserID).
			Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (l *localSessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	err := l.DB.QueryRowContext(ctx, getSession).Scan(&session.UserID, &session.Login, &session.Token, &session.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrLocalSessionNotFound
		}
		log.Err(err).Str("func", "localSessionRepository.GetSession").Msg("failed to read session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return session, nil
}

func (l *localSessionRepository) DeleteSession(ctx context.Context) error {
	if _, err := l.DB.ExecContext(ctx, deleteSession); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localSessionRepository.DeleteSession").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
