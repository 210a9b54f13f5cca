package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/noted-app/noted/internal/logger"
	"github.com/noted-app/noted/models"
)

// sessionRowID pins the table to a single row; the session record has a
// well-known key, not a growing history.
const sessionRowID = 1

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *sessionRepository) Save(ctx context.Context, rec models.SessionRecord) error {
	query, args, err := qb.Insert("session").
		Columns("id", "user_id", "username", "token", "saved_at").
		Values(sessionRowID, rec.Credential.ID, rec.Credential.Username, rec.Token, rec.SavedAt).
		Suffix("ON CONFLICT(id) DO UPDATE SET user_id = excluded.user_id, username = excluded.username, token = excluded.token, saved_at = excluded.saved_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build save session query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.Save").
			Str("user_id", rec.Credential.ID).
			Msg("failed to execute upsert for session record")
		return fmt.Errorf("failed to save session record: %w", err)
	}

	return nil
}

func (r *sessionRepository) Load(ctx context.Context) (models.SessionRecord, error) {
	query, args, err := qb.Select("user_id", "username", "token", "saved_at").
		From("session").
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		return models.SessionRecord{}, fmt.Errorf("build load session query: %w", err)
	}

	var rec models.SessionRecord
	row := r.DB.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(&rec.Credential.ID, &rec.Credential.Username, &rec.Token, &rec.SavedAt)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.SessionRecord{}, ErrSessionNotFound
		}
		r.logger.Err(scanErr).
			Str("func", "sessionRepository.Load").
			Msg("failed to scan session row")
		return models.SessionRecord{}, fmt.Errorf("failed to scan session row: %w", scanErr)
	}

	// A row that lost its identity fields is as good as no session.
	if !rec.Credential.Valid() {
		return models.SessionRecord{}, ErrSessionNotFound
	}

	return rec, nil
}

func (r *sessionRepository) Delete(ctx context.Context) error {
	query, args, err := qb.Delete("session").
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete session query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.Delete").
			Msg("failed to execute delete for session record")
		return fmt.Errorf("failed to delete session record: %w", err)
	}

	return nil
}
