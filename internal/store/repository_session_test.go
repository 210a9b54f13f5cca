package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noted-app/noted/internal/logger"
	"github.com/noted-app/noted/models"
)

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &sessionRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func testRecord() models.SessionRecord {
	return models.SessionRecord{
		Credential: models.Credential{ID: "u1", Username: "alice"},
		Token:      "session-token",
		SavedAt:    time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestSessionRepository_Save_Upserts(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	rec := testRecord()

	mock.ExpectExec("INSERT INTO session").
		WithArgs(sessionRowID, rec.Credential.ID, rec.Credential.Username, rec.Token, rec.SavedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Save(context.Background(), rec)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Save_ExecError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO session").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("disk I/O error"))

	err := repo.Save(context.Background(), testRecord())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save session record")
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestSessionRepository_Load_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	want := testRecord()
	rows := sqlmock.
		NewRows([]string{"user_id", "username", "token", "saved_at"}).
		AddRow(want.Credential.ID, want.Credential.Username, want.Token, want.SavedAt)

	mock.ExpectQuery("SELECT user_id, username, token, saved_at FROM session").
		WithArgs(sessionRowID).
		WillReturnRows(rows)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSessionRepository_Load_NoRow(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT user_id, username, token, saved_at FROM session").
		WithArgs(sessionRowID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepository_Load_RowWithoutIdentity(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"user_id", "username", "token", "saved_at"}).
		AddRow("", "", "token", time.Now())

	mock.ExpectQuery("SELECT user_id, username, token, saved_at FROM session").
		WithArgs(sessionRowID).
		WillReturnRows(rows)

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestSessionRepository_Delete_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM session").
		WithArgs(sessionRowID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Delete_AbsentRecordIsNotAnError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM session").
		WithArgs(sessionRowID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background())
	assert.NoError(t, err)
}
