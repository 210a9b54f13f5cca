package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/noted-app/noted/internal/adapter"
	"github.com/noted-app/noted/internal/logger"
	"github.com/noted-app/noted/internal/mock"
	"github.com/noted-app/noted/internal/session"
	"github.com/noted-app/noted/models"
)

func newTestNotesSvc(t *testing.T, ctrl *gomock.Controller) (*notesService, *mock.MockNotesAPI, *session.Session) {
	t.Helper()
	mockAPI := mock.NewMockNotesAPI(ctrl)
	sess := session.New()
	sess.Set(models.Credential{ID: "user-1", Username: "alice"})

	svc := NewNotesService(mockAPI, sess, logger.Nop()).(*notesService)
	return svc, mockAPI, sess
}

func sampleNotes() []models.Note {
	return []models.Note{
		{ID: "n1", Data: "first", Date: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC), UserID: "user-1"},
		{ID: "n2", Data: "second", Date: time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC), UserID: "user-1"},
	}
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestNotesService_List_FetchesThenServesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, _ := newTestNotesSvc(t, ctrl)
	ctx := context.Background()

	// Exactly one fetch no matter how many reads follow.
	mockAPI.EXPECT().GetUserNotes(ctx, "user-1").Return(sampleNotes(), nil).Times(1)

	first, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 2)

	second, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNotesService_List_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sess := newTestNotesSvc(t, ctrl)
	sess.Clear()

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestNotesService_List_FetchErrorSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, _ := newTestNotesSvc(t, ctrl)
	ctx := context.Background()

	srvErr := errors.New("bad gateway: upstream down")
	mockAPI.EXPECT().GetUserNotes(ctx, "user-1").Return(nil, srvErr)

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, srvErr)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestNotesService_Create_EmptyTextIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestNotesSvc(t, ctrl)
	ctx := context.Background()

	// No expectation on the mock: any call to the API fails the test.
	require.NoError(t, svc.Create(ctx, ""))
	require.NoError(t, svc.Create(ctx, "   \t\n"))
}

func TestNotesService_Create_InvalidatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, _ := newTestNotesSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAPI.EXPECT().GetUserNotes(ctx, "user-1").Return(sampleNotes(), nil),
		mockAPI.EXPECT().
			CreateNote(ctx, models.CreateNoteRequest{Note: "a brand new note", UserID: "user-1"}).
			Return(nil),
		// The mutation dropped the cache key, so the next read fetches again.
		mockAPI.EXPECT().GetUserNotes(ctx, "user-1").Return(append(sampleNotes(), models.Note{ID: "n3"}), nil),
	)

	_, err := svc.List(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Create(ctx, "a brand new note"))

	after, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 3)
}

func TestNotesService_Create_FailureKeepsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, _ := newTestNotesSvc(t, ctrl)
	ctx := context.Background()

	srvErr := errors.New("internal server error: boom")

	mockAPI.EXPECT().GetUserNotes(ctx, "user-1").Return(sampleNotes(), nil).Times(1)
	mockAPI.EXPECT().CreateNote(ctx, gomock.Any()).Return(srvErr)

	_, err := svc.List(ctx)
	require.NoError(t, err)

	err = svc.Create(ctx, "doomed")
	assert.ErrorIs(t, err, srvErr)

	// A failed mutation must not drop the cached list.
	cached, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cached, 2)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestNotesService_Update_EmptyTextIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestNotesSvc(t, ctrl)

	require.NoError(t, svc.Update(context.Background(), "n1", "  "))
}

func TestNotesService_Update_InvalidatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, _ := newTestNotesSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAPI.EXPECT().GetUserNotes(ctx, "user-1").Return(sampleNotes(), nil),
		mockAPI.EXPECT().
			UpdateNote(ctx, models.UpdateNoteRequest{NoteID: "n1", NewNote: "edited", UserID: "user-1"}).
			Return(nil),
		mockAPI.EXPECT().GetUserNotes(ctx, "user-1").Return(sampleNotes(), nil),
	)

	_, err := svc.List(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, "n1", "edited"))

	_, err = svc.List(ctx)
	require.NoError(t, err)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestNotesService_Delete_AlwaysIssuesRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, _ := newTestNotesSvc(t, ctrl)
	ctx := context.Background()

	mockAPI.EXPECT().
		DeleteNote(ctx, models.DeleteNoteRequest{NoteID: "n2", UserID: "user-1"}).
		Return(nil)

	require.NoError(t, svc.Delete(ctx, "n2"))
}

func TestNotesService_Delete_FailureSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, _ := newTestNotesSvc(t, ctrl)
	ctx := context.Background()

	srvErr := &adapter.ServerError{Status: adapter.ErrNotFound, Message: "Note does not exist"}
	mockAPI.EXPECT().DeleteNote(ctx, gomock.Any()).Return(srvErr)

	err := svc.Delete(ctx, "ghost")
	assert.ErrorIs(t, err, srvErr)
	assert.Equal(t, "Note does not exist", ServerMessage(err))
}

// ── Invalidate / Reset ───────────────────────────────────────────────────────

func TestNotesService_Invalidate_DropsCurrentUserKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, _ := newTestNotesSvc(t, ctrl)
	ctx := context.Background()

	mockAPI.EXPECT().GetUserNotes(ctx, "user-1").Return(sampleNotes(), nil).Times(2)

	_, err := svc.List(ctx)
	require.NoError(t, err)

	svc.Invalidate()

	_, err = svc.List(ctx)
	require.NoError(t, err)
}

func TestNotesService_Reset_DropsAllKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, sess := newTestNotesSvc(t, ctrl)
	ctx := context.Background()

	mockAPI.EXPECT().GetUserNotes(ctx, "user-1").Return(sampleNotes(), nil)
	mockAPI.EXPECT().GetUserNotes(ctx, "user-2").Return(nil, nil)

	_, err := svc.List(ctx)
	require.NoError(t, err)

	svc.Reset()
	sess.Set(models.Credential{ID: "user-2", Username: "bob"})

	_, err = svc.List(ctx)
	require.NoError(t, err)
}
