// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noted Authors

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noted-app/noted/internal/config"
	"github.com/noted-app/noted/internal/logger"
	"github.com/noted-app/noted/models"
)

// newTestAPI builds an httpNotesAPI pointed at the given fake server.
func newTestAPI(t *testing.T, serverURL string) *httpNotesAPI {
	t.Helper()
	api, err := NewHTTPNotesAPI(config.API{Address: serverURL}, logger.Nop())
	require.NoError(t, err)
	return api.(*httpNotesAPI)
}

// fakeServer stands up a Noted API double with the given routes.
func fakeServer(t *testing.T, register func(r chi.Router)) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── NewHTTPNotesAPI ──────────────────────────────────────────────────────────

func TestNewHTTPNotesAPI_NormalizesAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{name: "full url", address: "http://127.0.0.1:5000"},
		{name: "host only gets scheme", address: "127.0.0.1:5000"},
		{name: "trailing slash trimmed", address: "http://localhost:5000/"},
		{name: "empty", address: "", wantErr: true},
		{name: "blank", address: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPNotesAPI(config.API{Address: tt.address}, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := fakeServer(t, func(r chi.Router) {
		r.Post("/login", func(w http.ResponseWriter, req *http.Request) {
			var body models.LoginRequest
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, "alice", body.Username)
			assert.Equal(t, "pw", body.Password)
			assert.NotEmpty(t, req.Header.Get("X-Request-Id"))

			http.SetCookie(w, &http.Cookie{Name: "session", Value: "session-token"})
			writeJSON(t, w, http.StatusOK, models.Credential{ID: "u1", Username: "alice"})
		})
	})

	api := newTestAPI(t, srv.URL)
	cred, err := api.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, models.Credential{ID: "u1", Username: "alice"}, cred)
	assert.Equal(t, "session-token", api.Token())
}

func TestLogin_UnauthorizedCarriesServerMessage(t *testing.T) {
	srv := fakeServer(t, func(r chi.Router) {
		r.Post("/login", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, http.StatusUnauthorized, models.APIMessage{Message: "Incorrect username or password"})
		})
	})

	api := newTestAPI(t, srv.URL)
	_, err := api.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "bad"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Incorrect username or password")
}

func TestLogin_MalformedBody(t *testing.T) {
	srv := fakeServer(t, func(r chi.Router) {
		r.Post("/login", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]string{"unexpected": "shape"})
		})
	})

	api := newTestAPI(t, srv.URL)
	_, err := api.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Empty(t, api.Token())
}

// ── SignUp ───────────────────────────────────────────────────────────────────

func TestSignUp_Success(t *testing.T) {
	srv := fakeServer(t, func(r chi.Router) {
		r.Post("/sign-up", func(w http.ResponseWriter, req *http.Request) {
			var body models.SignUpRequest
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, "bob", body.Username)
			w.WriteHeader(http.StatusCreated)
		})
	})

	api := newTestAPI(t, srv.URL)
	err := api.SignUp(context.Background(), models.SignUpRequest{Username: "bob", Password: "secret"})

	assert.NoError(t, err)
}

func TestSignUp_Conflict(t *testing.T) {
	srv := fakeServer(t, func(r chi.Router) {
		r.Post("/sign-up", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, http.StatusConflict, models.APIMessage{Message: "Username already taken"})
		})
	})

	api := newTestAPI(t, srv.URL)
	err := api.SignUp(context.Background(), models.SignUpRequest{Username: "bob", Password: "secret"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "Username already taken")
}

// ── GetUserNotes ─────────────────────────────────────────────────────────────

func TestGetUserNotes_Success(t *testing.T) {
	want := []models.Note{
		{ID: "n1", Data: "first note", UserID: "u1"},
		{ID: "n2", Data: "second note", UserID: "u1"},
	}

	srv := fakeServer(t, func(r chi.Router) {
		r.Get("/get-user-notes", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "u1", req.URL.Query().Get("userId"))
			writeJSON(t, w, http.StatusOK, want)
		})
	})

	api := newTestAPI(t, srv.URL)
	notes, err := api.GetUserNotes(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, want, notes)
}

func TestGetUserNotes_SendsSessionCookie(t *testing.T) {
	srv := fakeServer(t, func(r chi.Router) {
		r.Get("/get-user-notes", func(w http.ResponseWriter, req *http.Request) {
			c, err := req.Cookie("session")
			require.NoError(t, err)
			assert.Equal(t, "stored-token", c.Value)
			writeJSON(t, w, http.StatusOK, []models.Note{})
		})
	})

	api := newTestAPI(t, srv.URL)
	api.SetToken("stored-token")

	_, err := api.GetUserNotes(context.Background(), "u1")
	assert.NoError(t, err)
}

func TestGetUserNotes_EntryWithoutID(t *testing.T) {
	srv := fakeServer(t, func(r chi.Router) {
		r.Get("/get-user-notes", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, http.StatusOK, []models.Note{{Data: "no id"}})
		})
	})

	api := newTestAPI(t, srv.URL)
	_, err := api.GetUserNotes(context.Background(), "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGetUserNotes_Forbidden(t *testing.T) {
	srv := fakeServer(t, func(r chi.Router) {
		r.Get("/get-user-notes", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, http.StatusForbidden, models.APIMessage{Message: "Session expired"})
		})
	})

	api := newTestAPI(t, srv.URL)
	_, err := api.GetUserNotes(context.Background(), "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

// ── Mutations ────────────────────────────────────────────────────────────────

func TestCreateNote_Success(t *testing.T) {
	srv := fakeServer(t, func(r chi.Router) {
		r.Post("/create-note", func(w http.ResponseWriter, req *http.Request) {
			var body models.CreateNoteRequest
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, "hello", body.Note)
			assert.Equal(t, "u1", body.UserID)
			w.WriteHeader(http.StatusCreated)
		})
	})

	api := newTestAPI(t, srv.URL)
	err := api.CreateNote(context.Background(), models.CreateNoteRequest{Note: "hello", UserID: "u1"})

	assert.NoError(t, err)
}

func TestUpdateNote_Success(t *testing.T) {
	srv := fakeServer(t, func(r chi.Router) {
		r.Put("/update-note", func(w http.ResponseWriter, req *http.Request) {
			var body models.UpdateNoteRequest
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, "n1", body.NoteID)
			assert.Equal(t, "edited", body.NewNote)
			w.WriteHeader(http.StatusOK)
		})
	})

	api := newTestAPI(t, srv.URL)
	err := api.UpdateNote(context.Background(), models.UpdateNoteRequest{NoteID: "n1", NewNote: "edited", UserID: "u1"})

	assert.NoError(t, err)
}

func TestDeleteNote_Success(t *testing.T) {
	srv := fakeServer(t, func(r chi.Router) {
		r.Delete("/delete-note", func(w http.ResponseWriter, req *http.Request) {
			var body models.DeleteNoteRequest
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, "n1", body.NoteID)
			w.WriteHeader(http.StatusOK)
		})
	})

	api := newTestAPI(t, srv.URL)
	err := api.DeleteNote(context.Background(), models.DeleteNoteRequest{NoteID: "n1", UserID: "u1"})

	assert.NoError(t, err)
}

func TestDeleteNote_NotFound(t *testing.T) {
	srv := fakeServer(t, func(r chi.Router) {
		r.Delete("/delete-note", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, http.StatusNotFound, models.APIMessage{Message: "Note does not exist"})
		})
	})

	api := newTestAPI(t, srv.URL)
	err := api.DeleteNote(context.Background(), models.DeleteNoteRequest{NoteID: "ghost", UserID: "u1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── mapHTTPError ─────────────────────────────────────────────────────────────

func TestMapHTTPError_MessageWithColonSurvivesIntact(t *testing.T) {
	srv := fakeServer(t, func(r chi.Router) {
		r.Post("/create-note", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, http.StatusBadRequest, models.APIMessage{Message: "Error: bad input"})
		})
	})

	api := newTestAPI(t, srv.URL)
	err := api.CreateNote(context.Background(), models.CreateNoteRequest{UserID: "u1", Note: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)

	var srvErr *ServerError
	require.ErrorAs(t, err, &srvErr)
	assert.Equal(t, "Error: bad input", srvErr.Message)
}

func TestMapHTTPError_PlainBodyFallback(t *testing.T) {
	srv := fakeServer(t, func(r chi.Router) {
		r.Post("/login", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream down"))
		})
	})

	api := newTestAPI(t, srv.URL)
	_, err := api.Login(context.Background(), models.LoginRequest{Username: "a", Password: "b"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadGateway)
	assert.Contains(t, err.Error(), "upstream down")
}
