package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/noted-app/noted/internal/config"
	"github.com/noted-app/noted/internal/logger"
	"github.com/noted-app/noted/models"
)

// sessionCookie is the cookie the server issues on login. It is included on
// every call, matching the API's cookie-based session scheme.
const sessionCookie = "session"

type httpNotesAPI struct {
	client *resty.Client
	token  string

	logger *logger.Logger
}

// NewHTTPNotesAPI constructs an HTTP/JSON implementation of [NotesAPI]. It
// normalises and validates the base URL from apiCfg.Address and configures
// the underlying client with the resolved base URL, the request timeout, and
// a per-request X-Request-Id header for log correlation.
//
// Returns an error if apiCfg.Address is empty or cannot be parsed as a valid
// URL.
func NewHTTPNotesAPI(apiCfg config.API, log *logger.Logger) (NotesAPI, error) {
	baseURL, err := normalizeBaseURL(apiCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(apiCfg.RequestTimeout).
		SetHeader("Content-Type", "application/json")

	cli.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-Id", uuid.NewString())
		return nil
	})

	return &httpNotesAPI{client: cli, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [NotesAPI]. It stores token (whitespace-trimmed) and
// installs it as the session cookie included on all subsequent requests.
func (h *httpNotesAPI) SetToken(token string) {
	h.token = strings.TrimSpace(token)
	h.client.SetCookie(&http.Cookie{Name: sessionCookie, Value: h.token})
}

// Token implements [NotesAPI]. It returns the session token currently held,
// or an empty string if none has been set.
func (h *httpNotesAPI) Token() string {
	return h.token
}

// Login implements [NotesAPI]. It POSTs the credentials to POST /login and
// decodes the response body into a [models.Credential]. On success the
// session cookie issued by the server is captured via SetToken. Returns the
// server's failure message wrapped in a status sentinel on non-2xx, or
// [ErrMalformedResponse] if the body decodes into an invalid credential.
func (h *httpNotesAPI) Login(ctx context.Context, req models.LoginRequest) (models.Credential, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/login")
	if err != nil {
		return models.Credential{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	var cred models.Credential
	if err = json.Unmarshal(resp.Body(), &cred); err != nil {
		return models.Credential{}, fmt.Errorf("%w: decode login body: %v", ErrMalformedResponse, err)
	}
	if !cred.Valid() {
		return models.Credential{}, fmt.Errorf("%w: credential missing id or username", ErrMalformedResponse)
	}

	for _, c := range resp.Cookies() {
		if c.Name == sessionCookie {
			h.SetToken(c.Value)
			break
		}
	}

	return cred, nil
}

// SignUp implements [NotesAPI]. It POSTs the registration data to
// POST /sign-up. Any 2xx status is success; the body is ignored.
func (h *httpNotesAPI) SignUp(ctx context.Context, req models.SignUpRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/sign-up")
	if err != nil {
		return fmt.Errorf("sign-up request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetUserNotes implements [NotesAPI]. It GETs the full note set for userID
// from GET /get-user-notes. Returns [ErrMalformedResponse] if the body does
// not decode into a note list or an entry is missing its id.
func (h *httpNotesAPI) GetUserNotes(ctx context.Context, userID string) ([]models.Note, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("userId", userID).
		Get("/get-user-notes")
	if err != nil {
		return nil, fmt.Errorf("get user notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var notes []models.Note
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("%w: decode notes body: %v", ErrMalformedResponse, err)
	}
	for _, n := range notes {
		if n.ID == "" {
			return nil, fmt.Errorf("%w: note entry missing id", ErrMalformedResponse)
		}
	}

	return notes, nil
}

// CreateNote implements [NotesAPI]. It POSTs the new note text to
// POST /create-note. The success body is not used.
func (h *httpNotesAPI) CreateNote(ctx context.Context, req models.CreateNoteRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/create-note")
	if err != nil {
		return fmt.Errorf("create note request: %w", err)
	}

	return mapHTTPError(resp)
}

// UpdateNote implements [NotesAPI]. It PUTs the replacement text to
// PUT /update-note.
func (h *httpNotesAPI) UpdateNote(ctx context.Context, req models.UpdateNoteRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Put("/update-note")
	if err != nil {
		return fmt.Errorf("update note request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteNote implements [NotesAPI]. It sends the delete request to
// DELETE /delete-note.
func (h *httpNotesAPI) DeleteNote(ctx context.Context, req models.DeleteNoteRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Delete("/delete-note")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}
