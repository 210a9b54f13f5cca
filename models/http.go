package models

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignUpRequest is the body of POST /sign-up.
type SignUpRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateNoteRequest is the body of POST /create-note.
type CreateNoteRequest struct {
	Note   string `json:"note"`
	UserID string `json:"userId"`
}

// UpdateNoteRequest is the body of PUT /update-note.
type UpdateNoteRequest struct {
	NoteID  string `json:"noteId"`
	NewNote string `json:"newNote"`
	UserID  string `json:"userId"`
}

// DeleteNoteRequest is the body of DELETE /delete-note.
type DeleteNoteRequest struct {
	NoteID string `json:"noteId"`
	UserID string `json:"userId"`
}

// APIMessage is the body the server sends with failure responses.
// The message is surfaced verbatim on login and sign-up failures.
type APIMessage struct {
	Message string `json:"message"`
}
