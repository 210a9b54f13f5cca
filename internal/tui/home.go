package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/noted-app/noted/internal/feed"
	"github.com/noted-app/noted/internal/service"
	"github.com/noted-app/noted/models"
)

type editMode int

const (
	editNone editMode = iota
	editAdd
	editExisting
)

// homeModel is the authenticated note feed: a filterable, orderable list of
// the user's notes with create, edit, delete and copy flows.
type homeModel struct {
	ctx   context.Context
	notes service.NotesService
	cred  models.Credential

	items   []models.Note
	idx     int
	loading bool
	status  string
	errMsg  string

	filter        textinput.Model
	filterFocused bool
	dir           feed.SortDirection

	mode       editMode
	editor     textarea.Model
	editNoteID string
	saving     bool

	logout bool
}

func newHomeModel(ctx context.Context, notes service.NotesService, cred models.Credential) homeModel {
	filter := textinput.New()
	filter.Placeholder = "filter notes"
	filter.Width = 40

	editor := textarea.New()
	editor.Placeholder = "write your note"
	editor.SetWidth(60)
	editor.SetHeight(6)

	return homeModel{
		ctx:     ctx,
		notes:   notes,
		cred:    cred,
		loading: true,
		filter:  filter,
		dir:     feed.Latest,
		editor:  editor,
	}
}

func (m homeModel) Init() tea.Cmd {
	return m.cmdLoadNotes()
}

func (m homeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.notes
		m.clampIdx()
		return m, nil
	case noteSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.mode = editNone
		m.editNoteID = ""
		m.editor.Reset()
		m.status = "Note saved"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadNotes()
	case noteDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Note deleted"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadNotes()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.mode != editNone {
			return m.updateEditor(msg)
		}
		if m.filterFocused {
			return m.updateFilter(msg)
		}
		return m, nil
	}

	if m.mode != editNone {
		return m.updateEditor(msg)
	}
	if m.filterFocused {
		return m.updateFilter(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.project())-1 {
			m.idx++
		}
	case "f", "/":
		m.filterFocused = true
		m.filter.Focus()
		return m, textinput.Blink
	case "o":
		m.dir = m.dir.Toggle()
		m.clampIdx()
	case "a", "n":
		m.mode = editAdd
		m.editNoteID = ""
		m.editor.Reset()
		m.editor.Focus()
		m.status = ""
		m.errMsg = ""
		return m, textarea.Blink
	case "e":
		entry, ok := m.current()
		if !ok {
			m.status = "No notes"
			return m, nil
		}
		m.mode = editExisting
		m.editNoteID = entry.ID
		m.editor.SetValue(entry.Data)
		m.editor.Focus()
		m.status = ""
		m.errMsg = ""
		return m, textarea.Blink
	case "ctrl+d":
		entry, ok := m.current()
		if !ok {
			m.status = "No notes"
			return m, nil
		}
		return m, m.cmdDelete(entry.ID)
	case "c":
		entry, ok := m.current()
		if !ok {
			m.status = "No notes"
			return m, nil
		}
		if err := clipboard.WriteAll(entry.Data); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = "Copied"
	case "r":
		m.notes.Invalidate()
		m.status = ""
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadNotes()
	case "l":
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m homeModel) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.filter.SetValue("")
			m.filter.Blur()
			m.filterFocused = false
			m.clampIdx()
			return m, nil
		case "enter":
			m.filter.Blur()
			m.filterFocused = false
			m.clampIdx()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.clampIdx()
	return m, cmd
}

func (m homeModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = editNone
			m.editNoteID = ""
			m.editor.Reset()
			m.saving = false
			return m, nil
		case "ctrl+s":
			if m.saving {
				return m, nil
			}

			text := m.editor.Value()
			if strings.TrimSpace(text) == "" {
				// Matches the save semantics: blank notes are never sent.
				m.mode = editNone
				m.editNoteID = ""
				m.editor.Reset()
				return m, nil
			}

			m.saving = true
			if m.mode == editExisting {
				return m, m.cmdUpdate(m.editNoteID, text)
			}
			return m, m.cmdCreate(text)
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m homeModel) View() string {
	if m.mode != editNone {
		return m.viewEditor()
	}

	var b strings.Builder

	b.WriteString("Welcome, " + m.cred.Username + "\n\n")

	b.WriteString("Filter    │ [" + m.filter.View() + "]\n")
	b.WriteString("Order     │ " + m.dir.String() + "\n\n")

	if m.loading {
		b.WriteString("Loading notes...\n")
		return renderPage("MY NOTES", strings.TrimRight(b.String(), "\n"), homeHotKeys)
	}

	if m.errMsg != "" {
		b.WriteString("Error: " + errorStyle.Render(m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString("Status: " + m.status + "\n")
	}

	entries := m.project()
	if len(entries) == 0 {
		b.WriteString("\nNo notes to show\n")
	} else {
		b.WriteString("\n")
		b.WriteString(countLabel(len(entries)) + "\n\n")
		for i, entry := range entries {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf(
				"%s %-48s %s\n",
				cursor,
				fitText(entry.Data, 48),
				ageStyle.Render(entry.Age),
			))
		}
	}

	return renderPage("MY NOTES", strings.TrimRight(b.String(), "\n"), homeHotKeys)
}

const homeHotKeys = "a: new │ e: edit │ ctrl+d: delete │ c: copy │ f: filter │ o: order │ r: refresh │ l: logout"

func (m homeModel) viewEditor() string {
	title := "NEW NOTE"
	if m.mode == editExisting {
		title = "EDIT NOTE"
	}

	var b strings.Builder
	b.WriteString(m.editor.View())
	b.WriteString("\n")
	if m.saving {
		b.WriteString("\nSaving...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: " + errorStyle.Render(m.errMsg) + "\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "enter: new line │ ctrl+s: save │ esc: cancel")
}

// project applies the filter and sort order to the loaded notes, labelling
// each entry with its age relative to now.
func (m homeModel) project() []feed.Entry {
	return feed.Project(m.items, m.filter.Value(), m.dir, time.Now())
}

func (m homeModel) current() (feed.Entry, bool) {
	entries := m.project()
	if len(entries) == 0 || m.idx < 0 || m.idx >= len(entries) {
		return feed.Entry{}, false
	}
	return entries[m.idx], true
}

func (m *homeModel) clampIdx() {
	if n := len(m.project()); m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m homeModel) cmdLoadNotes() tea.Cmd {
	ctx := m.ctx
	svc := m.notes

	return func() tea.Msg {
		notes, err := svc.List(ctx)
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m homeModel) cmdCreate(text string) tea.Cmd {
	ctx := m.ctx
	svc := m.notes

	return func() tea.Msg {
		return noteSavedMsg{err: svc.Create(ctx, text)}
	}
}

func (m homeModel) cmdUpdate(noteID, text string) tea.Cmd {
	ctx := m.ctx
	svc := m.notes

	return func() tea.Msg {
		return noteSavedMsg{err: svc.Update(ctx, noteID, text)}
	}
}

func (m homeModel) cmdDelete(noteID string) tea.Cmd {
	ctx := m.ctx
	svc := m.notes

	return func() tea.Msg {
		return noteDeletedMsg{err: svc.Delete(ctx, noteID)}
	}
}
