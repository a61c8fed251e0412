package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kindling-app/kindling/internal/profile"
	"github.com/kindling-app/kindling/internal/profile/wizard"
	"github.com/kindling-app/kindling/internal/upload"
)

// preferenceOrder is the cycle order for the match preference control.
var preferenceOrder = []profile.MatchPreference{
	profile.PreferenceAnyone,
	profile.PreferenceMen,
	profile.PreferenceWomen,
}

// Model is the Bubble Tea model for the onboarding wizard.
type Model struct {
	ctx      context.Context
	wiz      *wizard.Wizard
	uploader upload.Uploader

	// Step inputs
	nameInput  textinput.Model
	photoInput textinput.Model
	bioInput   textarea.Model

	// Photos step state
	photoCursor int
	addingPhoto bool
	uploading   bool
	uploadErr   error

	// Interests step state
	interestCursor int

	// UI state
	Width     int
	Height    int
	Cancelled bool
	Done      bool
}

// NewModel creates the onboarding TUI model.
func NewModel(ctx context.Context, cfg wizard.Config, up upload.Uploader) Model {
	wiz := wizard.New(cfg)
	draft := wiz.Draft()

	name := textinput.New()
	name.Placeholder = "Sam"
	name.CharLimit = profile.MaxNameLen
	name.SetValue(draft.Name)
	name.Focus()

	photo := textinput.New()
	photo.Placeholder = "path/to/photo.jpg"

	bio := textarea.New()
	bio.Placeholder = "What makes you, you?"
	bio.CharLimit = profile.MaxBioLen
	bio.SetHeight(6)
	bio.SetValue(draft.Bio)

	return Model{
		ctx:        ctx,
		wiz:        wiz,
		uploader:   up,
		nameInput:  name,
		photoInput: photo,
		bioInput:   bio,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.Cancelled = true
			return m, tea.Quit
		}
		return m.updateKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case UploadResultMsg:
		m.uploading = false
		if msg.Err != nil {
			m.uploadErr = msg.Err
			return m, nil
		}
		m.uploadErr = nil
		m.wiz.AddPhoto(msg.Photo)
		m.photoInput.Reset()
		m.addingPhoto = false
		m.photoCursor = len(m.wiz.Draft().Photos) - 1
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.wiz.Step() {
	case wizard.StepName:
		return m.updateNameStep(msg)
	case wizard.StepPhotos:
		return m.updatePhotosStep(msg)
	case wizard.StepBio:
		return m.updateBioStep(msg)
	case wizard.StepInterests:
		return m.updateInterestsStep(msg)
	}
	return m, nil
}

func (m Model) updateNameStep(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.advance()
		return m, nil
	case "esc":
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	m.wiz.SetName(m.nameInput.Value())
	return m, cmd
}

func (m Model) updatePhotosStep(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.addingPhoto {
		switch msg.String() {
		case "enter":
			path := m.photoInput.Value()
			if path == "" || m.uploading {
				return m, nil
			}
			m.uploading = true
			return m, uploadCmd(m.ctx, m.uploader, path)
		case "esc":
			m.addingPhoto = false
			m.uploadErr = nil
			m.photoInput.Reset()
			return m, nil
		}
		var cmd tea.Cmd
		m.photoInput, cmd = m.photoInput.Update(msg)
		return m, cmd
	}

	photos := m.wiz.Draft().Photos
	switch msg.String() {
	case "enter":
		m.advance()
	case "esc":
		m.retreat()
	case "a":
		if len(photos) < profile.MaxPhotos {
			m.addingPhoto = true
			m.uploadErr = nil
			m.photoInput.Focus()
			return m, textinput.Blink
		}
	case "d", "x":
		if m.wiz.RemovePhotoAt(m.photoCursor) && m.photoCursor > 0 {
			m.photoCursor--
		}
	case "up", "k":
		if m.photoCursor > 0 {
			m.photoCursor--
		}
	case "down", "j":
		if m.photoCursor < len(photos)-1 {
			m.photoCursor++
		}
	}
	return m, nil
}

func (m Model) updateBioStep(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.advance()
		return m, nil
	case "esc":
		m.retreat()
		return m, nil
	}

	var cmd tea.Cmd
	m.bioInput, cmd = m.bioInput.Update(msg)
	m.wiz.SetBio(m.bioInput.Value())
	return m, cmd
}

func (m Model) updateInterestsStep(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.advance() && m.wiz.Completed() {
			m.Done = true
			return m, tea.Quit
		}
	case "esc":
		m.retreat()
	case " ":
		m.wiz.ToggleInterest(profile.Interests[m.interestCursor].Tag)
	case "up", "k":
		if m.interestCursor >= interestColumns {
			m.interestCursor -= interestColumns
		}
	case "down", "j":
		if m.interestCursor+interestColumns < len(profile.Interests) {
			m.interestCursor += interestColumns
		}
	case "left", "h":
		if m.interestCursor > 0 {
			m.interestCursor--
		}
	case "right", "l":
		if m.interestCursor < len(profile.Interests)-1 {
			m.interestCursor++
		}
	case "p":
		m.cyclePreference()
	}
	return m, nil
}

// advance moves to the next step and refocuses the right input. Returns
// whether the wizard accepted the move.
func (m *Model) advance() bool {
	if !m.wiz.Advance() {
		return false
	}
	m.focusStep()
	return true
}

func (m *Model) retreat() {
	if m.wiz.Retreat() {
		m.focusStep()
	}
}

func (m *Model) focusStep() {
	m.nameInput.Blur()
	m.bioInput.Blur()

	switch m.wiz.Step() {
	case wizard.StepName:
		m.nameInput.Focus()
	case wizard.StepBio:
		m.bioInput.Focus()
	}
}

func (m *Model) cyclePreference() {
	cur := m.wiz.Draft().Preference
	for i, p := range preferenceOrder {
		if p == cur {
			m.wiz.SetPreference(preferenceOrder[(i+1)%len(preferenceOrder)])
			return
		}
	}
	m.wiz.SetPreference(profile.PreferenceAnyone)
}

func uploadCmd(ctx context.Context, up upload.Uploader, path string) tea.Cmd {
	return func() tea.Msg {
		photo, err := up.Upload(ctx, path)
		return UploadResultMsg{Photo: photo, Err: err}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}
