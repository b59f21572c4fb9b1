package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskpad/pkg/tasks"
)

// Form field indices
const (
	fieldName = iota
	fieldCategory
	fieldTime
	fieldCount
)

// form holds the add-task inputs. It lives behind a pointer so the theme
// applier can capture and restore it while a transition is in flight.
type form struct {
	nameInput   textinput.Model
	timeInput   textinput.Model
	categoryIdx int
	activeInput int
}

// formSnapshot is the opaque capture handed to the theme manager. A theme
// change mid-edit must never discard what the user was typing.
type formSnapshot struct {
	name        string
	namePos     int
	timeValue   string
	timePos     int
	categoryIdx int
	activeInput int
	focused     bool
}

func newForm() *form {
	nameInput := textinput.New()
	nameInput.Placeholder = "Task name"
	nameInput.CharLimit = tasks.MaxNameLength + 20
	nameInput.Width = 40
	nameInput.Focus()

	timeInput := textinput.New()
	timeInput.Placeholder = "Time (HH:MM, optional)"
	timeInput.Width = 40

	return &form{
		nameInput: nameInput,
		timeInput: timeInput,
	}
}

func (f *form) reset() {
	f.nameInput.Reset()
	f.timeInput.Reset()
	f.categoryIdx = 0
	f.activeInput = fieldName
	f.nameInput.Focus()
	f.timeInput.Blur()
}

func (f *form) focusNextInput() {
	f.setActive((f.activeInput + 1) % fieldCount)
}

func (f *form) focusPreviousInput() {
	f.setActive((f.activeInput + fieldCount - 1) % fieldCount)
}

func (f *form) setActive(idx int) {
	f.activeInput = idx

	switch idx {
	case fieldName:
		f.nameInput.Focus()
		f.timeInput.Blur()
	case fieldCategory:
		f.nameInput.Blur()
		f.timeInput.Blur()
	case fieldTime:
		f.nameInput.Blur()
		f.timeInput.Focus()
	}
}

func (f *form) cycleCategory(delta int) {
	n := len(tasks.Categories())
	f.categoryIdx = (f.categoryIdx + delta + n) % n
}

func (f *form) category() tasks.Category {
	return tasks.Categories()[f.categoryIdx]
}

// update routes key messages to the focused text input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.activeInput {
	case fieldName:
		f.nameInput, cmd = f.nameInput.Update(msg)
	case fieldTime:
		f.timeInput, cmd = f.timeInput.Update(msg)
	}
	return cmd
}

func (f *form) snapshot() formSnapshot {
	return formSnapshot{
		name:        f.nameInput.Value(),
		namePos:     f.nameInput.Position(),
		timeValue:   f.timeInput.Value(),
		timePos:     f.timeInput.Position(),
		categoryIdx: f.categoryIdx,
		activeInput: f.activeInput,
		focused:     f.nameInput.Focused() || f.timeInput.Focused(),
	}
}

func (f *form) restore(snap formSnapshot) {
	f.nameInput.SetValue(snap.name)
	f.nameInput.SetCursor(snap.namePos)
	f.timeInput.SetValue(snap.timeValue)
	f.timeInput.SetCursor(snap.timePos)
	f.categoryIdx = snap.categoryIdx
	if snap.focused {
		f.setActive(snap.activeInput)
	} else {
		f.activeInput = snap.activeInput
		f.nameInput.Blur()
		f.timeInput.Blur()
	}
}

// applyStyles restyles the inputs for the active theme without touching
// their values or cursor positions.
func (f *form) applyStyles(s Styles) {
	for _, input := range []*textinput.Model{&f.nameInput, &f.timeInput} {
		input.PromptStyle = s.Accent
		input.TextStyle = s.NormalText
		input.PlaceholderStyle = s.SecondaryTxt
		input.Cursor.Style = s.Accent
	}
}
