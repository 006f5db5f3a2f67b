package input

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wikisuggest/internal/ui/input/types"
)

// Placeholder is shown while the search box is empty
const Placeholder = "Enter Search Text"

type Handler struct {
	keys      KeyMap
	textInput *textinput.Model
}

// New creates a handler whose search box starts with initial
func New(initial string) *Handler {
	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = "> "
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()

	return &Handler{
		keys:      DefaultKeyMap(),
		textInput: &ti,
	}
}

// HandleKey maps a key press to actions. Keys that are not bound go to the
// search box; an UpdateTextAction is emitted when its value changes.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	switch {
	case key.Matches(msg, h.keys.Quit), key.Matches(msg, h.keys.Force):
		return []types.Action{types.QuitAction{}}, nil
	case key.Matches(msg, h.keys.Help):
		return []types.Action{types.ShowHelpAction{}}, nil
	case key.Matches(msg, h.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, nil
	case key.Matches(msg, h.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, nil
	case key.Matches(msg, h.keys.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, nil
	case key.Matches(msg, h.keys.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, nil
	case key.Matches(msg, h.keys.Open):
		if link := ctx.SelectedLink(); link != "" {
			return []types.Action{types.OpenLinkAction{Link: link}}, nil
		}
		return nil, nil
	}

	before := h.textInput.Value()
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	if after := h.textInput.Value(); after != before {
		return []types.Action{types.UpdateTextAction{Text: after}}, cmd
	}
	return nil, cmd
}

// Update forwards non-key messages (cursor blink) to the search box
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

// SetCursorBlink switches the search box cursor between blinking and static
func (h *Handler) SetCursorBlink(on bool) {
	mode := cursor.CursorStatic
	if on {
		mode = cursor.CursorBlink
	}
	h.textInput.Cursor.SetMode(mode)
}

// SetWidth limits the visible width of the search box
func (h *Handler) SetWidth(width int) {
	h.textInput.Width = width
}

// Value returns the search box text
func (h *Handler) Value() string {
	return h.textInput.Value()
}

// View renders the search box
func (h *Handler) View() string {
	return h.textInput.View()
}

// Keys returns the key bindings, for the help view
func (h *Handler) Keys() KeyMap {
	return h.keys
}
