package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"wikisuggest/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	TextInput     string
	Suggestions   domain.SuggestionList
	SelectedIndex int
	SettledQuery  string
	Fetching      bool
	Pending       bool
	Spinner       string
	StatusMessage string
	MaxResults    int // 0 shows everything that fits
	HelpModel     help.Model
	KeyMap        help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles           *Styles
	suggestionRender *SuggestionRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(hyperlinks bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:           styles,
		suggestionRender: NewSuggestionRenderer(styles, hyperlinks),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	availableWidth := termWidth - 4 // main container padding

	// Title with activity indicator on the right
	logo := r.styles.Title.Render("wikisuggest")
	titleLine := logo
	if indicator := r.renderIndicator(state); indicator != "" {
		paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(indicator)
		if paddingWidth > 0 {
			titleLine = logo + strings.Repeat(" ", paddingWidth) + indicator
		} else {
			titleLine = fmt.Sprintf("%s  %s", logo, indicator)
		}
	}
	content.WriteString(titleLine)
	content.WriteString("\n")

	content.WriteString(state.TextInput)
	content.WriteString("\n\n")

	// Fixed rows: title (2 with margin), input + gap, link line, status, help,
	// container padding
	availableLines := state.Height - 9
	if state.Height <= 0 {
		availableLines = 15
	}
	content.WriteString(r.renderSuggestionList(state, availableLines, availableWidth))

	// Selected link, status and help sit at the bottom
	footer := &strings.Builder{}
	if state.SelectedIndex >= 0 && state.SelectedIndex < len(state.Suggestions) {
		footer.WriteString(r.styles.Dim.Render(truncate(state.Suggestions[state.SelectedIndex].Link, availableWidth)))
	}
	footer.WriteString("\n")
	footer.WriteString(r.styles.Status.Render(r.statusLine(state)))
	footer.WriteString("\n")
	if state.KeyMap != nil {
		footer.WriteString(state.HelpModel.View(state.KeyMap))
	} else {
		footer.WriteString(r.styles.Help.Render("Press F1 for help"))
	}

	if state.Height > 0 {
		currentLines := strings.Count(content.String(), "\n") + 1
		paddingNeeded := state.Height - 2 - currentLines - strings.Count(footer.String(), "\n") - 1
		if paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
	}
	content.WriteString("\n")
	content.WriteString(footer.String())

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderSuggestionList renders the visible window of suggestions, keeping the
// selected row in view
func (r *Renderer) renderSuggestionList(state ViewState, maxLines, width int) string {
	if len(state.Suggestions) == 0 {
		if state.Fetching {
			return r.styles.Dim.Render("Searching...")
		}
		return r.styles.Dim.Render("No suggestions.")
	}

	items := state.Suggestions
	if state.MaxResults > 0 && len(items) > state.MaxResults {
		items = items[:state.MaxResults]
	}
	if maxLines < 1 {
		maxLines = 1
	}

	start := 0
	if len(items) > maxLines {
		if state.SelectedIndex >= maxLines {
			start = state.SelectedIndex - maxLines + 1
		}
		if start > len(items)-maxLines {
			start = len(items) - maxLines
		}
	}
	end := min(start+maxLines, len(items))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, r.suggestionRender.RenderSuggestion(items[i], i == state.SelectedIndex, width))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderIndicator(state ViewState) string {
	switch {
	case state.Fetching:
		return r.styles.StatusLoading.Render(fmt.Sprintf("%s Searching", state.Spinner))
	case state.Pending:
		return r.styles.StatusPending.Render("… typing")
	}
	return ""
}

func (r *Renderer) statusLine(state ViewState) string {
	if state.StatusMessage != "" {
		return state.StatusMessage
	}
	if state.SettledQuery == "" {
		return ""
	}
	n := len(state.Suggestions)
	noun := "suggestions"
	if n == 1 {
		noun = "suggestion"
	}
	line := fmt.Sprintf("%d %s for %q", n, noun, state.SettledQuery)
	if n > 0 && state.SelectedIndex >= 0 {
		line += r.styles.Scroll.Render(fmt.Sprintf("  (%d/%d)", state.SelectedIndex+1, n))
	}
	return line
}
