package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"wikisuggest/internal/domain"
)

// SuggestionRenderer renders one row of the suggestion list
type SuggestionRenderer struct {
	styles     *Styles
	hyperlinks bool
}

// NewSuggestionRenderer creates a new suggestion renderer. With hyperlinks
// enabled each title is wrapped in an OSC 8 link to its article.
func NewSuggestionRenderer(styles *Styles, hyperlinks bool) *SuggestionRenderer {
	return &SuggestionRenderer{
		styles:     styles,
		hyperlinks: hyperlinks,
	}
}

// RenderSuggestion renders a single suggestion
func (r *SuggestionRenderer) RenderSuggestion(s domain.Suggestion, isSelected bool, width int) string {
	prefix := "  "
	titleStyle := r.styles.Link
	if isSelected {
		prefix = r.styles.Cursor.Render("▸ ")
		titleStyle = titleStyle.Inherit(r.styles.Highlight)
	}

	title := s.Title
	if width > 0 {
		title = truncate(title, width-lipgloss.Width(prefix))
	}
	title = titleStyle.Render(title)
	if r.hyperlinks && s.Link != "" {
		title = termenv.Hyperlink(s.Link, title)
	}

	line := prefix + title
	if isSelected {
		return r.styles.SelectionBg.Render(line)
	}
	return line
}

// truncate shortens s to at most width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
