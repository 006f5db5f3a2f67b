package ui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/browser"
)

// LinkOpener opens a URL outside the terminal
type LinkOpener func(url string) error

// BrowserOpener returns an opener backed by the system browser. The
// launcher's own output is discarded so it cannot tear the screen.
func BrowserOpener() LinkOpener {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return browser.OpenURL
}

// openLinkCmd opens link in the background and reports the outcome
func openLinkCmd(open LinkOpener, link string) tea.Cmd {
	return func() tea.Msg {
		return linkOpenedMsg{link: link, err: open(link)}
	}
}
