package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"wikisuggest/internal/ui/input"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys     input.KeyMap
	debounce time.Duration
	grace    time.Duration
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys input.KeyMap, debounce, grace time.Duration) *HelpRenderer {
	return &HelpRenderer{keys: keys, debounce: debounce, grace: grace}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("wikisuggest Help"))
	help.WriteString("\n")

	writeBinding := func(b key.Binding) {
		h := b.Help()
		help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
	}

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	writeBinding(r.keys.Up)
	writeBinding(r.keys.Down)
	writeBinding(r.keys.Home)
	writeBinding(r.keys.End)
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Actions"))
	help.WriteString("\n")
	writeBinding(r.keys.Open)
	writeBinding(r.keys.Help)
	writeBinding(r.keys.Quit)
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("ctrl+c"), descStyle.Render("quit")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Searching"))
	help.WriteString("\n")
	help.WriteString(descStyle.Render(fmt.Sprintf(
		"  Suggestions are fetched once typing pauses for %s.", r.debounce)))
	help.WriteString("\n")
	help.WriteString(descStyle.Render(fmt.Sprintf(
		"  Clearing the search box empties the list after %s.", r.grace)))
	help.WriteString("\n")
	help.WriteString(descStyle.Render("  All other keys edit the search box."))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	pager func(content string) error
}

// NewHelpOps creates a new help operations instance backed by ov
func NewHelpOps() *HelpOps {
	return &HelpOps{pager: runPager}
}

// ShowHelpInPager suspends the program and shows content in the pager.
// The outcome is delivered as a helpPagerMsg.
func (h *HelpOps) ShowHelpInPager(content string) tea.Cmd {
	return tea.Exec(&pagerCommand{content: content, run: h.pager}, func(err error) tea.Msg {
		return helpPagerMsg{err: err}
	})
}

// pagerCommand adapts the in-process pager to tea.ExecCommand. ov opens the
// terminal itself, so the streams handed over by Bubble Tea are unused.
type pagerCommand struct {
	content string
	run     func(string) error
}

func (c *pagerCommand) Run() error          { return c.run(c.content) }
func (c *pagerCommand) SetStdin(io.Reader)  {}
func (c *pagerCommand) SetStdout(io.Writer) {}
func (c *pagerCommand) SetStderr(io.Writer) {}

// runPager shows content using ov
func runPager(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
