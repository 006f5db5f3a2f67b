package ui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wikisuggest/internal/config"
	"wikisuggest/internal/domain"
	"wikisuggest/internal/eventbus"
	"wikisuggest/internal/suggest"
	"wikisuggest/internal/ui/input"
	inputtypes "wikisuggest/internal/ui/input/types"
	"wikisuggest/internal/ui/services/navigation"
	"wikisuggest/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus        eventbus.EventBus
	config     *config.Config
	controller *suggest.Controller
	logger     *slog.Logger

	// UI-specific state
	width         int
	height        int
	help          help.Model
	spinner       spinner.Model
	statusMessage string
	quitting      bool

	navigator    *navigation.Service
	renderer     *views.Renderer
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	helpOps      *HelpOps
	openLink     LinkOpener
}

// NewModel creates a new UI model around ctrl. The search box starts with
// the controller's raw query. The bus may be nil.
func NewModel(ctrl *suggest.Controller, cfg *config.Config, bus eventbus.EventBus) *Model {
	inputHandler := input.New(ctrl.RawQuery())
	inputHandler.SetCursorBlink(cfg.UISettings.CursorBlink)

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	m := &Model{
		bus:          bus,
		config:       cfg,
		controller:   ctrl,
		logger:       slog.Default(),
		help:         help.New(),
		spinner:      sp,
		navigator:    navigation.NewService(),
		renderer:     views.NewRenderer(cfg.UISettings.Hyperlinks),
		inputHandler: inputHandler,
		helpRenderer: NewHelpRenderer(inputHandler.Keys(), cfg.Debounce(), cfg.Grace()),
		helpOps:      NewHelpOps(),
		openLink:     BrowserOpener(),
	}
	m.navigator.OnMove(func(e navigation.CursorMovedEvent) {
		m.logger.Debug("selection moved", "from", e.OldLink, "to", e.NewLink)
	})
	return m
}

// SetLogger replaces the default logger
func (m *Model) SetLogger(logger *slog.Logger) {
	m.logger = logger
}

// SetLinkOpener replaces the browser used to open suggestions
func (m *Model) SetLinkOpener(open LinkOpener) {
	m.openLink = open
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.controller.Init(), m.spinner.Tick}
	if m.config.UISettings.CursorBlink {
		cmds = append(cmds, textinput.Blink)
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.controller.Update(msg); handled {
		m.navigator.SetItems(m.visibleSuggestions())
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width - 4
		m.inputHandler.SetWidth(msg.Width - 8)
		return m, nil

	case tea.KeyMsg:
		// Any key press clears a transient status message
		m.statusMessage = ""

		actions, cmd := m.inputHandler.HandleKey(msg, m)
		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case linkOpenedMsg:
		if m.bus != nil {
			m.bus.Publish(eventbus.LinkOpenedEvent{Link: msg.link, Err: msg.err})
		}
		if msg.err != nil {
			m.logger.Error("failed to open link", "link", msg.link, "err", msg.err)
			m.statusMessage = fmt.Sprintf("Could not open %s", msg.link)
		} else {
			m.logger.Info("opened link", "link", msg.link)
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			if m.bus != nil {
				m.bus.Publish(eventbus.ErrorEvent{Message: "help pager failed", Err: msg.err})
			} else {
				m.logger.Error("help pager failed", "err", msg.err)
			}
			m.statusMessage = "Help unavailable"
		}
		return m, nil
	}

	return m, m.inputHandler.Update(msg)
}

// processAction executes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		return m.controller.SetRawQuery(a.Text)

	case inputtypes.NavigateAction:
		m.navigator.Navigate(navigation.Direction(a.Direction))
		return nil

	case inputtypes.OpenLinkAction:
		return openLinkCmd(m.openLink, a.Link)

	case inputtypes.ShowHelpAction:
		return m.helpOps.ShowHelpInPager(m.helpRenderer.RenderHelpContent())

	case inputtypes.QuitAction:
		m.quitting = true
		m.controller.Close()
		return tea.Quit
	}
	return nil
}

func (m *Model) visibleSuggestions() domain.SuggestionList {
	items := m.controller.Suggestions()
	if limit := m.config.UISettings.MaxResultsShown; limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// SelectedLink implements inputtypes.Context
func (m *Model) SelectedLink() string {
	return m.navigator.Selected()
}

// Query returns the live text of the search box
func (m *Model) Query() string {
	return m.inputHandler.Value()
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	items := m.visibleSuggestions()
	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		TextInput:     m.inputHandler.View(),
		Suggestions:   items,
		SelectedIndex: items.IndexOf(m.navigator.Selected()),
		SettledQuery:  m.controller.SettledQuery(),
		Fetching:      m.controller.FetchState() == suggest.FetchFetching,
		Pending:       m.controller.DebounceState() == suggest.DebouncePending,
		Spinner:       m.spinner.View(),
		StatusMessage: m.statusMessage,
		MaxResults:    m.config.UISettings.MaxResultsShown,
		HelpModel:     m.help,
		KeyMap:        m.inputHandler.Keys(),
	})
}
