// Package suggest implements the debounced query controller behind the
// search box: raw keystrokes are debounced into settled queries, and each
// settled query is turned into a suggestion list by a Source.
//
// The controller is driven by the Bubble Tea update loop. Timers and network
// requests run as tea.Cmd goroutines that only produce messages; all state is
// mutated from Update, so no locking is needed.
package suggest

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"wikisuggest/internal/domain"
	"wikisuggest/internal/eventbus"
)

// Options configures a Controller. Defaults live in the config package.
type Options struct {
	Seed     string
	Debounce time.Duration
	Grace    time.Duration
	Bus      eventbus.EventBus
	Logger   *slog.Logger
}

// Controller owns the raw query, the settled query and the suggestion list
// for one search box
type Controller struct {
	raw       string
	settled   string
	debouncer *Debouncer
	fetcher   *Fetcher
	bus       eventbus.EventBus
	logger    *slog.Logger
	closed    bool
}

// NewController creates a controller whose raw and settled queries start at
// opts.Seed. Durations are used as given; zero settles or clears on the next
// turn of the update loop. Init fetches the seed.
func NewController(source Source, opts Options) *Controller {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Controller{
		raw:       opts.Seed,
		settled:   opts.Seed,
		debouncer: NewDebouncer(opts.Debounce),
		fetcher:   NewFetcher(source, opts.Grace, opts.Bus, opts.Logger),
		bus:       opts.Bus,
		logger:    opts.Logger,
	}
}

// Init settles the seed right away so suggestions show on first mount
func (c *Controller) Init() tea.Cmd {
	if c.closed || c.raw == "" {
		return nil
	}
	return c.settle(c.raw)
}

// SetRawQuery records a keystroke's new value and restarts the quiet period
func (c *Controller) SetRawQuery(value string) tea.Cmd {
	if c.closed {
		return nil
	}
	c.raw = value
	return c.debouncer.Change(value)
}

// Update handles the controller's own messages. handled is false for
// messages that belong to someone else.
func (c *Controller) Update(msg tea.Msg) (handled bool, cmd tea.Cmd) {
	switch msg := msg.(type) {
	case settleMsg:
		if msg.owner != c.debouncer {
			return false, nil
		}
		if value, ok := c.debouncer.Settle(msg); ok && value != c.settled {
			return true, c.settle(value)
		}
		return true, nil

	case fetchResultMsg:
		if msg.owner != c.fetcher {
			return false, nil
		}
		c.fetcher.Apply(msg)
		return true, nil

	case clearMsg:
		if msg.owner != c.fetcher {
			return false, nil
		}
		c.fetcher.Clear(msg)
		return true, nil
	}
	return false, nil
}

func (c *Controller) settle(value string) tea.Cmd {
	c.settled = value
	c.logger.Debug("query settled", "query", value)
	if c.bus != nil {
		c.bus.Publish(eventbus.QuerySettledEvent{Query: value})
	}
	return c.fetcher.Settled(value)
}

// Close tears the controller down: pending timers and requests are
// cancelled, and nothing that arrives afterwards changes state
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.debouncer.Close()
	c.fetcher.Close()
}

// RawQuery returns the live text of the search box
func (c *Controller) RawQuery() string { return c.raw }

// SettledQuery returns the last settled query
func (c *Controller) SettledQuery() string { return c.settled }

// Suggestions returns a copy of the current suggestion list
func (c *Controller) Suggestions() domain.SuggestionList { return c.fetcher.Suggestions() }

// DebounceState returns the debouncer's state
func (c *Controller) DebounceState() DebounceState { return c.debouncer.State() }

// FetchState returns the fetcher's state
func (c *Controller) FetchState() FetchState { return c.fetcher.State() }

// Closed reports whether Close has been called
func (c *Controller) Closed() bool { return c.closed }
