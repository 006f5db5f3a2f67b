package suggest

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"wikisuggest/internal/domain"
	"wikisuggest/internal/eventbus"
)

// Source retrieves ranked suggestions for a query
type Source interface {
	Suggest(ctx context.Context, query string) (domain.SuggestionList, error)
}

// FetchState is the state of a Fetcher
type FetchState int

const (
	// FetchEmpty means there is no query; the list is empty or about to be cleared
	FetchEmpty FetchState = iota
	// FetchFetching means a request for the current query is outstanding
	FetchFetching
	// FetchPopulated means the list holds the last successful result
	FetchPopulated
)

func (s FetchState) String() string {
	switch s {
	case FetchEmpty:
		return "empty"
	case FetchFetching:
		return "fetching"
	case FetchPopulated:
		return "populated"
	default:
		return "unknown"
	}
}

// fetchResultMsg carries a completed request back to the update loop,
// tagged with the query and sequence number it was issued for
type fetchResultMsg struct {
	owner *Fetcher
	seq   uint64
	query string
	items domain.SuggestionList
	err   error
}

// clearMsg is delivered when the grace delay for an empty query has elapsed
type clearMsg struct {
	owner *Fetcher
	seq   uint64
}

// Fetcher turns settled queries into a suggestion list. Every settled change
// cancels the outstanding request and the pending clear, and bumps a sequence
// number; results and clears carrying an older sequence are dropped.
//
// All methods must be called from the Bubble Tea update loop.
type Fetcher struct {
	source Source
	grace  time.Duration
	bus    eventbus.EventBus
	logger *slog.Logger

	state   FetchState
	seq     uint64
	current string
	list    domain.SuggestionList

	cancelFetch context.CancelFunc
	cancelClear context.CancelFunc
	closed      bool
}

// NewFetcher creates a fetcher. bus may be nil.
func NewFetcher(source Source, grace time.Duration, bus eventbus.EventBus, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		source: source,
		grace:  grace,
		bus:    bus,
		logger: logger,
	}
}

// Settled reacts to a new settled query. An empty query schedules a clear
// after the grace delay; anything else issues one request.
func (f *Fetcher) Settled(query string) tea.Cmd {
	if f.closed {
		return nil
	}
	f.cancelPending()

	f.seq++
	f.current = query

	if query == "" {
		f.state = FetchEmpty
		ctx, cancel := context.WithCancel(context.Background())
		f.cancelClear = cancel
		return after(ctx, f.grace, clearMsg{owner: f, seq: f.seq})
	}

	f.state = FetchFetching
	ctx, cancel := context.WithCancel(context.Background())
	f.cancelFetch = cancel
	f.publish(eventbus.FetchStartedEvent{Query: query, Seq: f.seq})

	source, seq := f.source, f.seq
	return func() tea.Msg {
		if ctx.Err() != nil {
			return nil
		}
		items, err := source.Suggest(ctx, query)
		if ctx.Err() != nil {
			return nil
		}
		return fetchResultMsg{owner: f, seq: seq, query: query, items: items, err: err}
	}
}

// Apply consumes a fetch result. It reports whether the list changed.
func (f *Fetcher) Apply(msg fetchResultMsg) bool {
	if f.closed || msg.owner != f {
		return false
	}
	if msg.seq != f.seq || msg.query != f.current {
		f.logger.Debug("discarding stale suggestions", "query", msg.query, "current", f.current)
		f.publish(eventbus.StaleResponseEvent{Query: msg.query, Current: f.current})
		return false
	}

	if f.cancelFetch != nil {
		f.cancelFetch()
		f.cancelFetch = nil
	}

	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return false
		}
		f.logger.Error("fetching suggestions failed", "query", msg.query, "err", msg.err)
		f.publish(eventbus.FetchFailedEvent{Query: msg.query, Err: msg.err})
		if len(f.list) > 0 {
			f.state = FetchPopulated
		} else {
			f.state = FetchEmpty
		}
		return false
	}

	f.list = msg.items.Clone()
	if f.list == nil {
		f.list = domain.SuggestionList{}
	}
	f.state = FetchPopulated
	f.logger.Debug("suggestions updated", "query", msg.query, "count", len(f.list))
	f.publish(eventbus.SuggestionsUpdatedEvent{Query: msg.query, Count: len(f.list)})
	return true
}

// Clear consumes a grace-delay message. The list is only cleared if the
// settled query is still the empty one that scheduled it.
func (f *Fetcher) Clear(msg clearMsg) bool {
	if f.closed || msg.owner != f || msg.seq != f.seq || f.current != "" {
		return false
	}
	f.cancelClear = nil
	f.list = nil
	f.state = FetchEmpty
	f.publish(eventbus.SuggestionsClearedEvent{})
	return true
}

// Close cancels outstanding work; later messages are ignored
func (f *Fetcher) Close() {
	f.cancelPending()
	f.closed = true
}

// State returns the current state
func (f *Fetcher) State() FetchState {
	return f.state
}

// Query returns the settled query the fetcher is serving
func (f *Fetcher) Query() string {
	return f.current
}

// Suggestions returns a copy of the current list
func (f *Fetcher) Suggestions() domain.SuggestionList {
	return f.list.Clone()
}

func (f *Fetcher) cancelPending() {
	if f.cancelFetch != nil {
		f.cancelFetch()
		f.cancelFetch = nil
	}
	if f.cancelClear != nil {
		f.cancelClear()
		f.cancelClear = nil
	}
}

func (f *Fetcher) publish(event eventbus.DomainEvent) {
	if f.bus != nil {
		f.bus.Publish(event)
	}
}
