package eventbus

import "log/slog"

// LogEvents subscribes a logger to every domain event. Failures are logged at
// error level, the rest at debug. The returned function unsubscribes.
func LogEvents(b EventBus, logger *slog.Logger) func() {
	types := []EventType{
		EventQuerySettled,
		EventFetchStarted,
		EventSuggestionsUpdated,
		EventSuggestionsCleared,
		EventStaleResponse,
		EventFetchFailed,
		EventLinkOpened,
		EventError,
		EventConfigLoaded,
		EventConfigSaved,
	}

	unsubs := make([]func(), 0, len(types))
	for _, t := range types {
		unsubs = append(unsubs, b.Subscribe(t, func(e DomainEvent) { logEvent(logger, e) }))
	}
	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}

func logEvent(logger *slog.Logger, e DomainEvent) {
	switch ev := e.(type) {
	case QuerySettledEvent:
		logger.Debug("query settled", "query", ev.Query)
	case FetchStartedEvent:
		logger.Debug("fetch started", "query", ev.Query, "seq", ev.Seq)
	case SuggestionsUpdatedEvent:
		logger.Debug("suggestions updated", "query", ev.Query, "count", ev.Count)
	case SuggestionsClearedEvent:
		logger.Debug("suggestions cleared")
	case StaleResponseEvent:
		logger.Debug("stale response dropped", "query", ev.Query, "current", ev.Current)
	case FetchFailedEvent:
		logger.Error("fetch failed", "query", ev.Query, "err", ev.Err)
	case LinkOpenedEvent:
		if ev.Err != nil {
			logger.Error("open link failed", "link", ev.Link, "err", ev.Err)
			return
		}
		logger.Debug("link opened", "link", ev.Link)
	case ErrorEvent:
		logger.Error(ev.Message, "err", ev.Err)
	case ConfigLoadedEvent:
		logger.Info("config loaded", "path", ev.Path)
	case ConfigSavedEvent:
		logger.Info("config saved", "path", ev.Path)
	default:
		logger.Debug("event", "type", e.Type())
	}
}
