package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQuerySettled       EventType = "QuerySettled"
	EventFetchStarted       EventType = "FetchStarted"
	EventSuggestionsUpdated EventType = "SuggestionsUpdated"
	EventSuggestionsCleared EventType = "SuggestionsCleared"
	EventStaleResponse      EventType = "StaleResponse"
	EventFetchFailed        EventType = "FetchFailed"
	EventLinkOpened         EventType = "LinkOpened"
	EventError              EventType = "Error"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QuerySettledEvent is emitted when the debounced query commits a new value
type QuerySettledEvent struct {
	Query string
}

func (e QuerySettledEvent) Type() EventType { return EventQuerySettled }

// FetchStartedEvent is emitted when a request for a settled query is issued
type FetchStartedEvent struct {
	Query string
	Seq   uint64
}

func (e FetchStartedEvent) Type() EventType { return EventFetchStarted }

// SuggestionsUpdatedEvent is emitted when a fetch result replaces the list
type SuggestionsUpdatedEvent struct {
	Query string
	Count int
}

func (e SuggestionsUpdatedEvent) Type() EventType { return EventSuggestionsUpdated }

// SuggestionsClearedEvent is emitted after the grace delay clears the list
type SuggestionsClearedEvent struct{}

func (e SuggestionsClearedEvent) Type() EventType { return EventSuggestionsCleared }

// StaleResponseEvent is emitted when a response arrives for a superseded query
type StaleResponseEvent struct {
	Query   string
	Current string
}

func (e StaleResponseEvent) Type() EventType { return EventStaleResponse }

// FetchFailedEvent is emitted when a fetch for the current query fails
type FetchFailedEvent struct {
	Query string
	Err   error
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }

// LinkOpenedEvent is emitted when the user opens a suggestion
type LinkOpenedEvent struct {
	Link string
	Err  error
}

func (e LinkOpenedEvent) Type() EventType { return EventLinkOpened }

// ErrorEvent is emitted when an error occurs outside of fetching
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
