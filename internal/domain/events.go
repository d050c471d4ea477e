package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged EventType = "SelectionChanged"
	EventLoadRequested    EventType = "LoadRequested"
	EventLoadStarted      EventType = "LoadStarted"
	EventTeamsLoaded      EventType = "TeamsLoaded"
	EventLoadFailed       EventType = "LoadFailed"
	EventRosterChanged    EventType = "RosterChanged"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted on every selection commit or clear.
// Zero-valued Team and Channel mean the selection was cleared.
type SelectionChangedEvent struct {
	Team    Team
	Channel Channel
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// LoadRequestedEvent is emitted to request a roster load
type LoadRequestedEvent struct{}

func (e LoadRequestedEvent) Type() EventType { return EventLoadRequested }

// LoadStartedEvent is emitted when a roster load begins
type LoadStartedEvent struct{}

func (e LoadStartedEvent) Type() EventType { return EventLoadStarted }

// TeamsLoadedEvent is emitted when a roster load completes. Teams replace
// the previous roster wholesale.
type TeamsLoadedEvent struct {
	Teams []Team
}

func (e TeamsLoadedEvent) Type() EventType { return EventTeamsLoaded }

// LoadFailedEvent is emitted when a roster load fails
type LoadFailedEvent struct {
	Err error
}

func (e LoadFailedEvent) Type() EventType { return EventLoadFailed }

// RosterChangedEvent is emitted when the roster source changes on disk
type RosterChangedEvent struct {
	Path string
}

func (e RosterChangedEvent) Type() EventType { return EventRosterChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	RosterPath string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
