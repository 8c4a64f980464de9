package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSlideChanged    EventType = "SlideChanged"
	EventItemClicked     EventType = "ItemClicked"
	EventSwipeStarted    EventType = "SwipeStarted"
	EventSwipeEnded      EventType = "SwipeEnded"
	EventAutoPlayStarted EventType = "AutoPlayStarted"
	EventAutoPlayStopped EventType = "AutoPlayStopped"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SlideChangedEvent is emitted when user navigation moves the slider
type SlideChangedEvent struct {
	Index int
	Page  int
}

func (e SlideChangedEvent) Type() EventType { return EventSlideChanged }

// ItemClickedEvent is emitted when an item is activated and the click was not swallowed
type ItemClickedEvent struct {
	Index int
	Item  Item
}

func (e ItemClickedEvent) Type() EventType { return EventItemClicked }

// SwipeStartedEvent is emitted when a drag or touch begins
type SwipeStartedEvent struct{}

func (e SwipeStartedEvent) Type() EventType { return EventSwipeStarted }

// SwipeEndedEvent is emitted when a drag or touch resolves
type SwipeEndedEvent struct{}

func (e SwipeEndedEvent) Type() EventType { return EventSwipeEnded }

// AutoPlayStartedEvent is emitted when the auto-advance timer starts
type AutoPlayStartedEvent struct {
	IntervalMS int
}

func (e AutoPlayStartedEvent) Type() EventType { return EventAutoPlayStarted }

// AutoPlayStoppedEvent is emitted when the auto-advance timer is cancelled
type AutoPlayStoppedEvent struct{}

func (e AutoPlayStoppedEvent) Type() EventType { return EventAutoPlayStopped }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path  string
	Items int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
