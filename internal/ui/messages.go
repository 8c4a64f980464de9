package ui

import (
	"spinslider/internal/autoplay"
	"spinslider/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// AutoPlayTickMsg carries an auto-advance tick from the timer goroutine
type AutoPlayTickMsg struct {
	Tick autoplay.Tick
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
