// Package notify delivers transient, non-blocking user notifications — the
// terminal analog of the dashboard's toast messages. The request gateway is
// the only component that notifies on failures; callers above it only ever
// see the returned error.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Kind classifies a notification.
type Kind int

const (
	// KindError is a failure the user should see but can recover from locally
	KindError Kind = iota
	// KindWarn is a degraded-mode notice
	KindWarn
	// KindInfo is an informational notice
	KindInfo
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindWarn:
		return "warn"
	case KindInfo:
		return "info"
	default:
		return "info"
	}
}

// Notifier receives user-facing notifications.
type Notifier interface {
	Notify(kind Kind, message string)
}

// Styles
var (
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

// Terminal renders notifications to a writer, one styled line each.
type Terminal struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTerminal creates a Terminal notifier writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

// Notify implements Notifier.
func (t *Terminal) Notify(kind Kind, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var line string
	switch kind {
	case KindError:
		line = errorStyle.Render("✗ " + message)
	case KindWarn:
		line = warnStyle.Render("! " + message)
	default:
		line = infoStyle.Render("• " + message)
	}
	fmt.Fprintln(t.w, line)
}

// Event is one recorded notification.
type Event struct {
	Kind    Kind
	Message string
}

// Recorder captures notifications for tests.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Notify implements Notifier.
func (r *Recorder) Notify(kind Kind, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Kind: kind, Message: message})
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Discard drops every notification.
type Discard struct{}

// Notify implements Notifier.
func (Discard) Notify(Kind, string) {}
