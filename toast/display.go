package toast

import (
	"context"
	"sync"
	"time"

	"github.com/unicsmcr/hs_dashboard/entities"
	"github.com/unicsmcr/hs_dashboard/utils"
	"go.uber.org/zap"
)

// AnimationState is the CSS animation state of the toast
type AnimationState string

const (
	AnimationIn  AnimationState = "in"
	AnimationOut AnimationState = "out"
)

// State is what the display currently shows
type State struct {
	Animation AnimationState         `json:"animation"`
	Message   *entities.ToastMessage `json:"message,omitempty"`
}

// Display shows the messages of a Notifier one at a time.
// A shown message is hidden after hideAfter or when dismissed; a new message
// replaces the visible one and re-arms a fresh hide timer.
type Display struct {
	logger       *zap.Logger
	timeProvider utils.TimeProvider
	hideAfter    time.Duration

	mu         sync.Mutex
	state      State
	hideTimer  utils.Timer
	generation uint64
	notifier   *Notifier
	cancel     context.CancelFunc
	done       chan struct{}
	closed     bool
	updates    chan State
}

// NewDisplay creates a hidden Display
func NewDisplay(logger *zap.Logger, timeProvider utils.TimeProvider, hideAfter time.Duration) *Display {
	return &Display{
		logger:       logger,
		timeProvider: timeProvider,
		hideAfter:    hideAfter,
		state:        State{Animation: AnimationOut},
		updates:      make(chan State, 1),
	}
}

// Listen shows the messages published by the notifier until ctx is done or the display is closed.
// A display listens to a single notifier, subsequent calls are ignored.
func (d *Display) Listen(ctx context.Context, notifier *Notifier) {
	d.mu.Lock()
	if d.closed || d.cancel != nil {
		d.mu.Unlock()
		d.logger.Debug("toast display is already listening or closed")
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.notifier = notifier
	d.done = make(chan struct{})
	done := d.done
	d.mu.Unlock()

	notifier.attach(d)
	messages := notifier.Listen(ctx)

	go func() {
		defer close(done)
		for message := range messages {
			d.show(message)
		}
	}()
}

// State returns what the display currently shows
func (d *Display) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Updates returns the successive states of the display. Only the latest
// state is kept when the reader falls behind. Closed by Close.
func (d *Display) Updates() <-chan State {
	return d.updates
}

// Hide hides the toast and cancels the pending hide timer
func (d *Display) Hide() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.hide()
}

// Close stops listening and releases the pending hide timer
func (d *Display) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.clearTimeout()
	cancel, done, notifier := d.cancel, d.done, d.notifier
	d.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
		notifier.detach(d)
	}

	d.mu.Lock()
	close(d.updates)
	d.mu.Unlock()
}

func (d *Display) show(message entities.ToastMessage) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	d.clearTimeout()
	d.state = State{
		Animation: AnimationIn,
		Message:   &message,
	}
	d.hideWithinTimeout()
	d.emit()
}

// must be called with d.mu held
func (d *Display) hide() {
	d.clearTimeout()
	d.state.Animation = AnimationOut
	d.emit()
}

// must be called with d.mu held
func (d *Display) hideWithinTimeout() {
	generation := d.generation
	d.hideTimer = d.timeProvider.AfterFunc(d.hideAfter, func() {
		d.mu.Lock()
		defer d.mu.Unlock()

		// the timer may fire while being replaced or after the display was closed
		if d.closed || d.generation != generation {
			return
		}
		d.hideTimer = nil
		d.hide()
	})
}

// must be called with d.mu held
func (d *Display) clearTimeout() {
	d.generation++
	if d.hideTimer != nil {
		d.hideTimer.Stop()
		d.hideTimer = nil
	}
}

// must be called with d.mu held
func (d *Display) emit() {
	select {
	case <-d.updates:
	default:
	}
	d.updates <- d.state
}
