package toast

import (
	"context"
	"sync"

	"github.com/unicsmcr/hs_dashboard/entities"
	"go.uber.org/atomic"
)

// Sender publishes toast messages to a visitor
type Sender interface {
	SendMessage(text string, toastType entities.ToastType)
}

// Notifier holds the toast message waiting to be displayed and fans out
// published messages to the displays listening to it.
// There is no backlog: a newer message replaces one that was not delivered yet.
type Notifier struct {
	mu          sync.Mutex
	pending     *entities.ToastMessage
	subscribers map[chan entities.ToastMessage]struct{}
	displays    map[*Display]struct{}

	listeners atomic.Int32
}

// NewNotifier creates a Notifier with no pending message
func NewNotifier() *Notifier {
	return &Notifier{
		subscribers: map[chan entities.ToastMessage]struct{}{},
		displays:    map[*Display]struct{}{},
	}
}

// SendMessage publishes a message with the given text and type
func (n *Notifier) SendMessage(text string, toastType entities.ToastType) {
	n.Publish(entities.ToastMessage{
		Text: text,
		Type: toastType,
	})
}

// Publish stores the message as the current one and signals the listeners.
// When nobody listens the message stays pending and is delivered to the next listener.
func (n *Notifier) Publish(message entities.ToastMessage) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.subscribers) == 0 {
		n.pending = &message
		return
	}

	n.pending = nil
	for subscriber := range n.subscribers {
		// subscribers are buffered with a capacity of 1 and only written to under
		// the lock, so dropping the undelivered message makes room for the new one
		select {
		case <-subscriber:
		default:
		}
		subscriber <- message
	}
}

// Flash stores the message for the next listener without signalling the listeners attached now.
// Messages published while handling a page request are flashed: the page listening at that
// moment is the one being left, the page rendered next picks the message up.
func (n *Notifier) Flash(message entities.ToastMessage) {
	n.mu.Lock()
	n.pending = &message
	n.mu.Unlock()
}

// FlashSender returns a Sender flashing its messages
func (n *Notifier) FlashSender() Sender {
	return flashSender{notifier: n}
}

type flashSender struct {
	notifier *Notifier
}

func (s flashSender) SendMessage(text string, toastType entities.ToastType) {
	s.notifier.Flash(entities.ToastMessage{
		Text: text,
		Type: toastType,
	})
}

// Listen returns the messages published from now on, starting with the pending one if any.
// The channel is closed once ctx is done. Listen can be called again to restart listening.
func (n *Notifier) Listen(ctx context.Context) <-chan entities.ToastMessage {
	subscriber := make(chan entities.ToastMessage, 1)

	n.mu.Lock()
	n.subscribers[subscriber] = struct{}{}
	n.listeners.Inc()
	if n.pending != nil {
		subscriber <- *n.pending
		n.pending = nil
	}
	n.mu.Unlock()

	go func() {
		<-ctx.Done()

		n.mu.Lock()
		delete(n.subscribers, subscriber)
		n.listeners.Dec()
		close(subscriber)
		n.mu.Unlock()
	}()

	return subscriber
}

// Listeners returns the number of active listeners
func (n *Notifier) Listeners() int {
	return int(n.listeners.Load())
}

// Dismiss drops the pending message and hides the displays attached to the notifier
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	n.pending = nil
	displays := make([]*Display, 0, len(n.displays))
	for display := range n.displays {
		displays = append(displays, display)
	}
	n.mu.Unlock()

	for _, display := range displays {
		display.Hide()
	}
}

func (n *Notifier) attach(display *Display) {
	n.mu.Lock()
	n.displays[display] = struct{}{}
	n.mu.Unlock()
}

func (n *Notifier) detach(display *Display) {
	n.mu.Lock()
	delete(n.displays, display)
	n.mu.Unlock()
}
