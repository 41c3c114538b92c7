package toast

import (
	"context"
	"sync"
	"time"

	"github.com/unicsmcr/hs_dashboard/utils"
	"go.uber.org/zap"
)

type hubEntry struct {
	notifier *Notifier
	lastSeen time.Time
}

// Hub keeps one Notifier per visitor
type Hub struct {
	logger       *zap.Logger
	timeProvider utils.TimeProvider

	mu      sync.Mutex
	entries map[string]*hubEntry
}

// NewHub creates an empty Hub
func NewHub(logger *zap.Logger, timeProvider utils.TimeProvider) *Hub {
	return &Hub{
		logger:       logger,
		timeProvider: timeProvider,
		entries:      map[string]*hubEntry{},
	}
}

// Notifier returns the notifier of the visitor with the given key, creating it if needed
func (h *Hub) Notifier(key string) *Notifier {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry, ok := h.entries[key]
	if !ok {
		entry = &hubEntry{
			notifier: NewNotifier(),
		}
		h.entries[key] = entry
	}
	entry.lastSeen = h.timeProvider.Now()

	return entry.notifier
}

// Len returns the number of notifiers in the hub
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Prune removes the notifiers nobody listens to that were not used for longer than maxIdle.
// Returns the number of removed notifiers.
func (h *Hub) Prune(maxIdle time.Duration) int {
	now := h.timeProvider.Now()

	h.mu.Lock()
	defer h.mu.Unlock()

	pruned := 0
	for key, entry := range h.entries {
		if entry.notifier.Listeners() == 0 && now.Sub(entry.lastSeen) > maxIdle {
			delete(h.entries, key)
			pruned++
		}
	}

	return pruned
}

// RunPruner prunes the hub every interval until ctx is done
func (h *Hub) RunPruner(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if pruned := h.Prune(maxIdle); pruned > 0 {
				h.logger.Debug("pruned idle toast notifiers", zap.Int("count", pruned), zap.Int("remaining", h.Len()))
			}
		case <-ctx.Done():
			return
		}
	}
}
