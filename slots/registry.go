// Package slots tracks which connected controllers occupy which logical slots.
package slots

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/padservo/padservo/controller"
)

// MaxSlots is the number of controllers tracked at once.
const MaxSlots = 4

var (
	ErrSlotsFull         = errors.New("no empty slot")
	ErrNotRegistered     = errors.New("controller not registered")
	ErrAlreadyRegistered = errors.New("controller already registered")
)

// Entry is an occupied slot.
type Entry struct {
	Index  int
	Handle controller.Handle
}

// Registry is a fixed-capacity slot table. Entries are non-owning: the
// registry never closes or releases a handle.
type Registry struct {
	mutex  sync.Mutex
	slots  [MaxSlots]controller.Handle
	logger *slog.Logger
}

// New creates an empty Registry. A nil logger discards registry logs.
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{logger: logger}
}

// Connect claims the lowest empty slot for h and returns its index.
// When every slot is taken it returns ErrSlotsFull and h stays untracked.
func (r *Registry) Connect(h controller.Handle) (int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, s := range r.slots {
		if s != nil && s.ID() == h.ID() {
			return i, ErrAlreadyRegistered
		}
	}
	for i, s := range r.slots {
		if s == nil {
			r.slots[i] = h
			p := h.Properties()
			r.logger.Info("controller connected",
				"index", i,
				"id", h.ID(),
				"model", p.Model,
				"vid", hex16(p.VendorID),
				"pid", hex16(p.ProductID))
			return i, nil
		}
	}
	r.logger.Warn("controller connected, but no empty slot", "id", h.ID())
	return -1, ErrSlotsFull
}

// Disconnect clears the slot holding h and returns its index, or
// ErrNotRegistered if h was never tracked.
func (r *Registry) Disconnect(h controller.Handle) (int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, s := range r.slots {
		if s != nil && s.ID() == h.ID() {
			r.slots[i] = nil
			r.logger.Info("controller disconnected", "index", i, "id", h.ID())
			return i, nil
		}
	}
	r.logger.Warn("controller disconnected, but not found in slots", "id", h.ID())
	return -1, ErrNotRegistered
}

// Clear empties slot i. Clearing an empty or out-of-range slot does nothing.
func (r *Registry) Clear(i int) {
	if i < 0 || i >= MaxSlots {
		return
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.slots[i] = nil
}

// Get returns the handle in slot i, or nil.
func (r *Registry) Get(i int) controller.Handle {
	if i < 0 || i >= MaxSlots {
		return nil
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.slots[i]
}

// Occupied returns a copy of the occupied slots in ascending index order.
func (r *Registry) Occupied() []Entry {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	out := make([]Entry, 0, MaxSlots)
	for i, s := range r.slots {
		if s != nil {
			out = append(out, Entry{Index: i, Handle: s})
		}
	}
	return out
}

// Len returns the number of occupied slots.
func (r *Registry) Len() int {
	return len(r.Occupied())
}

// Capacity returns MaxSlots.
func (r *Registry) Capacity() int {
	return MaxSlots
}

func hex16(v uint16) string {
	return fmt.Sprintf("0x%04x", v)
}
