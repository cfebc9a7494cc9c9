package scheduling

import (
	"fmt"
	"sync"
	"time"
)

// SlotIndex tracks which (doctor, date, time-slot) triples are occupied. It
// is a derived cache over the appointment table: the scheduling core occupies
// a key on every booking and releases it on cancellation only — a completed
// appointment keeps its key, since that slot was used and is not rebookable.
//
// The index carries its own lock so advisory availability reads are safe
// without the core's booking mutex. Such reads are not reservations: only the
// core's check-and-mutate sequence can claim a slot.
type SlotIndex struct {
	mu       sync.RWMutex
	occupied map[string]struct{}
}

func NewSlotIndex() *SlotIndex {
	return &SlotIndex{occupied: make(map[string]struct{})}
}

func slotKey(doctorID string, date time.Time, timeSlot string) string {
	return fmt.Sprintf("%s|%s|%s", doctorID, date.Format(DateLayout), timeSlot)
}

// Available reports whether the triple has no occupied entry.
func (i *SlotIndex) Available(doctorID string, date time.Time, timeSlot string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()

	_, taken := i.occupied[slotKey(doctorID, date, timeSlot)]
	return !taken
}

// Occupy marks the triple as booked. Idempotent.
func (i *SlotIndex) Occupy(doctorID string, date time.Time, timeSlot string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.occupied[slotKey(doctorID, date, timeSlot)] = struct{}{}
}

// Release frees the triple. Idempotent.
func (i *SlotIndex) Release(doctorID string, date time.Time, timeSlot string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	delete(i.occupied, slotKey(doctorID, date, timeSlot))
}

// Len returns the number of occupied slots.
func (i *SlotIndex) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return len(i.occupied)
}
