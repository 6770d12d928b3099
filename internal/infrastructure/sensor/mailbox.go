// Package sensor receives pose samples from an external detector and hands
// the most recent one to the game loop.
package sensor

import (
	"sync/atomic"

	"github.com/younwookim/polyhop/internal/domain/pose"
)

// Mailbox is a single-slot, last-write-wins buffer between the sensor
// goroutine and the simulation tick. Neither side ever blocks.
type Mailbox struct {
	slot      atomic.Pointer[pose.Sample]
	published atomic.Uint64
	closed    atomic.Bool
}

// NewMailbox creates an empty mailbox
func NewMailbox() *Mailbox {
	return &Mailbox{}
}

// Publish replaces any unread sample. Returns false once the mailbox is closed.
func (m *Mailbox) Publish(s *pose.Sample) bool {
	if s == nil || m.closed.Load() {
		return false
	}
	c := s.Clone()
	m.slot.Store(c)
	// A Close that ran between the check and the store must not leave c behind
	if m.closed.Load() {
		m.slot.CompareAndSwap(c, nil)
		return false
	}
	m.published.Add(1)
	return true
}

// Take returns the latest unread sample, or nil when nothing new arrived
func (m *Mailbox) Take() *pose.Sample {
	return m.slot.Swap(nil)
}

// Published returns how many samples were accepted in total
func (m *Mailbox) Published() uint64 {
	return m.published.Load()
}

// Close rejects further samples and drops the pending one
func (m *Mailbox) Close() {
	m.closed.Store(true)
	m.slot.Store(nil)
}
