package system

// DefaultMovementLogSize is how many entries the HUD shows
const DefaultMovementLogSize = 10

// MovementEntry is one recognised change of command
type MovementEntry struct {
	Tick       uint64
	Label      IntentLabel
	Confidence float64
}

// MovementLog keeps the most recent command changes, newest first.
// Consecutive ticks with the same label collapse into one entry.
type MovementLog struct {
	entries []MovementEntry
	size    int
}

// NewMovementLog creates a log holding at most size entries
func NewMovementLog(size int) *MovementLog {
	if size <= 0 {
		size = DefaultMovementLogSize
	}
	return &MovementLog{
		entries: make([]MovementEntry, 0, size),
		size:    size,
	}
}

// Record adds the intent if its label differs from the latest entry.
// Returns true if an entry was added.
func (l *MovementLog) Record(tick uint64, intent Intent) bool {
	label := intent.Label()
	if len(l.entries) > 0 && l.entries[0].Label == label {
		return false
	}

	entry := MovementEntry{Tick: tick, Label: label, Confidence: intent.Confidence}
	if len(l.entries) < l.size {
		l.entries = append(l.entries, MovementEntry{})
	}
	copy(l.entries[1:], l.entries[:len(l.entries)-1])
	l.entries[0] = entry
	return true
}

// Entries returns a copy of the log, newest first
func (l *MovementLog) Entries() []MovementEntry {
	out := make([]MovementEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries
func (l *MovementLog) Len() int {
	return len(l.entries)
}

// Reset clears the log
func (l *MovementLog) Reset() {
	l.entries = l.entries[:0]
}
