package domain

// One recorded movement, load or unload.
// A movement has From != To; a load or unload happens in place (From == To).
// Loaded is the snapshot of packages held when the event was emitted.
type Event struct {
	Timestamp int
	CarrierID string
	From      Location
	Loaded    []string
	To        Location
	Unloaded  []string
}

// Append-only sequence of events in the order the scheduler produced them.
// Events are not sorted by time across carriers.
type EventLog struct {
	events []Event
}

func (l *EventLog) Append(e Event) {
	e.Loaded = cloneIDs(e.Loaded)
	e.Unloaded = cloneIDs(e.Unloaded)
	l.events = append(l.events, e)
}

func (l *EventLog) Len() int { return len(l.events) }

// Events returns a copy of the log.
func (l *EventLog) Events() []Event {
	out := make([]Event, len(l.events))
	for i, e := range l.events {
		e.Loaded = cloneIDs(e.Loaded)
		e.Unloaded = cloneIDs(e.Unloaded)
		out[i] = e
	}
	return out
}

func cloneIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
