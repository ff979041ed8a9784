package registry

import "github.com/google/uuid"

// EventType classifies registry change events.
type EventType int

const (
	// EventAdd is sent when an entry receives its graph and becomes usable.
	EventAdd EventType = iota + 1
	// EventRemove is sent after an entry is removed.
	EventRemove
	// EventRename is sent after an entry's title changes.
	EventRename
	// EventDefault is sent when the default entry changes.
	EventDefault
)

func (t EventType) String() string {
	switch t {
	case EventAdd:
		return "add"
	case EventRemove:
		return "remove"
	case EventRename:
		return "rename"
	case EventDefault:
		return "default"
	default:
		return "unknown"
	}
}

// Event is a single registry change. ID is uuid.Nil for EventDefault when
// the default selection was cleared.
type Event struct {
	Type EventType
	ID   uuid.UUID
}

// Subscribe returns a channel receiving every subsequent event and a
// cancel function that unsubscribes and closes the channel. buffer is the
// channel capacity; events arriving while it is full are dropped.
func (m *Manager) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 0 {
		buffer = 0
	}
	ch := make(chan Event, buffer)

	m.subMu.Lock()
	key := m.nextSub
	m.nextSub++
	m.subs[key] = ch
	m.subMu.Unlock()

	cancel := func() {
		m.subMu.Lock()
		defer m.subMu.Unlock()
		if c, ok := m.subs[key]; ok {
			delete(m.subs, key)
			close(c)
		}
	}

	return ch, cancel
}

// Dropped returns the number of events lost to full subscriber channels.
func (m *Manager) Dropped() uint64 {
	return m.dropped.Load()
}

// Close unsubscribes every subscriber and closes their channels.
func (m *Manager) Close() {
	m.subMu.Lock()
	defer m.subMu.Unlock()
	for key, ch := range m.subs {
		delete(m.subs, key)
		close(ch)
	}
}

func (m *Manager) emit(t EventType, id uuid.UUID) {
	ev := Event{Type: t, ID: id}

	m.subMu.Lock()
	defer m.subMu.Unlock()
	for _, ch := range m.subs {
		select {
		case ch <- ev:
		default:
			m.dropped.Add(1)
		}
	}
}
