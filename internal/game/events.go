package game

type EventType int

const (
	EventParticleEmitted EventType = iota
	EventParticleExpired
	EventPoolSaturated
)

type Event struct {
	Type EventType
	X, Y float64
	Slot int // -1 when no slot is involved
}

type EventHandler func(Event)

// EventBus dispatches synchronously on the emitting goroutine.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
