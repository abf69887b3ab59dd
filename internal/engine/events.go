package engine

type EventType int

const (
	EventJump EventType = iota
	EventLanded
	EventColumnDrawn
	EventRecycled
)

func (t EventType) String() string {
	switch t {
	case EventJump:
		return "jump"
	case EventLanded:
		return "landed"
	case EventColumnDrawn:
		return "column"
	case EventRecycled:
		return "recycled"
	}
	return "unknown"
}

type Event struct {
	Type   EventType
	Frame  uint64
	Slot   int // obstacle events only
	Column int // EventColumnDrawn only
}

type EventHandler func(Event)

// EventBus fans events out synchronously to subscribers. A nil bus drops
// everything.
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

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventJump; t <= EventRecycled; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
