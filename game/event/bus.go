// Package event dispatches game events to handlers registered per kind.
// Handlers run synchronously on the caller's goroutine in registration order.
package event

// Kind identifies what happened
type Kind int

const (
	FoodEaten Kind = iota
	GameOver
)

func (k Kind) String() string {
	switch k {
	case FoodEaten:
		return "food_eaten"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is passed to every handler of its Kind
type Event struct {
	Kind  Kind
	Tick  uint64
	Score int
}

type Handler func(Event)

// Subscription identifies a registered handler so it can be removed
type Subscription struct {
	kind Kind
	id   uint64
}

type entry struct {
	id      uint64
	handler Handler
}

type Bus struct {
	handlers map[Kind][]entry
	nextID   uint64
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Kind][]entry),
	}
}

// Register appends h to the handlers of kind
func (b *Bus) Register(kind Kind, h Handler) Subscription {
	b.nextID++
	b.handlers[kind] = append(b.handlers[kind], entry{id: b.nextID, handler: h})
	return Subscription{kind: kind, id: b.nextID}
}

// Unregister removes the handler behind sub; unknown subscriptions are ignored
func (b *Bus) Unregister(sub Subscription) {
	entries := b.handlers[sub.kind]
	for i, e := range entries {
		if e.id == sub.id {
			b.handlers[sub.kind] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// Notify calls every handler registered for ev.Kind
func (b *Bus) Notify(ev Event) {
	for _, e := range b.handlers[ev.Kind] {
		e.handler(ev)
	}
}

// Len returns the number of handlers registered for kind
func (b *Bus) Len(kind Kind) int {
	return len(b.handlers[kind])
}
