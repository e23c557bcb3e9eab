// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// SubscriptionID identifies one Subscribe call.
type SubscriptionID int

type subscription struct {
	id       SubscriptionID
	listener Listener
}

// Dispatcher — диспетчер событий. Доставка синхронная, в порядке подписки.
type Dispatcher struct {
	listeners map[EventType][]subscription
	nextID    SubscriptionID
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscription),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) SubscriptionID {
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], subscription{id: d.nextID, listener: listener})
	return d.nextID
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, id SubscriptionID) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, s := range listeners {
			if s.id == id {
				d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, s := range listeners {
			s.listener.OnEvent(event)
		}
	}
}
