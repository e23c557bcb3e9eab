package event

import "testing"

type counter struct{ n int }

func (c *counter) OnEvent(Event) { c.n++ }

func TestDispatchOrderAndFilter(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.Subscribe(GoldChanged, ListenerFunc(func(e Event) { got = append(got, "a") }))
	d.Subscribe(GoldChanged, ListenerFunc(func(e Event) { got = append(got, "b") }))
	d.Subscribe(LivesChanged, ListenerFunc(func(e Event) { got = append(got, "lives") }))

	d.Dispatch(Event{Type: GoldChanged, Data: 10})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("got %v", got)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	first, second := &counter{}, &counter{}
	id := d.Subscribe(GameOver, first)
	d.Subscribe(GameOver, second)

	d.Dispatch(Event{Type: GameOver})
	d.Unsubscribe(GameOver, id)
	d.Dispatch(Event{Type: GameOver})

	if first.n != 1 || second.n != 2 {
		t.Fatalf("first=%d second=%d", first.n, second.n)
	}
	d.Unsubscribe(WaveChanged, id) // unknown type is a no-op
}
