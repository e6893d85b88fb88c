package event

import "testing"

type countingListener struct{ n int }

func (c *countingListener) OnEvent(Event) { c.n++ }

func TestDispatchAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &countingListener{}, &countingListener{}
	d.Subscribe(CellTriggered, a)
	d.Subscribe(CellTriggered, b)
	d.Subscribe(TilePlaced, a)

	d.Dispatch(Event{Type: CellTriggered})
	d.Dispatch(Event{Type: TilePlaced})
	if a.n != 2 || b.n != 1 {
		t.Fatalf("a=%d b=%d", a.n, b.n)
	}

	d.Unsubscribe(CellTriggered, a)
	d.Dispatch(Event{Type: CellTriggered})
	if a.n != 2 || b.n != 2 {
		t.Fatalf("after unsubscribe a=%d b=%d", a.n, b.n)
	}
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	var got CellData
	d.Subscribe(CellTriggered, ListenerFunc(func(e Event) { got = e.Data.(CellData) }))
	d.Dispatch(Event{Type: CellTriggered, Data: CellData{Distance: 3}})
	if got.Distance != 3 {
		t.Fatalf("got %+v", got)
	}
}
