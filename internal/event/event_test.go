package event

import "testing"

func TestDispatchOrderAndFiltering(t *testing.T) {
	d := NewDispatcher()
	var got []string

	d.Subscribe(ListenerFunc(func(e Event) { got = append(got, "first:"+string(e.Type)) }), WaveStarted, WaveEnded)
	d.Subscribe(ListenerFunc(func(e Event) { got = append(got, "second:"+string(e.Type)) }), WaveEnded)

	d.Dispatch(Event{Type: WaveStarted})
	d.Dispatch(Event{Type: WaveEnded})
	d.Dispatch(Event{Type: GameOver})

	want := []string{"first:WaveStarted", "first:WaveEnded", "second:WaveEnded"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, got[i], want[i])
		}
	}
}
