package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyFromTcell(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Key
		ok   bool
	}{
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), KeyEnter, true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), KeySpace, true},
		{"upper case letter", tcell.NewEventKey(tcell.KeyRune, 'B', tcell.ModShift), "b", true},
		{"digit", tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone), "3", true},
		{"unbound", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyFromTcell(tt.ev)
			if got != tt.want || ok != tt.ok {
				t.Errorf("KeyFromTcell() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestTermCollectorClicks(t *testing.T) {
	c := NewTermCollector(func(col, row int) (float64, float64) {
		return float64(col) * 10, float64(row) * 20
	})

	c.Add(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone))
	c.Add(tcell.NewEventMouse(5, 4, tcell.Button1, tcell.ModNone)) // перетаскивание
	c.Add(tcell.NewEventMouse(5, 4, tcell.ButtonNone, tcell.ModNone))
	c.Add(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))

	f := c.Flush()
	if len(f.Clicks) != 1 || f.Clicks[0] != (Point{X: 30, Y: 80}) {
		t.Errorf("Clicks = %v, want one click at (30, 80)", f.Clicks)
	}
	if f.Pointer != (Point{X: 50, Y: 80}) {
		t.Errorf("Pointer = %v, want (50, 80)", f.Pointer)
	}
	if !f.Has(DefaultBindings, ActionStartWave) {
		t.Error("'w' did not map to ActionStartWave")
	}

	next := c.Flush()
	if len(next.Clicks) != 0 || len(next.Keys) != 0 {
		t.Errorf("Flush() did not reset the frame: %+v", next)
	}
	if next.Pointer != f.Pointer {
		t.Error("Flush() lost the pointer position")
	}
}

func TestFrameActionsOrder(t *testing.T) {
	f := Frame{Keys: []Key{"b", "1", KeySpace, "x"}}
	got := f.Actions(DefaultBindings)
	want := []Action{ActionBuyMissile, ActionToggleTargeting}
	if len(got) != len(want) {
		t.Fatalf("Actions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if !f.Pressed("1") || f.Pressed("2") {
		t.Error("Pressed() mismatch")
	}
}
