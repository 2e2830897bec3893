package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionNone)
	f.Set(ActionLeft)
	f.Set(ActionUp)

	got := f.Actions()
	expected := []Action{ActionUp, ActionLeft, ActionUp}
	if len(got) != len(expected) {
		t.Fatalf("Actions() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionDown)

	f.Clear()
	if f.Len() != 0 || len(f.Actions()) != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", f.Len())
	}

	f.Set(ActionUp)
	if got := f.Actions(); len(got) != 1 || got[0] != ActionUp {
		t.Errorf("Actions() after reuse = %v, expected [Up]", got)
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		dir    Direction
		ok     bool
	}{
		{ActionUp, DirUp, true},
		{ActionDown, DirDown, true},
		{ActionLeft, DirLeft, true},
		{ActionRight, DirRight, true},
		{ActionQuit, 0, false},
		{ActionNone, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			d, ok := tc.action.Direction()
			if ok != tc.ok || (ok && d != tc.dir) {
				t.Errorf("Direction() = (%v, %v), expected (%v, %v)", d, ok, tc.dir, tc.ok)
			}
		})
	}
}
