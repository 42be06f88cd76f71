package duplicator

import "testing"

func TestStateStringDefaults(t *testing.T) {
	var d Duplicator
	if got := d.State().String(); got != "uninitialized" {
		t.Fatalf("zero-value state = %q, want uninitialized", got)
	}
}

func TestStateStringNamesAllStates(t *testing.T) {
	cases := map[State]string{
		StateUninitialized: "uninitialized",
		StateReady:          "ready",
		StateStale:          "stale",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}

func TestBoundsZeroBeforeInit(t *testing.T) {
	var d Duplicator
	if b := d.Bounds(); b.Width() != 0 || b.Height() != 0 {
		t.Fatalf("expected zero bounds before init, got %+v", b)
	}
}
