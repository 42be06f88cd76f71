package wincapture

import "testing"

func TestCaptureRejectsZeroWindowHandle(t *testing.T) {
	_, err := Capture(0, 0, 0)
	if err == nil {
		t.Fatal("expected error for a zero window handle")
	}
}
