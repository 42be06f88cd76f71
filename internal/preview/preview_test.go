package preview

import "testing"

func TestModeStringNamesAllModes(t *testing.T) {
	cases := map[Mode]string{
		ModeFullDesktop:  "full-desktop",
		ModeRegion:       "region",
		ModeWindowPicker: "window-picker",
		Mode(99):         "unknown",
	}
	for mode, want := range cases {
		if got := mode.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, want %q", mode, got, want)
		}
	}
}
