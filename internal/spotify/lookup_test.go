package spotify

import "testing"

func TestKeyName(t *testing.T) {
	cases := []struct {
		pitchClass int
		mode       int
		want       string
	}{
		{9, 0, "A Minor"},
		{0, 1, "C Major"},
		{10, 0, "A# Minor"},
		{11, 1, "B Major"},
		{-1, 1, ""},
		{12, 0, ""},
	}

	for _, c := range cases {
		if got := KeyName(c.pitchClass, c.mode); got != c.want {
			t.Errorf("KeyName(%d, %d) = %q, want %q", c.pitchClass, c.mode, got, c.want)
		}
	}
}

func TestAvailability(t *testing.T) {
	if NewLookup("", "").Available() {
		t.Error("lookup without credentials must be unavailable")
	}
	if NewLookup("id", "").Available() {
		t.Error("lookup with partial credentials must be unavailable")
	}
	if !NewLookup("id", "secret").Available() {
		t.Error("lookup with credentials should be available")
	}
}
