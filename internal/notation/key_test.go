package notation

import "testing"

func TestParseKeyMajorSpellings(t *testing.T) {
	for _, raw := range []string{"G Major", "G major", "g major", "G"} {
		key, ok := ParseKey(raw)
		if !ok {
			t.Errorf("ParseKey(%q) not ok", raw)
			continue
		}
		if key.Note != "G" || key.Mode != ModeMajor {
			t.Errorf("ParseKey(%q) = %v, want G maj", raw, key)
		}
	}
}

func TestParseKeyMinorSpellings(t *testing.T) {
	for _, raw := range []string{"A# Minor", "A#min", "A# min", "A#m", "a# minor"} {
		key, ok := ParseKey(raw)
		if !ok {
			t.Errorf("ParseKey(%q) not ok", raw)
			continue
		}
		if key.Note != "A#" || key.Mode != ModeMinor {
			t.Errorf("ParseKey(%q) = %v, want A# min", raw, key)
		}
	}
}

func TestParseKey(t *testing.T) {
	cases := []struct {
		raw  string
		want Key
		ok   bool
	}{
		{"Bb Minor", Key{"Bb", ModeMinor}, true},
		{"G♯ Minor", Key{"G#", ModeMinor}, true},
		{"E♭ major", Key{"Eb", ModeMajor}, true},
		{"  C  Major  ", Key{"C", ModeMajor}, true},
		{"Dm", Key{"D", ModeMinor}, true},
		{"F#", Key{"F#", ModeMajor}, true},
		{"", Key{}, false},
		{"128 BPM", Key{}, false},
		{"H Major", Key{}, false},
	}

	for _, c := range cases {
		got, ok := ParseKey(c.raw)
		if ok != c.ok {
			t.Errorf("ParseKey(%q) ok = %v, want %v", c.raw, ok, c.ok)
			continue
		}
		if ok && got != c.want {
			t.Errorf("ParseKey(%q) = %v, want %v", c.raw, got, c.want)
		}
	}
}

// Rendering a parsed key and parsing it again must land on the same key.
func TestParseKeyRoundTrip(t *testing.T) {
	for _, raw := range []string{"G Major", "A# Minor", "Bb Minor", "Dm", "F#", "e♭ min"} {
		first, ok := ParseKey(raw)
		if !ok {
			t.Fatalf("ParseKey(%q) not ok", raw)
		}
		second, ok := ParseKey(first.String())
		if !ok {
			t.Fatalf("ParseKey(%q) not ok", first.String())
		}
		if first != second {
			t.Errorf("round trip of %q: %v != %v", raw, first, second)
		}
	}
}
