package analysis

import "testing"

func TestParseTempoOutput(t *testing.T) {
	cases := []struct {
		out  string
		want string
	}{
		{"119.674418 bpm", "120"},
		{"128.000000 bpm\n", "128"},
		{"99.4 bpm", "99"},
		{"", ""},
		{"no tempo found", ""},
		{"-1.0 bpm", ""},
	}

	for _, c := range cases {
		if got := ParseTempoOutput(c.out); got != c.want {
			t.Errorf("ParseTempoOutput(%q) = %q, want %q", c.out, got, c.want)
		}
	}
}

func TestParseKeyOutput(t *testing.T) {
	cases := []struct {
		out  string
		want string
	}{
		{"Abm\n", "Abm"},
		{"C", "C"},
		{"some banner line\nF# Minor\n", "F# Minor"},
		{"   ", ""},
	}

	for _, c := range cases {
		if got := ParseKeyOutput(c.out); got != c.want {
			t.Errorf("ParseKeyOutput(%q) = %q, want %q", c.out, got, c.want)
		}
	}
}

func TestAnalyzerName(t *testing.T) {
	if NewAnalyzer().Name() != "audio-analysis" {
		t.Errorf("Name() = %q", NewAnalyzer().Name())
	}
}
