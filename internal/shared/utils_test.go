package shared

import "testing"

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Song Title  (feat. Artist)", "Song Title (feat Artist)"},
		{"Track / Name?", "Track Name"},
		{"  spaced   out  ", "spaced out"},
		{"normal-name_1 (mix)", "normal-name_1 (mix)"},
		{"***", "yt_download"},
		{"", "yt_download"},
	}

	for _, c := range cases {
		if got := SanitizeFileName(c.in); got != c.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("short", 10); got != "short" {
		t.Errorf("TruncateString(short, 10) = %q", got)
	}
	if got := TruncateString("a long string that keeps going", 10); got != "a long ..." {
		t.Errorf("TruncateString long = %q", got)
	}
}

func TestWarningCollector(t *testing.T) {
	wc := NewWarningCollector(true)
	if wc.HasWarnings() {
		t.Error("new collector should have no warnings")
	}

	wc.AddLookupWarning("tunebat", "Test Track", "timeout")
	wc.AddAnalysisWarning("aubio", "/tmp/test.wav", "exit status 1")

	if wc.GetWarningCount() != 2 {
		t.Errorf("GetWarningCount() = %d, want 2", wc.GetWarningCount())
	}

	grouped := wc.GetWarningsByType()
	if len(grouped[LookupWarning]) != 1 {
		t.Errorf("expected 1 lookup warning, got %d", len(grouped[LookupWarning]))
	}
	if len(grouped[AnalysisWarning]) != 1 {
		t.Errorf("expected 1 analysis warning, got %d", len(grouped[AnalysisWarning]))
	}
}

func TestWarningCollectorDisabled(t *testing.T) {
	wc := NewWarningCollector(false)
	wc.AddLookupWarning("tunebat", "Test Track", "timeout")
	if wc.HasWarnings() {
		t.Error("disabled collector should stay empty")
	}
}
