package report

import (
	"strings"
	"testing"
	"time"

	"github.com/iremlopsum/yt-stem-splitter/internal/resolve"
)

func TestRenderMarkdown(t *testing.T) {
	track := Track{
		Title:     "Test Song",
		URL:       "https://youtube.com/watch?v=abc",
		AudioFile: "Test Song.wav",
		Info: resolve.TrackInfo{
			BPM:     "128",
			Key:     "A Minor",
			Camelot: "8A",
			Sources: []string{"tunebat"},
		},
	}

	md := RenderMarkdown(track, time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC))

	for _, want := range []string{
		"# Test Song",
		"- URL: https://youtube.com/watch?v=abc",
		"- Downloaded WAV: Test Song.wav",
		"- Detected BPM: 128",
		"- Detected Key: A Minor",
		"- Camelot: 8A",
		"  - tunebat",
		"Test+Song+bpm+key",
		"_Generated: 2026-08-27T12:00:00_",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestRenderMarkdownUnknownFields(t *testing.T) {
	track := Track{Title: "Mystery", URL: "u", AudioFile: "m.wav"}
	md := RenderMarkdown(track, time.Now())

	if !strings.Contains(md, "- Detected BPM: Unknown") {
		t.Error("absent BPM should render as Unknown")
	}
	if !strings.Contains(md, "- Detected Key: Unknown") {
		t.Error("absent key should render as Unknown")
	}
	if strings.Contains(md, "Camelot") {
		t.Error("absent camelot should be omitted entirely")
	}
	if strings.Contains(md, "Detection Method") {
		t.Error("empty sources should omit the detection method section")
	}
}
