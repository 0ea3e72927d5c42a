// Package report renders the per-track summary: a markdown file next to the
// audio and a colored terminal digest.
package report

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/iremlopsum/yt-stem-splitter/internal/resolve"
	"github.com/iremlopsum/yt-stem-splitter/internal/shared"
)

// Track bundles everything the report needs about one processed track.
type Track struct {
	Title     string
	URL       string
	AudioFile string // basename of the downloaded audio file
	Info      resolve.TrackInfo
}

// VerifyURL returns a web search the user can open to double-check the
// detected BPM/key by hand.
func (t Track) VerifyURL() string {
	q := url.Values{"q": {t.Title + " bpm key"}}
	return "https://www.google.com/search?" + q.Encode()
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// RenderMarkdown produces the markdown summary document.
func RenderMarkdown(t Track, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t.Title)
	fmt.Fprintf(&b, "- URL: %s\n", t.URL)
	fmt.Fprintf(&b, "- Downloaded WAV: %s\n", t.AudioFile)
	fmt.Fprintf(&b, "- Detected BPM: %s\n", orUnknown(t.Info.BPM))
	fmt.Fprintf(&b, "- Detected Key: %s\n", orUnknown(t.Info.Key))
	if t.Info.Camelot != "" {
		fmt.Fprintf(&b, "- Camelot: %s\n", t.Info.Camelot)
	}
	if len(t.Info.Sources) > 0 {
		b.WriteString("- Detection Method:\n")
		for _, source := range t.Info.Sources {
			fmt.Fprintf(&b, "  - %s\n", source)
		}
	}
	fmt.Fprintf(&b, "\n- Verify at: %s\n", t.VerifyURL())
	fmt.Fprintf(&b, "\n_Generated: %s_\n", now.Format("2006-01-02T15:04:05"))

	return b.String()
}

// WriteMarkdown writes the markdown summary to path.
func WriteMarkdown(path string, t Track) error {
	if err := os.WriteFile(path, []byte(RenderMarkdown(t, time.Now())), 0644); err != nil {
		return fmt.Errorf("failed to write track summary: %w", err)
	}
	return nil
}

// PrintSummary prints the track digest to the terminal.
func PrintSummary(t Track, targetDir string) {
	divider := strings.Repeat("=", 60)

	fmt.Println()
	shared.ColorInfo.Println(divider)
	shared.ColorInfo.Println("🎵  TRACK INFORMATION")
	shared.ColorInfo.Println(divider)
	fmt.Printf("Song:     %s\n", t.Title)
	fmt.Printf("BPM:      %s\n", orUnknown(t.Info.BPM))
	fmt.Printf("Key:      %s\n", orUnknown(t.Info.Key))
	if t.Info.Camelot != "" {
		fmt.Printf("Camelot:  %s\n", t.Info.Camelot)
	}
	if len(t.Info.Sources) > 0 {
		fmt.Printf("Source:   %s\n", strings.Join(t.Info.Sources, ", "))
	}
	shared.ColorInfo.Println(divider)
	shared.ColorSuccess.Printf("\n✅ Done! Files saved to:\n  %s\n\n", targetDir)
}
