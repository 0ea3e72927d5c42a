// Package analysis derives BPM and key from a local audio file by shelling
// out to signal-processing tools (aubio for tempo, keyfinder-cli for key).
package analysis

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iremlopsum/yt-stem-splitter/internal/resolve"
	"github.com/iremlopsum/yt-stem-splitter/internal/shared"
)

const (
	tempoTool = "aubio"
	keyTool   = "keyfinder-cli"
)

// Analyzer is a resolve.Analyzer wrapping the external analysis tools.
type Analyzer struct{}

// NewAnalyzer builds the local audio analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

func (a *Analyzer) Name() string { return "audio-analysis" }

// Available reports whether at least one analysis tool is installed.
func (a *Analyzer) Available() bool {
	return shared.CommandAvailable(tempoTool) || shared.CommandAvailable(keyTool)
}

// Analyze runs whichever tools are installed against the audio file. A tool
// that fails leaves its field absent; an error is returned only when no tool
// produced anything.
func (a *Analyzer) Analyze(ctx context.Context, audioPath string) (resolve.RawMetadata, error) {
	var meta resolve.RawMetadata
	var firstErr error

	if shared.CommandAvailable(tempoTool) {
		out, err := shared.RunCommandOutput(ctx, tempoTool, "tempo", audioPath)
		if err != nil {
			firstErr = err
		} else {
			meta.BPM = ParseTempoOutput(out)
		}
	}

	if shared.CommandAvailable(keyTool) {
		out, err := shared.RunCommandOutput(ctx, keyTool, audioPath)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
		} else {
			meta.Key = ParseKeyOutput(out)
		}
	}

	if meta.Empty() && firstErr != nil {
		return meta, fmt.Errorf("audio analysis of %s: %w", audioPath, firstErr)
	}
	return meta, nil
}

// ParseTempoOutput extracts a rounded BPM string from `aubio tempo` output,
// which looks like "119.674418 bpm". Returns "" when no tempo is present.
func ParseTempoOutput(out string) string {
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		tempo, err := strconv.ParseFloat(fields[0], 64)
		if err != nil || tempo <= 0 {
			continue
		}
		return strconv.Itoa(int(math.Round(tempo)))
	}
	return ""
}

// ParseKeyOutput extracts the detected key from keyfinder-cli output, which
// is a single token like "Abm" or "C". The raw spelling is kept; downstream
// normalization handles it.
func ParseKeyOutput(out string) string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
