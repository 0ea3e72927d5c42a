package scraper

import (
	"strings"

	"github.com/iremlopsum/yt-stem-splitter/internal/resolve"
)

// Track pages label their stat boxes with short secondary captions; these
// are the three the resolver cares about.
const (
	labelBPM     = "bpm"
	labelKey     = "key"
	labelCamelot = "camelot"
)

// FieldsToMetadata converts the raw label→value pairs extracted from a track
// page into RawMetadata. Labels compare case-insensitively after trimming;
// unknown labels and empty values are ignored.
func FieldsToMetadata(fields map[string]string) resolve.RawMetadata {
	var meta resolve.RawMetadata
	for label, value := range fields {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(label)) {
		case labelBPM:
			meta.BPM = value
		case labelKey:
			meta.Key = value
		case labelCamelot:
			meta.Camelot = value
		}
	}
	return meta
}
