// Package resolve turns a track title (and optionally a downloaded audio
// file) into a best-effort BPM/key/camelot estimate, reconciling an external
// lookup source with a local audio analyzer under a fixed priority order.
package resolve

import (
	"context"
	"fmt"

	"github.com/iremlopsum/yt-stem-splitter/internal/shared"
)

// SourceManual is the provenance name recorded when the caller supplies
// BPM/key by hand instead of letting the sources run.
const SourceManual = "manual"

// RawMetadata is the unprocessed yield of a single source query. Empty
// strings mean the source had nothing for that field.
type RawMetadata struct {
	BPM     string
	Key     string
	Camelot string
}

// Empty reports whether the source contributed nothing at all.
func (m RawMetadata) Empty() bool {
	return m.BPM == "" && m.Key == "" && m.Camelot == ""
}

// TrackInfo is the merged resolution result. Sources lists, in fill order,
// every source that contributed at least one field, each at most once.
// Callers must treat a returned TrackInfo as immutable.
type TrackInfo struct {
	BPM     string
	Key     string
	Camelot string
	Sources []string
}

// LookupSource queries an external database (scraper or API) by track title.
type LookupSource interface {
	Name() string
	Available() bool
	Lookup(ctx context.Context, title string) (RawMetadata, error)
}

// Analyzer derives BPM/key from a local audio file. Analyzers have no
// camelot concept; any Camelot value they return is ignored.
type Analyzer interface {
	Name() string
	Available() bool
	Analyze(ctx context.Context, audioPath string) (RawMetadata, error)
}

// Request describes one resolution. Manual BPM/key short-circuit the whole
// pipeline: no source is queried and provenance is exactly ["manual"].
type Request struct {
	Title     string
	AudioPath string // empty disables the analyzer fallback
	ManualBPM string
	ManualKey string
}

// Resolver runs the lookup source first, then the analyzer only for fields
// the lookup left unfilled. The lookup is authoritative when present; the
// analyzer is strictly a gap-filler and never overwrites.
type Resolver struct {
	lookup   LookupSource
	analyzer Analyzer
	warnings *shared.WarningCollector
}

// New builds a Resolver. Either collaborator may be nil, in which case it is
// simply never queried; warnings may be nil to discard failure notes.
func New(lookup LookupSource, analyzer Analyzer, warnings *shared.WarningCollector) *Resolver {
	return &Resolver{lookup: lookup, analyzer: analyzer, warnings: warnings}
}

// Resolve produces a merged TrackInfo for the request. Source failures are
// absorbed: a source that errors or finds nothing degrades to absent fields,
// never to an error return. A result with every field absent and no sources
// is a valid outcome, not a failure. The only error case is misuse: a
// request with neither a title nor manual values.
func (r *Resolver) Resolve(ctx context.Context, req Request) (TrackInfo, error) {
	if req.ManualBPM != "" || req.ManualKey != "" {
		return TrackInfo{
			BPM:     req.ManualBPM,
			Key:     req.ManualKey,
			Sources: []string{SourceManual},
		}, nil
	}
	if req.Title == "" {
		return TrackInfo{}, fmt.Errorf("resolve: a title is required when no manual bpm/key is given")
	}

	var info TrackInfo

	if r.lookup != nil && r.lookup.Available() {
		meta, err := r.lookup.Lookup(ctx, req.Title)
		if err != nil {
			if r.warnings != nil {
				r.warnings.AddLookupWarning(r.lookup.Name(), req.Title, err.Error())
			}
			meta = RawMetadata{}
		}
		contributed := false
		if meta.BPM != "" {
			info.BPM = meta.BPM
			contributed = true
		}
		if meta.Key != "" {
			info.Key = meta.Key
			contributed = true
		}
		if meta.Camelot != "" {
			info.Camelot = meta.Camelot
			contributed = true
		}
		if contributed {
			info.Sources = append(info.Sources, r.lookup.Name())
		}
	}

	if (info.BPM == "" || info.Key == "") && req.AudioPath != "" &&
		r.analyzer != nil && r.analyzer.Available() {
		meta, err := r.analyzer.Analyze(ctx, req.AudioPath)
		if err != nil {
			if r.warnings != nil {
				r.warnings.AddAnalysisWarning(r.analyzer.Name(), req.AudioPath, err.Error())
			}
			meta = RawMetadata{}
		}
		contributed := false
		if info.BPM == "" && meta.BPM != "" {
			info.BPM = meta.BPM
			contributed = true
		}
		if info.Key == "" && meta.Key != "" {
			info.Key = meta.Key
			contributed = true
		}
		if contributed {
			info.Sources = append(info.Sources, r.analyzer.Name())
		}
	}

	return info, nil
}
