package shared

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// WarningType represents different types of warnings
type WarningType int

const (
	LookupWarning WarningType = iota
	AnalysisWarning
	DownloadWarning
	StemSplitWarning
	TagWarning
	LibraryWarning
)

// Warning represents a single warning with context
type Warning struct {
	Type    WarningType
	Message string
	Context string // Track title or file path
	Details string // Additional details like error message
}

// WarningCollector collects warnings during a fetch/resolve run. Collaborator
// failures are absorbed into absent metadata rather than surfaced as errors;
// the collector is where they stay visible to the user.
type WarningCollector struct {
	mu       sync.Mutex
	warnings []Warning
	enabled  bool
}

// NewWarningCollector creates a new warning collector
func NewWarningCollector(enabled bool) *WarningCollector {
	return &WarningCollector{
		warnings: make([]Warning, 0),
		enabled:  enabled,
	}
}

// AddWarning adds a warning to the collector
func (wc *WarningCollector) AddWarning(warningType WarningType, context, message, details string) {
	if !wc.enabled {
		return
	}
	wc.mu.Lock()
	defer wc.mu.Unlock()
	wc.warnings = append(wc.warnings, Warning{
		Type:    warningType,
		Message: message,
		Context: context,
		Details: details,
	})
}

// AddLookupWarning records a failed metadata lookup for a track title.
func (wc *WarningCollector) AddLookupWarning(source, title, details string) {
	wc.AddWarning(LookupWarning, title, fmt.Sprintf("%s lookup failed", source), details)
}

// AddAnalysisWarning records a failed local audio analysis.
func (wc *WarningCollector) AddAnalysisWarning(source, path, details string) {
	wc.AddWarning(AnalysisWarning, path, fmt.Sprintf("%s analysis failed", source), details)
}

// AddDownloadWarning records a non-fatal download problem (e.g. thumbnail).
func (wc *WarningCollector) AddDownloadWarning(url, details string) {
	wc.AddWarning(DownloadWarning, url, "Download problem", details)
}

// AddStemSplitWarning records a failed stem separation.
func (wc *WarningCollector) AddStemSplitWarning(path, details string) {
	wc.AddWarning(StemSplitWarning, path, "Stem separation failed", details)
}

// AddTagWarning records a failed FLAC tagging pass.
func (wc *WarningCollector) AddTagWarning(path, details string) {
	wc.AddWarning(TagWarning, path, "Failed to write tags", details)
}

// AddLibraryWarning records a failed media-server notification.
func (wc *WarningCollector) AddLibraryWarning(server, details string) {
	wc.AddWarning(LibraryWarning, server, "Library scan notification failed", details)
}

// HasWarnings returns true if there are any warnings
func (wc *WarningCollector) HasWarnings() bool {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	return len(wc.warnings) > 0
}

// GetWarningCount returns the total number of warnings
func (wc *WarningCollector) GetWarningCount() int {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	return len(wc.warnings)
}

// GetWarningsByType returns warnings grouped by type
func (wc *WarningCollector) GetWarningsByType() map[WarningType][]Warning {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	grouped := make(map[WarningType][]Warning)
	for _, warning := range wc.warnings {
		grouped[warning.Type] = append(grouped[warning.Type], warning)
	}
	return grouped
}

// PrintSummary prints a formatted summary of all warnings
func (wc *WarningCollector) PrintSummary() {
	if !wc.HasWarnings() {
		return
	}

	ColorWarning.Printf("\n⚠️  Warning Summary (%d warnings):\n", wc.GetWarningCount())
	ColorWarning.Println(strings.Repeat("─", 50))

	grouped := wc.GetWarningsByType()

	var types []WarningType
	for warningType := range grouped {
		types = append(types, warningType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	for _, warningType := range types {
		for _, warning := range grouped[warningType] {
			ColorWarning.Printf("  • %s: %s", warning.Context, warning.Message)
			if warning.Details != "" {
				ColorWarning.Printf(" (%s)", TruncateString(warning.Details, 120))
			}
			fmt.Println()
		}
	}
}
