package notation

import (
	"regexp"
	"strconv"
)

var bpmDigits = regexp.MustCompile(`\d+`)

// NormalizeBPM extracts a tempo estimate from a raw source string. Sources
// report tempo in many shapes ("99", "99.0", "~99", "99 BPM", "BPM: 99");
// in all of them the first contiguous digit run is the integer part, so that
// is what gets returned. ok is false when the string carries no digits.
func NormalizeBPM(raw string) (int, bool) {
	match := bpmDigits.FindString(raw)
	if match == "" {
		return 0, false
	}
	bpm, err := strconv.Atoi(match)
	if err != nil {
		// Digit run too long to fit an int; treat like garbage input.
		return 0, false
	}
	return bpm, true
}

// BPMMatches reports whether a detected raw tempo string is within tolerance
// of the expected BPM. Unparseable input never matches.
func BPMMatches(detected string, expected, tolerance int) bool {
	bpm, ok := NormalizeBPM(detected)
	if !ok {
		return false
	}
	diff := bpm - expected
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}
