package notation

import (
	"regexp"
	"strings"
)

// Mode is the major/minor quality of a musical key.
type Mode string

const (
	ModeMajor Mode = "maj"
	ModeMinor Mode = "min"
)

// Key is the canonical form of a musical key: an upper-case root note with
// its accidental preserved as written ("A#", "Bb"), plus a mode.
type Key struct {
	Note string
	Mode Mode
}

// String renders the key in a form ParseKey accepts again, e.g. "A#min".
func (k Key) String() string {
	return k.Note + string(k.Mode)
}

var (
	noteToken = regexp.MustCompile(`^[A-Ga-g][#b]?`)
	spaceRun  = regexp.MustCompile(`\s+`)

	accidentalGlyphs = strings.NewReplacer("♯", "#", "♭", "b")
)

// ParseKey normalizes a raw key string from any source into a Key. Sources
// spell keys inconsistently ("G Major", "g major", "G", "A#m", "A# Minor",
// "G♯ Minor"); one permissive grammar covers them all: a leading note token
// (letter A-G, optional # or b), then anything. The mode is minor when the
// rest of the string mentions "min" or the whole string ends in a bare "m",
// major otherwise. ok is false when no note token starts the string.
func ParseKey(raw string) (Key, bool) {
	s := strings.TrimSpace(spaceRun.ReplaceAllString(raw, " "))
	s = accidentalGlyphs.Replace(s)

	token := noteToken.FindString(s)
	if token == "" {
		return Key{}, false
	}
	note := strings.ToUpper(token[:1]) + token[1:]

	lower := strings.ToLower(s)
	mode := ModeMajor
	if strings.Contains(lower[len(token):], "min") || strings.HasSuffix(lower, "m") {
		mode = ModeMinor
	}
	return Key{Note: note, Mode: mode}, true
}
