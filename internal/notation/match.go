package notation

// Enharmonics maps each sharp spelling to its flat equivalent and back.
// The five pairs cover every black key; natural notes have no alternate
// spelling worth bridging.
var Enharmonics = map[string]string{
	"A#": "Bb", "Bb": "A#",
	"C#": "Db", "Db": "C#",
	"D#": "Eb", "Eb": "D#",
	"F#": "Gb", "Gb": "F#",
	"G#": "Ab", "Ab": "G#",
}

// KeysMatch reports whether two raw key strings name the same key after
// normalization. Matching is mode-sensitive first (major never matches
// minor); with enharmonic set, notes that are images of each other under
// Enharmonics also match (A# minor == Bb minor). Either side failing to
// parse never matches.
func KeysMatch(detected, expected string, enharmonic bool) bool {
	d, ok := ParseKey(detected)
	if !ok {
		return false
	}
	e, ok := ParseKey(expected)
	if !ok {
		return false
	}
	if d == e {
		return true
	}
	if enharmonic && d.Mode == e.Mode {
		return Enharmonics[d.Note] == e.Note
	}
	return false
}
