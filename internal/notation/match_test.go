package notation

import "testing"

func TestKeysMatch(t *testing.T) {
	cases := []struct {
		detected   string
		expected   string
		enharmonic bool
		want       bool
	}{
		{"A# Minor", "Bb Minor", true, true},
		{"Bb Minor", "A# Minor", true, true},
		{"A# Minor", "Bb Minor", false, false},
		{"G Major", "G Minor", true, false},
		{"G Major", "G Minor", false, false},
		{"G Major", "g major", false, true},
		{"A#m", "Bbm", true, true},
		{"C# Major", "Db Major", true, true},
		{"C# Major", "Db Minor", true, false},
		{"C Major", "D Major", true, false},
		{"", "G Major", true, false},
		{"G Major", "", true, false},
		{"not a key", "G Major", true, false},
	}

	for _, c := range cases {
		if got := KeysMatch(c.detected, c.expected, c.enharmonic); got != c.want {
			t.Errorf("KeysMatch(%q, %q, %v) = %v, want %v",
				c.detected, c.expected, c.enharmonic, got, c.want)
		}
	}
}

func TestEnharmonicsIsSymmetric(t *testing.T) {
	for sharp, flat := range Enharmonics {
		if back, ok := Enharmonics[flat]; !ok || back != sharp {
			t.Errorf("Enharmonics[%q] = %q, but reverse lookup gives %q", sharp, flat, back)
		}
	}
}
