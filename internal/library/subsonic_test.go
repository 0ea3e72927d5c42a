package library

import "testing"

func TestNotifierAvailability(t *testing.T) {
	cases := []struct {
		url, user, pass string
		want            bool
	}{
		{"", "", "", false},
		{"https://music.local", "", "", false},
		{"https://music.local", "admin", "", false},
		{"https://music.local", "admin", "pw", true},
	}

	for _, c := range cases {
		n := NewNotifier(c.url, c.user, c.pass)
		if got := n.Available(); got != c.want {
			t.Errorf("NewNotifier(%q, %q, ...).Available() = %v, want %v", c.url, c.user, got, c.want)
		}
	}
}

func TestNotifierTrimsTrailingSlash(t *testing.T) {
	n := NewNotifier("https://music.local/", "admin", "pw")
	if n.url != "https://music.local" {
		t.Errorf("url = %q, want trailing slash removed", n.url)
	}
}
