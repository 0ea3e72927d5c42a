// Package library notifies a Subsonic-compatible media server (Navidrome)
// after new files land in the download location, so they show up without
// waiting for the next scheduled scan.
package library

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	subsonic "github.com/delucks/go-subsonic"
)

const clientName = "yt-stem-splitter"

// Notifier triggers a library scan on a configured Subsonic server.
type Notifier struct {
	url      string
	username string
	password string
}

// NewNotifier builds a Notifier; it stays unavailable until URL and
// credentials are configured.
func NewNotifier(url, username, password string) *Notifier {
	return &Notifier{
		url:      strings.TrimSuffix(url, "/"),
		username: username,
		password: password,
	}
}

// Available reports whether a server is configured at all.
func (n *Notifier) Available() bool {
	return n.url != "" && n.username != "" && n.password != ""
}

// NotifyScan authenticates against the server and kicks off a media scan.
func (n *Notifier) NotifyScan() error {
	client := subsonic.Client{
		Client:     &http.Client{Timeout: 30 * time.Second},
		BaseUrl:    n.url,
		User:       n.username,
		ClientName: clientName,
	}

	if err := client.Authenticate(n.password); err != nil {
		return fmt.Errorf("failed to authenticate with %s: %w", n.url, err)
	}
	if !client.Ping() {
		return fmt.Errorf("server %s did not answer ping", n.url)
	}
	if _, err := client.StartScan(); err != nil {
		return fmt.Errorf("failed to start library scan on %s: %w", n.url, err)
	}
	return nil
}
