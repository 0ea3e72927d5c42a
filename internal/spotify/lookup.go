// Package spotify implements a metadata lookup source backed by the Spotify
// Web API's audio features (tempo, key, mode).
package spotify

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/iremlopsum/yt-stem-splitter/internal/resolve"
)

// pitchClasses maps Spotify's integer key notation (0 = C) to sharp-spelled
// note names.
var pitchClasses = [12]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// Lookup is a resolve.LookupSource that searches Spotify for the title and
// reads tempo/key from the top result's audio features. Spotify has no
// camelot notation, so that field always stays absent.
type Lookup struct {
	id     string
	secret string

	authOnce sync.Once
	authErr  error
	client   *spotify.Client
}

// NewLookup builds the Spotify lookup source. Available is false until both
// client credentials are configured.
func NewLookup(clientID, clientSecret string) *Lookup {
	return &Lookup{id: clientID, secret: clientSecret}
}

func (s *Lookup) Name() string { return "spotify" }

func (s *Lookup) Available() bool {
	return s.id != "" && s.secret != ""
}

// authenticate exchanges the client credentials for a token, once.
func (s *Lookup) authenticate(ctx context.Context) error {
	s.authOnce.Do(func() {
		conf := &clientcredentials.Config{
			ClientID:     s.id,
			ClientSecret: s.secret,
			TokenURL:     spotifyauth.TokenURL,
		}
		token, err := conf.Token(ctx)
		if err != nil {
			s.authErr = fmt.Errorf("spotify auth: %w", err)
			return
		}
		httpClient := spotifyauth.New().Client(ctx, token)
		s.client = spotify.New(httpClient)
	})
	return s.authErr
}

// Lookup searches for the title and converts the first hit's audio features
// into raw metadata strings.
func (s *Lookup) Lookup(ctx context.Context, title string) (resolve.RawMetadata, error) {
	if err := s.authenticate(ctx); err != nil {
		return resolve.RawMetadata{}, err
	}

	results, err := s.client.Search(ctx, title, spotify.SearchTypeTrack, spotify.Limit(1))
	if err != nil {
		return resolve.RawMetadata{}, fmt.Errorf("spotify search for %q: %w", title, err)
	}
	if results.Tracks == nil || len(results.Tracks.Tracks) == 0 {
		return resolve.RawMetadata{}, fmt.Errorf("spotify search for %q: no results", title)
	}

	trackID := results.Tracks.Tracks[0].ID
	features, err := s.client.GetAudioFeatures(ctx, trackID)
	if err != nil {
		return resolve.RawMetadata{}, fmt.Errorf("spotify audio features for %s: %w", trackID, err)
	}
	if len(features) == 0 || features[0] == nil {
		return resolve.RawMetadata{}, fmt.Errorf("spotify audio features for %s: empty response", trackID)
	}

	f := features[0]
	meta := resolve.RawMetadata{}
	if f.Tempo > 0 {
		meta.BPM = fmt.Sprintf("%d", int(math.Round(float64(f.Tempo))))
	}
	meta.Key = KeyName(int(f.Key), int(f.Mode))
	return meta, nil
}

// KeyName renders Spotify's pitch-class/mode notation as a key string like
// "A Minor". Spotify reports -1 when key detection failed.
func KeyName(pitchClass, mode int) string {
	if pitchClass < 0 || pitchClass >= len(pitchClasses) {
		return ""
	}
	quality := "Minor"
	if mode == 1 {
		quality = "Major"
	}
	return pitchClasses[pitchClass] + " " + quality
}
