// Package services wires the collaborators together based on configuration.
package services

import (
	"github.com/iremlopsum/yt-stem-splitter/internal/analysis"
	"github.com/iremlopsum/yt-stem-splitter/internal/config"
	"github.com/iremlopsum/yt-stem-splitter/internal/library"
	"github.com/iremlopsum/yt-stem-splitter/internal/resolve"
	"github.com/iremlopsum/yt-stem-splitter/internal/scraper"
	"github.com/iremlopsum/yt-stem-splitter/internal/shared"
	"github.com/iremlopsum/yt-stem-splitter/internal/spotify"
)

// Container holds all application services
type Container struct {
	Config   *config.Config
	Lookup   resolve.LookupSource
	Analyzer resolve.Analyzer
	Resolver *resolve.Resolver
	Library  *library.Notifier
	Warnings *shared.WarningCollector
}

// NewContainer creates a new service container with all services initialized
func NewContainer(cfg *config.Config) *Container {
	warnings := shared.NewWarningCollector(true)

	var lookup resolve.LookupSource
	switch cfg.LookupProvider {
	case config.ProviderSpotify:
		lookup = spotify.NewLookup(cfg.SpotifyClientID, cfg.SpotifyClientSecret)
	case config.ProviderNone:
		// No external lookup; the analyzer carries the whole load.
	default:
		lookup = scraper.NewTuneBat(true)
	}

	analyzer := analysis.NewAnalyzer()

	return &Container{
		Config:   cfg,
		Lookup:   lookup,
		Analyzer: analyzer,
		Resolver: resolve.New(lookup, analyzer, warnings),
		Library:  library.NewNotifier(cfg.NavidromeURL, cfg.NavidromeUsername, cfg.NavidromePassword),
		Warnings: warnings,
	}
}
