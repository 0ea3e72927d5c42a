package services

import (
	"testing"

	"github.com/iremlopsum/yt-stem-splitter/internal/config"
)

func TestNewContainer(t *testing.T) {
	cfg := config.DefaultConfig()
	container := NewContainer(cfg)

	if container.Config != cfg {
		t.Error("Config not carried into container")
	}
	if container.Lookup == nil {
		t.Error("Lookup source not initialized for default provider")
	}
	if container.Analyzer == nil {
		t.Error("Analyzer not initialized")
	}
	if container.Resolver == nil {
		t.Error("Resolver not initialized")
	}
	if container.Library == nil {
		t.Error("Library notifier not initialized")
	}
	if container.Warnings == nil {
		t.Error("Warning collector not initialized")
	}
}

func TestNewContainerProviderSelection(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LookupProvider = config.ProviderSpotify
	cfg.SpotifyClientID = "id"
	cfg.SpotifyClientSecret = "secret"

	container := NewContainer(cfg)
	if container.Lookup == nil {
		t.Fatal("spotify lookup not initialized")
	}
	if container.Lookup.Name() != "spotify" {
		t.Errorf("Lookup.Name() = %q, want spotify", container.Lookup.Name())
	}

	cfg.LookupProvider = config.ProviderNone
	container = NewContainer(cfg)
	if container.Lookup != nil {
		t.Error("lookup should be nil for ProviderNone")
	}

	cfg.LookupProvider = config.ProviderTuneBat
	container = NewContainer(cfg)
	if container.Lookup == nil || container.Lookup.Name() != "tunebat" {
		t.Error("tunebat lookup not initialized for default provider")
	}
}
