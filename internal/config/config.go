package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	RequestTimeout    = 2 * time.Minute
	UserAgent         = "yt-stem-splitter/1.0"
	DefaultMaxRetries = 3
)

// Lookup provider names accepted in LookupProvider.
const (
	ProviderTuneBat = "tunebat"
	ProviderSpotify = "spotify"
	ProviderNone    = "none"
)

// Configuration structure
type Config struct {
	DownloadLocation    string `json:"DownloadLocation"`
	Parallelism         int    `json:"Parallelism"`
	AudioFormat         string `json:"AudioFormat"`
	LookupProvider      string `json:"LookupProvider"`
	SpotifyClientID     string `json:"SpotifyClientID"`
	SpotifyClientSecret string `json:"SpotifyClientSecret"`
	NavidromeURL        string `json:"NavidromeURL"`
	NavidromeUsername   string `json:"NavidromeUsername"`
	NavidromePassword   string `json:"NavidromePassword"`
	SkipStemSplit       bool   `json:"SkipStemSplit"`
	TagFLAC             bool   `json:"TagFLAC"`
}

// DefaultConfig returns the configuration used before any config file or
// flag is applied.
func DefaultConfig() *Config {
	return &Config{
		DownloadLocation: filepath.Join(os.Getenv("HOME"), "Music", "yt-stem-splitter"),
		Parallelism:      2,
		AudioFormat:      "wav",
		LookupProvider:   ProviderTuneBat,
	}
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(filePath string, config *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}

// SaveConfig saves configuration to a JSON file
func SaveConfig(filePath string, config *Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	dir := filepath.Dir(filePath)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
