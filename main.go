package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iremlopsum/yt-stem-splitter/internal/config"
	"github.com/iremlopsum/yt-stem-splitter/internal/fetch"
	"github.com/iremlopsum/yt-stem-splitter/internal/report"
	"github.com/iremlopsum/yt-stem-splitter/internal/resolve"
	"github.com/iremlopsum/yt-stem-splitter/internal/services"
	"github.com/iremlopsum/yt-stem-splitter/internal/shared"
	"github.com/iremlopsum/yt-stem-splitter/internal/stems"
)

const toolVersion = "1.0.0"

var (
	downloadLocation string
	lookupProvider   string
	audioFormat      string
	parallelism      int
	manualBPM        string
	manualKey        string
	noSplit          bool
)

var rootCmd = &cobra.Command{
	Use:     "yt-stem-splitter",
	Version: toolVersion,
	Short:   "Download YouTube tracks, split stems, and resolve BPM/key.",
	Long: fmt.Sprintf(`yt-stem-splitter (v%s)

Downloads a track's audio from YouTube, splits it into vocal and instrumental
stems, and works out its tempo and musical key from a TuneBat/Spotify lookup
with local audio analysis as a fallback. Results land in a per-track folder
together with a markdown summary.`, toolVersion),
}

var fetchCmd = &cobra.Command{
	Use:   "fetch [youtube_url...]",
	Short: "Download audio, split stems, and resolve BPM/key/camelot.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, container := initConfigAndServices()
		if !fetch.CheckYtDlp() {
			shared.ColorError.Println("❌ yt-dlp not found in PATH. Install it first: https://github.com/yt-dlp/yt-dlp")
			return
		}
		if (manualBPM != "" || manualKey != "") && len(args) > 1 {
			shared.ColorError.Println("❌ --bpm/--key apply to a single track; pass one URL when overriding.")
			return
		}
		runFetch(context.Background(), cfg, container, args)
	},
}

var splitCmd = &cobra.Command{
	Use:   "split [audio_file]",
	Short: "Split an audio file into vocal and instrumental stems.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		audioPath := args[0]
		if !shared.FileExists(audioPath) {
			shared.ColorError.Printf("❌ File not found: %s\n", audioPath)
			return
		}
		if !stems.CheckDemucs() {
			shared.ColorError.Println("❌ demucs not found in PATH. Install with: pip install demucs")
			return
		}
		vocals, instrumental, err := stems.Split(context.Background(), audioPath)
		if err != nil {
			shared.ColorError.Printf("❌ Stem split failed: %v\n", err)
			return
		}
		shared.ColorSuccess.Printf("✅ Vocals saved to %s\n", vocals)
		shared.ColorSuccess.Printf("✅ Instrumental saved to %s\n", instrumental)
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup [title]",
	Short: "Resolve BPM/key/camelot for a track title without downloading.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, container := initConfigAndServices()
		title := args[0]

		// Lookup only: there is no local audio to analyze.
		resolver := resolve.New(container.Lookup, nil, container.Warnings)
		info, err := resolver.Resolve(context.Background(), resolve.Request{Title: title})
		if err != nil {
			shared.ColorError.Printf("❌ Lookup failed: %v\n", err)
			return
		}

		report.PrintSummary(report.Track{Title: title, Info: info}, "")
		container.Warnings.PrintSummary()
	},
}

// initConfigAndServices loads (or interactively creates) config.json in the
// current directory, applies flag overrides, and wires the services.
func initConfigAndServices() (*config.Config, *services.Container) {
	cfg := config.DefaultConfig()
	configFile := "config.json"

	if !shared.FileExists(configFile) {
		shared.ColorInfo.Println("✨ Welcome to yt-stem-splitter! Let's set up your configuration.")

		cfg.DownloadLocation = shared.GetUserInput("Enter download location", cfg.DownloadLocation)
		cfg.LookupProvider = shared.GetUserInput(
			"Enter lookup provider (tunebat, spotify, none)", cfg.LookupProvider)

		parallelismStr := shared.GetUserInput("Enter number of parallel fetches",
			strconv.Itoa(cfg.Parallelism))
		if p, err := strconv.Atoi(parallelismStr); err == nil && p > 0 {
			cfg.Parallelism = p
		} else {
			shared.ColorWarning.Printf("⚠️ Invalid parallelism value '%s', using default %d.\n",
				parallelismStr, cfg.Parallelism)
		}

		if err := config.SaveConfig(configFile, cfg); err != nil {
			shared.ColorError.Printf("❌ Failed to save initial config: %v\n", err)
		} else {
			shared.ColorSuccess.Println("✅ Configuration saved to", configFile)
		}
	} else {
		if err := config.LoadConfig(configFile, cfg); err != nil {
			shared.ColorError.Printf("❌ Failed to load config from %s: %v\n", configFile, err)
		}
	}

	// Command-line flags override config file
	if downloadLocation != "" {
		cfg.DownloadLocation = downloadLocation
	}
	if lookupProvider != "" {
		cfg.LookupProvider = lookupProvider
	}
	if audioFormat != "" {
		cfg.AudioFormat = audioFormat
	}
	if parallelism > 0 {
		cfg.Parallelism = parallelism
	}
	if noSplit {
		cfg.SkipStemSplit = true
	}

	return cfg, services.NewContainer(cfg)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&downloadLocation, "download-location", "", "Directory to save downloads")
	rootCmd.PersistentFlags().StringVar(&lookupProvider, "lookup", "", "Lookup provider (tunebat, spotify, none)")

	fetchCmd.Flags().StringVar(&manualBPM, "bpm", "", "Manually supplied BPM (skips lookup and analysis)")
	fetchCmd.Flags().StringVar(&manualKey, "key", "", "Manually supplied key (skips lookup and analysis)")
	fetchCmd.Flags().StringVar(&audioFormat, "format", "", "Audio format to extract (wav, flac)")
	fetchCmd.Flags().IntVar(&parallelism, "parallelism", 0, "Number of URLs to process in parallel")
	fetchCmd.Flags().BoolVar(&noSplit, "no-split", false, "Skip stem separation")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(lookupCmd)
}

func main() {
	shared.InitializeColors()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
