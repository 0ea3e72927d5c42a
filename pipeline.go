package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/iremlopsum/yt-stem-splitter/internal/config"
	"github.com/iremlopsum/yt-stem-splitter/internal/fetch"
	"github.com/iremlopsum/yt-stem-splitter/internal/report"
	"github.com/iremlopsum/yt-stem-splitter/internal/resolve"
	"github.com/iremlopsum/yt-stem-splitter/internal/services"
	"github.com/iremlopsum/yt-stem-splitter/internal/shared"
	"github.com/iremlopsum/yt-stem-splitter/internal/stems"
	"github.com/iremlopsum/yt-stem-splitter/internal/tag"
)

// runFetch processes every URL with bounded parallelism, then fires the
// library notification once and prints accumulated warnings.
func runFetch(ctx context.Context, cfg *config.Config, container *services.Container, urls []string) {
	var wg sync.WaitGroup
	sem := semaphore.NewWeighted(int64(cfg.Parallelism))

	for _, url := range urls {
		wg.Add(1)
		if err := sem.Acquire(ctx, 1); err != nil {
			shared.ColorError.Printf("Failed to acquire semaphore: %v\n", err)
			wg.Done()
			continue
		}
		go func(url string) {
			defer wg.Done()
			defer sem.Release(1)
			processTrack(ctx, cfg, container, url)
		}(url)
	}
	wg.Wait()

	if container.Library.Available() {
		shared.ColorInfo.Println("📡 Notifying media server to rescan the library...")
		if err := container.Library.NotifyScan(); err != nil {
			container.Warnings.AddLibraryWarning(cfg.NavidromeURL, err.Error())
		} else {
			shared.ColorSuccess.Println("✅ Library scan started.")
		}
	}

	container.Warnings.PrintSummary()
}

// processTrack runs the full per-track pipeline: download, stem split,
// metadata resolution, report, and optional FLAC tagging. Failures past the
// download stage degrade to warnings; the track's files stay on disk.
func processTrack(ctx context.Context, cfg *config.Config, container *services.Container, url string) {
	title, err := fetch.Title(ctx, url)
	if err != nil {
		shared.ColorError.Printf("❌ Failed to fetch video title for %s: %v\n", url, err)
		return
	}

	safeTitle := shared.SanitizeFileName(title)
	targetDir := filepath.Join(cfg.DownloadLocation, safeTitle)

	shared.ColorInfo.Printf("🎵 Downloading audio for '%s' to %s...\n", title, targetDir)
	audioPath, err := fetch.DownloadAudio(ctx, url, targetDir, cfg.AudioFormat)
	if err != nil {
		shared.ColorError.Printf("❌ Failed to download audio for '%s': %v\n", title, err)
		return
	}

	if !cfg.SkipStemSplit {
		if stems.CheckDemucs() {
			shared.ColorInfo.Printf("🎚️  Splitting stems for '%s'...\n", title)
			if _, _, err := stems.Split(ctx, audioPath); err != nil {
				container.Warnings.AddStemSplitWarning(audioPath, err.Error())
			}
		} else {
			shared.ColorWarning.Println("⚠️  demucs not found, skipping stem split. Install with: pip install demucs")
		}
	}

	info, err := container.Resolver.Resolve(ctx, resolve.Request{
		Title:     title,
		AudioPath: audioPath,
		ManualBPM: manualBPM,
		ManualKey: manualKey,
	})
	if err != nil {
		shared.ColorError.Printf("❌ Metadata resolution failed for '%s': %v\n", title, err)
		return
	}

	track := report.Track{
		Title:     title,
		URL:       url,
		AudioFile: filepath.Base(audioPath),
		Info:      info,
	}

	mdPath := filepath.Join(targetDir, safeTitle+".md")
	if err := report.WriteMarkdown(mdPath, track); err != nil {
		shared.ColorWarning.Printf("⚠️  %v\n", err)
	}
	report.PrintSummary(track, targetDir)

	if cfg.TagFLAC && strings.EqualFold(cfg.AudioFormat, "flac") {
		tagTrack(ctx, container, url, targetDir, audioPath, title, info)
	}
}

// tagTrack embeds the resolved metadata (and the video thumbnail as cover
// art) into the downloaded FLAC.
func tagTrack(ctx context.Context, container *services.Container, url, targetDir, audioPath, title string, info resolve.TrackInfo) {
	var coverData []byte
	coverPath, err := fetch.DownloadThumbnail(ctx, url, targetDir)
	if err != nil {
		container.Warnings.AddDownloadWarning(url, err.Error())
	} else {
		coverData, err = os.ReadFile(coverPath)
		if err != nil {
			container.Warnings.AddDownloadWarning(url, err.Error())
			coverData = nil
		}
	}

	if err := tag.WriteTrackInfo(audioPath, title, info, coverData); err != nil {
		container.Warnings.AddTagWarning(audioPath, err.Error())
	}
}
