// Package fetch wraps yt-dlp for title lookup and audio download.
package fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iremlopsum/yt-stem-splitter/internal/shared"
)

const ytdlp = "yt-dlp"

// CheckYtDlp reports whether yt-dlp is installed.
func CheckYtDlp() bool {
	return shared.CommandAvailable(ytdlp)
}

// Title fetches the video title without downloading anything.
func Title(ctx context.Context, url string) (string, error) {
	out, err := shared.RunCommandOutput(ctx, ytdlp, "--no-playlist", "--print", "%(title)s", url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch video title: %w", err)
	}
	title := strings.TrimSpace(out)
	if title == "" {
		return "", fmt.Errorf("yt-dlp returned an empty title for %s", url)
	}
	return title, nil
}

// DownloadAudio downloads and extracts the audio track into dir in the given
// format and returns the path of the resulting file.
func DownloadAudio(ctx context.Context, url, dir, format string) (string, error) {
	if err := shared.CreateDirIfNotExists(dir); err != nil {
		return "", err
	}

	outputTemplate := filepath.Join(dir, "%(title)s.%(ext)s")
	err := shared.RunCommand(ctx, "", ytdlp,
		"--no-playlist",
		"--extract-audio",
		"--audio-format", format,
		"-o", outputTemplate,
		url,
	)
	if err != nil {
		return "", err
	}

	path, err := newestFileWithExt(dir, "."+format)
	if err != nil {
		return "", fmt.Errorf("no %s file found after download in %s: %w", strings.ToUpper(format), dir, err)
	}
	return path, nil
}

// DownloadThumbnail fetches the video thumbnail as cover.jpg in dir.
func DownloadThumbnail(ctx context.Context, url, dir string) (string, error) {
	if err := shared.CreateDirIfNotExists(dir); err != nil {
		return "", err
	}

	err := shared.RunCommand(ctx, "", ytdlp,
		"--no-playlist",
		"--skip-download",
		"--write-thumbnail",
		"--convert-thumbnails", "jpg",
		"-o", filepath.Join(dir, "cover.%(ext)s"),
		url,
	)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, "cover.jpg")
	if !shared.FileExists(path) {
		return "", fmt.Errorf("thumbnail not found at %s", path)
	}
	return path, nil
}

// newestFileWithExt returns the most recently modified file in dir with the
// given extension. Multiple matches can exist when a directory is reused;
// the newest one is the download that just finished.
func newestFileWithExt(dir, ext string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var newest string
	var newestMod int64
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if mod := info.ModTime().UnixNano(); newest == "" || mod > newestMod {
			newest = entry.Name()
			newestMod = mod
		}
	}
	if newest == "" {
		return "", fmt.Errorf("no %s files in %s", ext, dir)
	}
	return filepath.Join(dir, newest), nil
}
