// Package stems wraps demucs for two-stem (vocals/instrumental) separation.
package stems

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cheggaaa/pb/v3"

	"github.com/iremlopsum/yt-stem-splitter/internal/shared"
)

const (
	demucsTool  = "demucs"
	demucsModel = "htdemucs"
	stemTarget  = "vocals"
)

// CheckDemucs reports whether demucs is installed.
func CheckDemucs() bool {
	return shared.CommandAvailable(demucsTool)
}

// Split separates inputPath into vocals and instrumental and places
// "<base>_vocals.wav" and "<base>_instrumental.wav" next to the input.
func Split(ctx context.Context, inputPath string) (vocalsOut, instrumentalOut string, err error) {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	dir := filepath.Dir(inputPath)
	workDir := filepath.Join(dir, "demucs_output")

	// Stale output from an earlier run would shadow this one.
	if err := os.RemoveAll(workDir); err != nil {
		return "", "", fmt.Errorf("failed to clear demucs work dir: %w", err)
	}
	if err := os.MkdirAll(workDir, 0755); err != nil {
		return "", "", err
	}
	defer os.RemoveAll(workDir)

	err = shared.RunCommand(ctx, "", demucsTool,
		"--two-stems", stemTarget,
		"-o", workDir,
		inputPath,
	)
	if err != nil {
		return "", "", err
	}

	stemDir := filepath.Join(workDir, demucsModel, base)
	vocalsOut = filepath.Join(dir, base+"_vocals.wav")
	instrumentalOut = filepath.Join(dir, base+"_instrumental.wav")

	if err := copyWithProgress(filepath.Join(stemDir, "vocals.wav"), vocalsOut); err != nil {
		return "", "", fmt.Errorf("expected vocals stem missing: %w", err)
	}
	if err := copyWithProgress(filepath.Join(stemDir, "no_vocals.wav"), instrumentalOut); err != nil {
		return "", "", fmt.Errorf("expected instrumental stem missing: %w", err)
	}
	return vocalsOut, instrumentalOut, nil
}

// copyWithProgress copies a stem into place, with a progress bar when stdout
// is a terminal (stems are WAV files, usually tens of megabytes).
func copyWithProgress(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	var reader io.Reader = in
	var bar *pb.ProgressBar
	if shared.IsTTY() {
		bar = pb.Full.Start64(info.Size())
		reader = bar.NewProxyReader(in)
	}
	_, err = io.Copy(out, reader)
	if bar != nil {
		bar.Finish()
	}
	return err
}
