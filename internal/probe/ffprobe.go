// Package probe extracts media metadata from local files.
package probe

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// DurationProber reports the playable duration of a local media file.
type DurationProber interface {
	// Duration returns the duration in seconds.
	Duration(ctx context.Context, path string) (float64, error)
}

// FFprobeConfig holds configuration for the ffprobe-based prober.
type FFprobeConfig struct {
	// FFprobePath is the path to the ffprobe binary.
	// If empty, "ffprobe" will be used (assumes it's in PATH).
	FFprobePath string
}

// DefaultFFprobeConfig returns an FFprobeConfig with defaults.
func DefaultFFprobeConfig() FFprobeConfig {
	return FFprobeConfig{
		FFprobePath: "ffprobe",
	}
}

// FFprobe implements DurationProber using the ffprobe CLI.
type FFprobe struct {
	config FFprobeConfig
}

// Compile-time verification that FFprobe implements DurationProber.
var _ DurationProber = (*FFprobe)(nil)

// NewFFprobe creates a new ffprobe-based prober.
func NewFFprobe(cfg FFprobeConfig) *FFprobe {
	return &FFprobe{config: cfg}
}

// Duration runs ffprobe against the file and parses the container duration.
func (p *FFprobe) Duration(ctx context.Context, path string) (float64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("input file does not exist: %s", path)
		}
		return 0, fmt.Errorf("failed to access input file: %w", err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("input path is a directory, expected a file: %s", path)
	}

	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}

	cmd := exec.CommandContext(ctx, p.config.FFprobePath, args...)
	out, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return 0, fmt.Errorf("probe cancelled: %w", ctx.Err())
		}
		return 0, fmt.Errorf("ffprobe execution failed: %w", err)
	}

	return parseDuration(string(out))
}

func parseDuration(out string) (float64, error) {
	s := strings.TrimSpace(out)
	if s == "" || s == "N/A" {
		return 0, fmt.Errorf("ffprobe reported no duration")
	}

	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("ffprobe reported negative duration %f", d)
	}

	return d, nil
}
