package cssdom

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/cssdom/reader"
	"github.com/yacobolo/cssdom/writer"
)

// FormatConfig holds formatting configuration
type FormatConfig struct {
	Patterns  []string // Glob patterns selecting stylesheets (e.g. "web/**/*.css")
	BaseDir   string   // Root the paths under OutputDir are mirrored from (default ".")
	OutputDir string   // Write files here; empty writes everything to Out
	Out       io.Writer
	Settings  writer.Settings

	// Handler receives the parse faults of every file after they have been
	// counted. A handler that returns an error stops that file.
	Handler reader.ErrorHandler
	Logger  *zap.Logger
}

// FormatResult contains formatting statistics
type FormatResult struct {
	Stats        ScanStats
	FilesScanned int
	FilesWritten int
	ParseErrors  int      // Recovered faults across all files
	Written      []string // Output paths, in input order
}

// Format reads every matched stylesheet and renders it again under the
// configured settings. A failing file does not stop the others; all
// per-file failures are combined into the returned error.
func Format(config FormatConfig) (*FormatResult, error) {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if config.OutputDir == "" && config.Out == nil {
		return nil, errors.New("format: either OutputDir or Out is required")
	}

	files, stats, err := DiscoverFiles(config.Patterns)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result := &FormatResult{Stats: stats, FilesScanned: len(files)}
	log.Debug("Discovered stylesheets", zap.Int("files", len(files)), zap.Int("skipped", stats.FilesSkipped))

	rd := reader.New(log)
	var errs error
	for _, file := range files {
		out, faults, err := formatFile(rd, file, config)
		result.ParseErrors += faults
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", file, err))
			log.Warn("Format failed", zap.String("file", file), zap.Error(err))
			continue
		}

		dst, err := writeFormatted(file, out, len(files), config)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", file, err))
			continue
		}
		result.FilesWritten++
		result.Written = append(result.Written, dst)
	}

	return result, errs
}

func formatFile(rd *reader.Reader, file string, config FormatConfig) (string, int, error) {
	c := reader.NewCollector(config.Handler)
	ss, err := rd.ReadFile(file, c)
	if err != nil {
		return "", c.Count(), err
	}
	out, err := ss.Render(config.Settings)
	if err != nil {
		return "", c.Count(), fmt.Errorf("render: %w", err)
	}
	return out, c.Count(), nil
}

// writeFormatted writes one rendered file and returns where it went.
func writeFormatted(file, text string, total int, config FormatConfig) (string, error) {
	if config.OutputDir == "" {
		if total > 1 {
			if _, err := fmt.Fprintf(config.Out, "/* %s */\n", filepath.ToSlash(file)); err != nil {
				return "", err
			}
		}
		if _, err := io.WriteString(config.Out, text); err != nil {
			return "", err
		}
		if text != "" && !strings.HasSuffix(text, "\n") {
			if _, err := io.WriteString(config.Out, "\n"); err != nil {
				return "", err
			}
		}
		return "-", nil
	}

	dst := filepath.Join(config.OutputDir, mirrorPath(config.BaseDir, file))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(dst, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", dst, err)
	}
	return dst, nil
}

// mirrorPath is file relative to base, or its base name when file lies
// outside base.
func mirrorPath(base, file string) string {
	if base == "" {
		base = "."
	}
	rel, err := filepath.Rel(base, file)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.Base(file)
	}
	return rel
}
