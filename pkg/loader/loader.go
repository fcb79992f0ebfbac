package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/bastiangx/dictserve/internal/logger"
	"github.com/schollz/progressbar/v3"
)

// Adder receives parsed entries.
type Adder interface {
	AddWord(word, translation string)
}

// Options controls ingestion.
type Options struct {
	// Progress draws a spinner with the entry count on ProgressWriter.
	Progress       bool
	ProgressWriter io.Writer
}

// Stats summarizes one ingestion run.
type Stats struct {
	Lines   int
	Entries int
	Skipped int
}

// Load parses every line of r and calls dst.AddWord once per entry.
func Load(r io.Reader, dst Adder, opts Options) (Stats, error) {
	var stats Stats
	logs := logger.New("loader")

	var bar *progressbar.ProgressBar
	if opts.Progress {
		w := opts.ProgressWriter
		if w == nil {
			w = os.Stderr
		}
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("Loading dictionary..."),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(w)
			}),
		)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	for scanner.Scan() {
		stats.Lines++
		line := scanner.Text()
		entry, ok := ParseLine(line)
		if !ok {
			stats.Skipped++
			if line != "" && line[0] != '#' {
				logs.Debugf("Skipping malformed line %d: %q", stats.Lines, line)
			}
			continue
		}
		dst.AddWord(entry.Word, entry.Translation)
		stats.Entries++
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read dictionary at line %d: %w", stats.Lines+1, err)
	}

	logs.Debugf("Dictionary loaded: lines=%d entries=%d skipped=%d", stats.Lines, stats.Entries, stats.Skipped)
	return stats, nil
}

// LoadFile validates and loads the dictionary file at path.
func LoadFile(path string, dst Adder, opts Options) (Stats, error) {
	if err := ValidateFile(path); err != nil {
		return Stats{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer file.Close()

	return Load(file, dst, opts)
}
