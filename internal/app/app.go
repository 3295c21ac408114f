// Package app wires the extraction pipeline together: load the input
// buffer, tokenize it into candidates, filter and de-duplicate, and write
// the surviving strings to the configured sink.
package app

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/glampert/istrings/internal/accept"
	"github.com/glampert/istrings/internal/dedup"
	"github.com/glampert/istrings/internal/input"
	"github.com/glampert/istrings/internal/scan"
)

// Run executes one extraction pass. The output file, when configured, is
// opened before the input is touched so a bad destination aborts without
// doing any extraction work. Returns nil on success; every error has
// already been wrapped with enough context to print directly.
func Run(cfg Config) error {
	// Check the input exists and is non-empty before the sink is created;
	// a run that cannot start must not create or truncate an output file.
	fi, err := os.Stat(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("stat %q: %w", cfg.InputPath, err)
	}
	if fi.Mode().IsRegular() && fi.Size() == 0 {
		return fmt.Errorf("%q: %w", cfg.InputPath, input.ErrEmptyFile)
	}

	sink := io.Writer(os.Stdout)
	if cfg.OutputPath != "" {
		f, err := os.Create(cfg.OutputPath)
		if err != nil {
			return fmt.Errorf("open output %q: %w", cfg.OutputPath, err)
		}
		defer f.Close()
		sink = f
	}

	buf, release, err := input.Load(cfg.InputPath)
	if err != nil {
		return err
	}
	defer release()

	candidates := scan.Candidates(buf)
	policy := accept.Policy{MinRun: cfg.MinRun}
	matches := dedup.Unique(candidates, policy.Accept)
	log.Debug().
		Int("bytes", len(buf)).
		Int("candidates", len(candidates)).
		Int("emitted", len(matches)).
		Int("minRun", cfg.MinRun).
		Msg("extraction done")

	w := bufio.NewWriter(sink)
	for _, m := range matches {
		w.WriteString(m)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
