// Package processor reads a file, runs it through one transformation and
// writes the result.
package processor

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/nmeilick/fileproc/common/duration"
	"github.com/nmeilick/fileproc/transform"
	"github.com/rs/zerolog"
)

// ErrIO marks failures reading the input or writing the output
var ErrIO = errors.New("i/o error")

// Result describes a completed run
type Result struct {
	Mode       transform.Mode
	InputPath  string
	OutputPath string
	InputSize  int
	OutputSize int
	Elapsed    time.Duration
}

// Processor applies a transformation to whole files
type Processor struct {
	log zerolog.Logger
}

// New creates a processor that reports progress to log
func New(log zerolog.Logger) *Processor {
	return &Processor{log: log}
}

// ProcessFile transforms inputPath with mode and writes outputPath using a silent logger
func ProcessFile(mode transform.Mode, inputPath, outputPath string) (*Result, error) {
	return New(zerolog.Nop()).ProcessFile(mode, inputPath, outputPath)
}

// ProcessFile reads inputPath fully, applies mode and writes the result to
// outputPath, creating or truncating it. Nothing is touched when mode is not
// a valid selection. A failed write may leave a partial output file behind.
func (p *Processor) ProcessFile(mode transform.Mode, inputPath, outputPath string) (*Result, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("cannot process %s: %w", inputPath, transform.ErrInvalidOperation)
	}

	log := p.log.With().Str("mode", mode.String()).Logger()
	start := time.Now()

	log.Debug().Str("path", inputPath).Msg("Reading input")
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read input: %w", ErrIO, err)
	}

	out, err := mode.Process(data)
	if err != nil {
		return nil, fmt.Errorf("failed to %s %s: %w", mode, inputPath, err)
	}
	log.Debug().
		Str("format", mode.Format()).
		Str("in", humanize.IBytes(uint64(len(data)))).
		Str("out", humanize.IBytes(uint64(len(out)))).
		Msg("Transformed data")

	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return nil, fmt.Errorf("%w: failed to write output: %w", ErrIO, err)
	}

	res := &Result{
		Mode:       mode,
		InputPath:  inputPath,
		OutputPath: outputPath,
		InputSize:  len(data),
		OutputSize: len(out),
		Elapsed:    time.Since(start),
	}

	log.Info().
		Str("input", inputPath).
		Str("output", outputPath).
		Str("size", humanize.IBytes(uint64(res.OutputSize))).
		Str("took", duration.String(res.Elapsed)).
		Msg("File processed")

	return res, nil
}
