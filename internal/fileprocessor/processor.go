// Package fileprocessor handles file selection and per file processing
package fileprocessor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/lmcasm/internal/options"
	"github.com/retroenv/lmcasm/internal/pipeline"
	"github.com/retroenv/retrogolib/log"
)

const listingExtension = ".lst"

// ProcessFile decodes the input file of the options and writes the listing
// to the output file or stdout. The output is only created or touched after
// the whole input decoded successfully.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	var listing bytes.Buffer
	p := pipeline.New(logger)
	if _, err := p.Execute(ctx, opts, &listing); err != nil {
		return fmt.Errorf("processing %s: %w", opts.Input, err)
	}

	writer, closeWriter, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}

	_, err = listing.WriteTo(writer)
	if closeErr := closeWriter(); closeErr != nil && err == nil {
		err = fmt.Errorf("closing output file %s: %w", opts.Output, closeErr)
	}
	if err != nil {
		return fmt.Errorf("writing listing of %s: %w", opts.Input, err)
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match batch pattern '%s'", opts.Batch)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates the listing filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + listingExtension
}

// createWriter returns the listing writer and a function that closes it.
// Stdout is never closed.
func createWriter(opts options.Program) (io.Writer, func() error, error) {
	if opts.Output == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, file.Close, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("lmcasm", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
