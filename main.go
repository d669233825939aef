// Package main implements the main entry point for the Little Man Computer assembler front-end
package main

import (
	"context"
	"errors"

	"github.com/retroenv/lmcasm/internal/cli"
	"github.com/retroenv/lmcasm/internal/config"
	"github.com/retroenv/lmcasm/internal/fileprocessor"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
	"github.com/tebeka/atexit"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			if usageErr.Error() != "" {
				logger.Error(usageErr.Error())
			}
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		atexit.Exit(1)
	}

	logger := config.CreateLogger(opts)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		logger.Error("Selecting input files failed", log.Err(err))
		atexit.Exit(1)
	}

	var failed int
	atexit.Register(func() {
		if failed > 0 {
			logger.Error("Assembling finished with errors",
				log.Int("failed", failed),
				log.Int("files", len(files)))
		}
	})

	for _, file := range files {
		opts.Input = file
		if len(files) > 1 {
			opts.Output = fileprocessor.GenerateOutputFilename(file)
		}

		if err := fileprocessor.ProcessFile(ctx, logger, opts); err != nil {
			// Handle context cancellation (Ctrl+C) gracefully
			if errors.Is(err, context.Canceled) {
				logger.Info("Operation cancelled")
				atexit.Exit(1)
			}
			logger.Error("Assembling failed", log.Err(err))
			failed++
		}
	}

	if failed > 0 {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
