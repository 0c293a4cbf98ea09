/*
* Command line interface
* Copyright (C) 2025  Artem Stefankiv
*
* This program is free software: you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation, either version 3 of the License, or
* (at your option) any later version.
*
* This program is distributed in the hope that it will be useful,
* but WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
* GNU General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

// Command chisquare runs the chi-squared randomness test on files or on
// samples drawn from crypto/rand.
//
// Usage:
//
//	chisquare [flags] [file ...]
//
// Each result line reports the size, the statistic, the probability and a
// verdict at the -alpha significance level.
package main

import (
	"context"
	"crypto/rand"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, files, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger, closeLogger, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	defer closeLogger()

	var progress io.Writer
	if cfg.Progress {
		progress = stderr
	}

	code := exitOK
	if len(files) > 0 {
		logger.Info("analyzing files", zap.Int("count", len(files)), zap.Int("workers", cfg.Workers))
		for _, fileResult := range analyzeFiles(ctx, files, cfg, progress, logger) {
			if fileResult.Err != nil {
				logger.Error("file analysis failed", zap.String("file", fileResult.Filename), zap.Error(fileResult.Err))
				printError(stdout, fileResult.Filename, fileResult.Err)
				code = exitError
				continue
			}
			printResult(stdout, fileResult.Filename, fileResult.Result, cfg.Alpha)
		}
	}

	if len(files) == 0 || cfg.Random {
		if err := runSamples(ctx, rand.Reader, cfg, stdout, logger); err != nil {
			logger.Error("random sample analysis failed", zap.Error(err))
			printError(stdout, "random", err)
			code = exitError
		}
	}
	return code
}

func runSamples(ctx context.Context, source io.Reader, cfg Config, stdout io.Writer, logger *zap.Logger) error {
	logger.Info("analyzing random samples", zap.Int("samples", cfg.Samples), zap.Int("size", cfg.SampleSize))

	results, err := randomSamples(ctx, source, cfg.SampleSize, cfg.Samples)
	for i, result := range results {
		printResult(stdout, fmt.Sprintf("random #%d", i+1), result, cfg.Alpha)
	}
	if err != nil {
		return err
	}

	if len(results) > 1 {
		summary, err := summarize(results)
		if err != nil {
			return err
		}
		printSummary(stdout, summary, cfg.Alpha)
	}
	return nil
}
