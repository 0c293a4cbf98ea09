/*
* Command line configuration
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

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the settings of one run. Values come from DefaultConfig, then
// the optional TOML file, then flags given explicitly on the command line.
type Config struct {
	BlockSize  int     `toml:"block_size"`
	Alpha      float64 `toml:"alpha"`
	SampleSize int     `toml:"sample_size"`
	Samples    int     `toml:"samples"`
	Workers    int     `toml:"workers"`
	Random     bool    `toml:"random"`
	Progress   bool    `toml:"progress"`
	LogFile    string  `toml:"log_file"`
	Verbose    bool    `toml:"verbose"`
}

func DefaultConfig() Config {
	return Config{
		BlockSize:  1048576,
		Alpha:      0.01,
		SampleSize: 1048576,
		Samples:    1,
		Workers:    4,
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.BlockSize <= 0 {
		errs = append(errs, fmt.Errorf("block size must be positive, got %d", c.BlockSize))
	}
	if c.Alpha <= 0 || c.Alpha >= 0.5 {
		errs = append(errs, fmt.Errorf("alpha must be in (0, 0.5), got %v", c.Alpha))
	}
	if c.SampleSize <= 0 {
		errs = append(errs, fmt.Errorf("sample size must be positive, got %d", c.SampleSize))
	}
	if c.Samples <= 0 {
		errs = append(errs, fmt.Errorf("samples must be positive, got %d", c.Samples))
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	return errors.Join(errs...)
}

func loadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("decode TOML: %w", err)
	}
	return cfg, nil
}

// parseArgs returns the effective configuration and the files to analyse.
func parseArgs(args []string, output io.Writer) (Config, []string, error) {
	defaults := DefaultConfig()
	fs := flag.NewFlagSet("chisquare", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: chisquare [flags] [file ...]\n\n")
		fmt.Fprintf(output, "Without files a random sample from crypto/rand is analysed.\n\n")
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "TOML configuration file")
	flagged := defaults
	fs.IntVar(&flagged.BlockSize, "block-size", defaults.BlockSize, "read block size in bytes")
	fs.Float64Var(&flagged.Alpha, "alpha", defaults.Alpha, "significance level for the verdict")
	fs.IntVar(&flagged.SampleSize, "size", defaults.SampleSize, "random sample size in bytes")
	fs.IntVar(&flagged.Samples, "samples", defaults.Samples, "number of random samples")
	fs.IntVar(&flagged.Workers, "workers", defaults.Workers, "files analysed concurrently")
	fs.BoolVar(&flagged.Random, "random", defaults.Random, "analyse random samples even when files are given")
	fs.BoolVar(&flagged.Progress, "progress", defaults.Progress, "print read progress to stderr")
	fs.StringVar(&flagged.LogFile, "log", defaults.LogFile, "also write the log to this file")
	fs.BoolVar(&flagged.Verbose, "verbose", defaults.Verbose, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	cfg := defaults
	if *configPath != "" {
		var err error
		if cfg, err = loadConfigFile(*configPath); err != nil {
			return Config{}, nil, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "block-size":
			cfg.BlockSize = flagged.BlockSize
		case "alpha":
			cfg.Alpha = flagged.Alpha
		case "size":
			cfg.SampleSize = flagged.SampleSize
		case "samples":
			cfg.Samples = flagged.Samples
		case "workers":
			cfg.Workers = flagged.Workers
		case "random":
			cfg.Random = flagged.Random
		case "progress":
			cfg.Progress = flagged.Progress
		case "log":
			cfg.LogFile = flagged.LogFile
		case "verbose":
			cfg.Verbose = flagged.Verbose
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, fs.Args(), nil
}
