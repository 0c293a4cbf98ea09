/*
* File reading and concurrent analysis
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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Gilah-EnE/chisquare"
)

const minBlockSize = 4096

type FileResult struct {
	Filename string
	Result   chisquare.Result
	Err      error
}

// readFile loads the whole file in blockSize reads. When progress is not nil
// the amount read so far is printed to it in MB.
func readFile(filename string, blockSize int, progress io.Writer) ([]byte, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	fileStat, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if fileStat.IsDir() {
		return nil, fmt.Errorf("%s is a directory", filename)
	}

	fsize := int(fileStat.Size())
	if fsize < blockSize {
		blockSize = max(fsize, minBlockSize)
	}

	reader := bufio.NewReaderSize(file, blockSize)
	buffer := make([]byte, blockSize)
	data := make([]byte, 0, fsize)

	for {
		bytesRead, err := reader.Read(buffer)
		data = append(data, buffer[:bytesRead]...)
		if progress != nil && bytesRead > 0 {
			fmt.Fprintf(progress, "%s: %.1f MB\r", filename, float32(len(data))/1048576)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

// analyzeFiles runs the test on every file with at most cfg.Workers files in
// memory at once. Results keep the order of filenames; a failing file does not
// stop the others.
func analyzeFiles(ctx context.Context, filenames []string, cfg Config, progress io.Writer, logger *zap.Logger) []FileResult {
	results := make([]FileResult, len(filenames))

	var g errgroup.Group
	g.SetLimit(cfg.Workers)

	for i, filename := range filenames {
		i, filename := i, filename
		g.Go(func() error {
			results[i] = analyzeFile(ctx, filename, cfg.BlockSize, progress)
			logger.Debug("file analyzed",
				zap.String("file", filename),
				zap.Int("size", results[i].Result.Size),
				zap.Error(results[i].Err),
			)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func analyzeFile(ctx context.Context, filename string, blockSize int, progress io.Writer) FileResult {
	result := FileResult{Filename: filename}
	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	start := time.Now()
	data, err := readFile(filename, blockSize, progress)
	if err != nil {
		result.Err = fmt.Errorf("read %s: %w", filename, err)
		return result
	}

	result.Result, err = chisquare.Analyze(data)
	if err != nil {
		result.Err = fmt.Errorf("analyze %s: %w", filename, err)
		return result
	}

	if progress != nil {
		fmt.Fprintf(progress, "\nFile %s has been analyzed. Time: %s\n", filename, time.Since(start))
	}
	return result
}
