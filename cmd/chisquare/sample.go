/*
* Random sample analysis
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
	"context"
	"fmt"
	"io"

	"github.com/montanaflynn/stats"

	"github.com/Gilah-EnE/chisquare"
)

// SampleSummary describes the spread of probabilities over several samples.
// For a good generator they are uniform on [0, 1], so the mean sits near 0.5.
type SampleSummary struct {
	Samples int
	Mean    float64
	Median  float64
	StdDev  float64
	Min     float64
	Max     float64
}

// randomSamples draws count samples of size bytes from source and runs the
// test on each of them.
func randomSamples(ctx context.Context, source io.Reader, size, count int) ([]chisquare.Result, error) {
	results := make([]chisquare.Result, 0, count)
	buffer := make([]byte, size)

	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		if _, err := io.ReadFull(source, buffer); err != nil {
			return results, fmt.Errorf("generate sample %d: %w", i+1, err)
		}

		result, err := chisquare.Analyze(buffer)
		if err != nil {
			return results, fmt.Errorf("analyze sample %d: %w", i+1, err)
		}
		results = append(results, result)
	}
	return results, nil
}

func summarize(results []chisquare.Result) (SampleSummary, error) {
	probabilities := make(stats.Float64Data, 0, len(results))
	for _, result := range results {
		probabilities = append(probabilities, result.Probability)
	}

	summary := SampleSummary{Samples: len(results)}
	var err error
	if summary.Mean, err = stats.Mean(probabilities); err != nil {
		return summary, fmt.Errorf("mean: %w", err)
	}
	if summary.Median, err = stats.Median(probabilities); err != nil {
		return summary, fmt.Errorf("median: %w", err)
	}
	if summary.StdDev, err = stats.StandardDeviation(probabilities); err != nil {
		return summary, fmt.Errorf("standard deviation: %w", err)
	}
	if summary.Min, err = stats.Min(probabilities); err != nil {
		return summary, fmt.Errorf("min: %w", err)
	}
	if summary.Max, err = stats.Max(probabilities); err != nil {
		return summary, fmt.Errorf("max: %w", err)
	}
	return summary, nil
}
