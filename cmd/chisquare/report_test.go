/*
* Result reporting tests
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
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gilah-EnE/chisquare"
)

func TestVerdict(t *testing.T) {
	tests := []struct {
		probability float64
		want        string
	}{
		{0, VerdictNonRandom},
		{0.005, VerdictNonRandom},
		{0.01, VerdictRandom},
		{0.5, VerdictRandom},
		{0.99, VerdictRandom},
		{0.995, VerdictNonRandom},
		{1, VerdictNonRandom},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Verdict(tt.probability, 0.01), "p=%v", tt.probability)
	}
}

func TestPrintResult(t *testing.T) {
	var out bytes.Buffer
	printResult(&out, "sample.bin", chisquare.Result{Size: 1024, Statistic: 254.7, Probability: 0.25}, 0.01)
	assert.Equal(t, "sample.bin: 1024 bytes, chi-square 254.70, probability 0.25 (random)\n", out.String())
}

func TestPrintError(t *testing.T) {
	var out bytes.Buffer
	printError(&out, "sample.bin", errors.New("boom"))
	assert.Equal(t, "sample.bin: error: boom\n", out.String())
}

func TestPrintSummary(t *testing.T) {
	var out bytes.Buffer
	printSummary(&out, SampleSummary{Samples: 2, Mean: 0.5, Median: 0.5, StdDev: 0.25, Min: 0.25, Max: 0.75}, 0.01)
	assert.Equal(t, "2 samples: mean 0.5, median 0.5, std dev 0.25, min 0.25, max 0.75 (random)\n", out.String())
}
