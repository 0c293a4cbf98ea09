/*
* Result reporting
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
	"fmt"
	"io"
	"strconv"

	"github.com/Gilah-EnE/chisquare"
)

const (
	VerdictRandom    = "random"
	VerdictNonRandom = "not random"
)

// Verdict flags probabilities in either tail: too skewed below alpha, too
// uniform above 1-alpha.
func Verdict(probability, alpha float64) string {
	if probability < alpha || probability > 1-alpha {
		return VerdictNonRandom
	}
	return VerdictRandom
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func printResult(w io.Writer, name string, result chisquare.Result, alpha float64) {
	fmt.Fprintf(w, "%s: %d bytes, chi-square %.2f, probability %s (%s)\n",
		name, result.Size, result.Statistic, formatFloat(result.Probability), Verdict(result.Probability, alpha))
}

func printError(w io.Writer, name string, err error) {
	fmt.Fprintf(w, "%s: error: %v\n", name, err)
}

func printSummary(w io.Writer, summary SampleSummary, alpha float64) {
	fmt.Fprintf(w, "%d samples: mean %s, median %s, std dev %s, min %s, max %s (%s)\n",
		summary.Samples,
		formatFloat(summary.Mean),
		formatFloat(summary.Median),
		formatFloat(summary.StdDev),
		formatFloat(summary.Min),
		formatFloat(summary.Max),
		Verdict(summary.Mean, alpha),
	)
}
