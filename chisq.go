/*
* Pearson chi-squared test module
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

// Package chisquare runs Pearson's chi-squared goodness-of-fit test on the
// byte distribution of a buffer and turns the statistic into the probability
// that a truly random byte source would produce a distribution at least as
// skewed.
//
// A value close to 0.5 is what random data looks like. Values near 0 mean the
// distribution is far from uniform (text, headers, padding), values near 1 mean
// it is suspiciously close to uniform.
package chisquare

import (
	"errors"
	"fmt"
	"math/big"
)

// DegreesOfFreedom of the test over a 256 value byte alphabet.
const DegreesOfFreedom = 255

var (
	ErrEmptyInput    = errors.New("cannot compute distribution of empty input")
	ErrCountMismatch = errors.New("counter total does not match input size")
)

// Result is the outcome of one test run.
type Result struct {
	Size        int
	Statistic   float64
	Probability float64
}

// Calculate returns the probability that a random byte sequence of the same
// length would exceed the chi-squared statistic of data.
func Calculate(data []byte) (float64, error) {
	result, err := Analyze(data)
	if err != nil {
		return 0, err
	}
	return result.Probability, nil
}

// Analyze is Calculate with the intermediate statistic kept.
func Analyze(data []byte) (Result, error) {
	counter := CountBytes(data)
	chiSquare, err := Statistic(counter, len(data))
	if err != nil {
		return Result{}, err
	}

	return Result{
		Size:        len(data),
		Statistic:   chiSquare,
		Probability: Probability(chiSquare, DegreesOfFreedom),
	}, nil
}

// Statistic computes Pearson's chi-squared statistic of the counter against a
// uniform expectation of readBytesCount/256 per byte value. The result is
// rounded to two decimal places.
func Statistic(counter Counter, readBytesCount int) (float64, error) {
	if readBytesCount <= 0 {
		return 0, ErrEmptyInput
	}
	if total := counter.Total(); total != readBytesCount {
		return 0, fmt.Errorf("%w: counted %d bytes, expected %d", ErrCountMismatch, total, readBytesCount)
	}

	expected := float64(readBytesCount) / 256

	var chiSquare float64
	for _, observed := range counter {
		diff := float64(observed) - expected
		chiSquare += diff * diff / expected
	}
	return roundHundredths(chiSquare), nil
}

var (
	bigOne     = big.NewInt(1)
	bigHundred = big.NewInt(100)
)

// roundHundredths rounds a non-negative finite x to two decimal places using
// its exact binary value: the nearest hundredth wins and an exact tie goes to
// the larger one.
func roundHundredths(x float64) float64 {
	scaled := new(big.Rat).SetFloat64(x)
	if scaled == nil {
		return x
	}
	scaled.Mul(scaled, new(big.Rat).SetInt(bigHundred))

	quo, rem := new(big.Int).QuoRem(scaled.Num(), scaled.Denom(), new(big.Int))
	if rem.Lsh(rem, 1).Cmp(scaled.Denom()) >= 0 {
		quo.Add(quo, bigOne)
	}

	rounded, _ := new(big.Rat).SetFrac(quo, bigHundred).Float64()
	return rounded
}
