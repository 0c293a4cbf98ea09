/*
* Chi-squared distribution tail probability
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

package chisquare

import (
	"math"
)

const (
	logSqrtPi = 0.5723649429247000870717135 // log(sqrt(pi))
	iSqrtPi   = 0.5641895835477562869480795 // 1/sqrt(pi)
	bigX      = 20.0                        // exp(-x) is treated as 0 below -bigX
)

func exponent(x float64) float64 {
	if x < -bigX {
		return 0.0
	}
	return math.Exp(x)
}

// Probability returns P(X > x) for X chi-squared distributed with df degrees
// of freedom. Non-positive x or df below 1 give 1.
func Probability(x float64, df int) float64 {
	if x <= 0.0 || df < 1 {
		return 1.0
	}

	a := 0.5 * x
	even := df%2 == 0

	var y float64
	if df > 1 {
		y = exponent(-a)
	}

	var s float64
	if even {
		s = y
	} else {
		s = 2.0 * NormalCDF(-math.Sqrt(x))
	}
	if df <= 2 {
		return clamp(s)
	}

	limit := 0.5 * float64(df-1)
	z := 0.5
	if even {
		z = 1.0
	}

	if a > bigX {
		// Terms are summed in log space, exp(-a) alone would underflow.
		e := logSqrtPi
		if even {
			e = 0.0
		}
		c := math.Log(a)
		for ; z <= limit; z += 1.0 {
			e += math.Log(z)
			s += exponent(float64(c*z) - a - e)
		}
		return clamp(s)
	}

	e := iSqrtPi / math.Sqrt(a)
	if even {
		e = 1.0
	}
	var c float64
	for ; z <= limit; z += 1.0 {
		e *= a / z
		c += e
	}
	return clamp(float64(c*y) + s)
}

func clamp(p float64) float64 {
	return math.Max(0.0, math.Min(1.0, p))
}
