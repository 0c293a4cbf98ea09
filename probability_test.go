/*
* Chi-squared distribution tail probability tests
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
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestProbabilityDegenerate(t *testing.T) {
	assert.Equal(t, 1.0, Probability(0, DegreesOfFreedom))
	assert.Equal(t, 1.0, Probability(-1, DegreesOfFreedom))
	assert.Equal(t, 1.0, Probability(10, 0))
	assert.Equal(t, 1.0, Probability(10, -3))
}

func TestProbabilityKnownValues(t *testing.T) {
	tests := []struct {
		x    float64
		df   int
		want float64
	}{
		{1, 1, 0.31731050767247415},
		{3.84, 1, 0.050043521555678705},
		{10, 1, 0.0015654020398800927},
		{2, 2, 0.36787944117144233},
		{5.99, 2, 0.05003662708658628},
		{7.81, 3, 0.05010605678844177},
		{4, 4, 0.4060058497098381},
		{9.49, 4, 0.049953131223294894},
		{18.31, 10, 0.049954166343696704},
		{41, 10, 0.000011282919368111996},
		{50, 10, 2.665472559499604e-7},
		{67.5, 50, 0.050040650778639346},
		{100, 50, 0.00003454745702751183},
		{200, 255, 0.995425442721592},
		{240.5, 255, 0.7340120965018606},
		{254.7, 255, 0.49352165507398765},
		{255, 255, 0.48822251786398224},
		{284.34, 255, 0.09997042187592568},
		{300, 255, 0.02772751804541634},
		{310.5, 255, 0.009955938930869681},
		{250, 256, 0.5939583147082449},
		{300, 256, 0.03058993210793383},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Probability(tt.x, tt.df), 1e-12, "x=%v df=%d", tt.x, tt.df)
	}
}

func TestProbabilityFarTail(t *testing.T) {
	// exp saturates at bigX, so these are exactly zero.
	assert.Equal(t, 0.0, Probability(45, 2))
	assert.Equal(t, 0.0, Probability(60, 4))
	assert.Equal(t, 0.0, Probability(255000, DegreesOfFreedom))
}

func TestProbabilityMatchesReference(t *testing.T) {
	for _, df := range []int{1, 2, 3, 4, 7, 10, 31, 50, 254, 255, 256} {
		reference := distuv.ChiSquared{K: float64(df)}
		for x := 0.25; x < 4*float64(df)+40; x += 0.25 {
			got := Probability(x, df)
			want := reference.Survival(x)
			if math.Abs(got-want) > 2e-8 {
				t.Errorf("Probability(%v, %d) = %v, want %v", x, df, got, want)
			}
		}
	}
}

func TestProbabilityRange(t *testing.T) {
	for _, df := range []int{1, 2, 3, 10, 50, 255} {
		for x := 0.01; x < 400; x += 0.37 {
			p := Probability(x, df)
			assert.GreaterOrEqual(t, p, 0.0, "x=%v df=%d", x, df)
			assert.LessOrEqual(t, p, 1.0, "x=%v df=%d", x, df)
		}
	}
}

func BenchmarkProbability(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Probability(254.7, DegreesOfFreedom)
	}
}
