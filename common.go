/*
* Byte frequency counter
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

// Counter holds the number of occurrences of every byte value.
type Counter [256]int

func CountBytes(data []byte) Counter {
	var counter Counter
	counter.Add(data)
	return counter
}

// Add counts the bytes of data on top of what the counter already holds.
func (c *Counter) Add(data []byte) {
	for _, b := range data {
		c[b]++
	}
}

func (c *Counter) Merge(other Counter) {
	for i, v := range other {
		c[i] += v
	}
}

// Total returns the number of bytes counted so far.
func (c *Counter) Total() int {
	var total int
	for _, v := range c {
		total += v
	}
	return total
}
