/*
Copyright © 2020 Dell Inc. or its subsidiaries. All Rights Reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

   http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package capacity contains the representation of human readable LVM sizes such as 500M or 1.5G
package capacity

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Unit is a single letter LVM size suffix
type Unit string

const (
	// KILO represents kilobytes, the base unit
	KILO Unit = "K"
	// MEGA represents megabytes
	MEGA Unit = "M"
	// GIGA represents gigabytes
	GIGA Unit = "G"
	// TERA represents terabytes
	TERA Unit = "T"
	// PETA represents petabytes
	PETA Unit = "P"
	// EXA represents exabytes
	EXA Unit = "E"
)

// unitScale holds amount of kilobytes in one unit, binary scaled
var unitScale = map[Unit]float64{
	KILO: 1,
	MEGA: 1 << 10,
	GIGA: 1 << 20,
	TERA: 1 << 30,
	PETA: 1 << 40,
	EXA:  1 << 50,
}

// sizeFmt is a full match of <number><unit letter>, e.g. 500M, 1.5g, 10.00G
var sizeFmt = regexp.MustCompile(`^(\d+(?:\.\d+)?)([KkMmGgTtPpEe])$`)

// sizeToken is sizeFmt without anchors, it is searched inside lvs columns such as "<9.77g"
var sizeToken = regexp.MustCompile(`\d+(?:\.\d+)?[KkMmGgTtPpEe]`)

// Value is an immutable storage quantity. Zero Value is not a valid size, use Parse to get one
type Value struct {
	raw       string
	magnitude float64
	unit      Unit
}

// Parse parses size definition like "500M" or "2g"
// Receives text which is a number followed by one of K, M, G, T, P, E (case insensitive)
// Returns Value and true or empty Value and false if text doesn't describe a size
func Parse(text string) (Value, bool) {
	matches := sizeFmt.FindStringSubmatch(strings.TrimSpace(text))
	if matches == nil {
		return Value{}, false
	}
	magnitude, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return Value{}, false
	}
	return Value{
		raw:       text,
		magnitude: magnitude,
		unit:      Unit(strings.ToUpper(matches[2])),
	}, true
}

// FindToken searches the first size token inside a single column of tool output.
// lvs marks rounded sizes with "<", so "<9.77g" yields 9.77g. Callers pick the column,
// names like "1g" are sizes by this pattern too.
func FindToken(field string) (Value, bool) {
	token := sizeToken.FindString(field)
	if token == "" {
		return Value{}, false
	}
	return Parse(token)
}

// Magnitude returns numeric part of the size in its own unit
func (v Value) Magnitude() float64 {
	return v.magnitude
}

// Unit returns uppercased unit letter
func (v Value) Unit() Unit {
	return v.unit
}

// Kilobytes returns size normalized to kilobytes
func (v Value) Kilobytes() float64 {
	return v.magnitude * unitScale[v.unit]
}

// Compare returns -1 if v is less than other, 0 if they are equal and 1 if v is greater than other.
// Only normalized kilobytes are compared, so 1G and 1024M are equal.
func (v Value) Compare(other Value) int {
	a, b := v.Kilobytes(), other.Kilobytes()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports whether v is smaller than other
func (v Value) Less(other Value) bool {
	return v.Compare(other) < 0
}

// Equal reports whether v and other describe the same amount of kilobytes
func (v Value) Equal(other Value) bool {
	return v.Compare(other) == 0
}

// Fits checks whether magnitude is a multiple of extentKB.
// NOTE: magnitude is taken in its own unit and is not normalized to kilobytes, so "20G" with
// 4096 KB extent does not fit. Keep it that way until the resize policy is revisited.
func (v Value) Fits(extentKB int64) bool {
	return math.Mod(v.magnitude, float64(extentKB)) == 0
}

// String returns size text exactly as it was parsed
func (v Value) String() string {
	return v.raw
}
