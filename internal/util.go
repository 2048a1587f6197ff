/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
)

// ParseDateOrZero returns a parsed time or zero if input is empty or "null".
func ParseDateOrZero(s string) (time.Time, error) {
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}

// ScoreToString renders a chess score, using ½ for half points.
// e.g. 3.5 -> "3½", 0.5 -> "½", 4.0 -> "4"
func ScoreToString(score float64) string {
	whole := math.Floor(score)
	frac := score - whole
	if frac >= 0.25 && frac < 0.75 {
		if whole == 0 {
			return "½"
		}
		return strconv.Itoa(int(whole)) + "½"
	}
	return strconv.Itoa(int(math.Round(score)))
}

// NormalizeName converts a raw "FIRST [middle...] LAST" name into title
// case "First Last".
func NormalizeName(s string) string {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return ""
	}
	first := titleCase(parts[0])
	last := first
	if len(parts) > 1 {
		last = titleCase(parts[len(parts)-1])
	}
	if first == last {
		return first
	}
	return first + " " + last
}

func titleCase(s string) string {
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
