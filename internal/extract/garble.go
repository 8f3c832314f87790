// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"unicode/utf8"
)

// Thresholds match the artifacts some PDF encoders leak into exported text:
// raw object references ("/F1", "/i255") and image placeholders.
const (
	garbleMinLength   = 50
	garbleSlashRatio  = 0.05
	garbleI255Limit   = 3
	garbleImageMarker = "image -->"
	pageSlashRatio    = 0.10
)

// Garbled reports whether text looks like leaked low-level markup rather
// than readable content.
func Garbled(text string) bool {
	n := utf8.RuneCountInString(text)
	if n <= garbleMinLength {
		return false
	}
	return slashHeavy(text, n, garbleSlashRatio) ||
		strings.Count(text, "i255") > garbleI255Limit ||
		strings.Contains(text, garbleImageMarker)
}

// slashHeavy reports whether more than ratio of the n characters of text are
// forward slashes.
func slashHeavy(text string, n int, ratio float64) bool {
	return float64(strings.Count(text, "/")) > float64(n)*ratio
}
