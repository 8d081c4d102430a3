package textutil

import (
	"strings"

	"golang.org/x/text/cases"
)

var fold = cases.Fold()

// titleArticles are stripped from the front of a normalized title, in order.
var titleArticles = []string{"the ", "a ", "an "}

// NormalizeTitle lowercases a title and strips leading English articles so
// that "The Maltese Falcon" and "Maltese Falcon" compare as equal.
func NormalizeTitle(title string) string {
	normalized := strings.TrimSpace(fold.String(title))
	for _, article := range titleArticles {
		normalized = strings.TrimPrefix(normalized, article)
	}
	return normalized
}

// TitleSimilarity normalizes both titles and returns their similarity ratio.
func TitleSimilarity(a, b string) float64 {
	return Ratio(NormalizeTitle(a), NormalizeTitle(b))
}

// Ratio computes a normalized edit similarity between two strings:
// 2*M / (len(a)+len(b)), where M is the total length of the matching blocks
// found by recursively locating the leftmost longest common substring.
// It is symmetric, ranges over [0,1], and returns 1.0 for identical inputs
// (including two empty strings).
func Ratio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	matched := matchingLength(ra, rb)
	return 2.0 * float64(matched) / float64(total)
}

func matchingLength(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}
	matched := size
	matched += matchingLength(a[:ai], b[:bi])
	matched += matchingLength(a[ai+size:], b[bi+size:])
	return matched
}

// longestCommonBlock returns the start offsets and length of the leftmost
// longest common substring of a and b.
func longestCommonBlock(a, b []rune) (int, int, int) {
	bestA, bestB, bestSize := 0, 0, 0
	// lengths[j] holds the running match length ending at a[i], b[j-1].
	lengths := make([]int, len(b)+1)
	for i := range a {
		prev := 0
		for j := 1; j <= len(b); j++ {
			cur := lengths[j]
			if a[i] == b[j-1] {
				lengths[j] = prev + 1
				if lengths[j] > bestSize {
					bestSize = lengths[j]
					bestA = i - bestSize + 1
					bestB = j - bestSize
				}
			} else {
				lengths[j] = 0
			}
			prev = cur
		}
	}
	return bestA, bestB, bestSize
}
