// Package textutil provides title normalization and similarity scoring for
// matching video titles against authoritative movie records.
//
// Titles are case-folded and stripped of leading English articles before
// comparison. Similarity uses a matching-blocks ratio: symmetric, in [0,1],
// and exactly 1.0 for identical strings, so fixed acceptance thresholds keep
// a stable meaning across inputs of different lengths.
package textutil
