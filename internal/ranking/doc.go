// Package ranking fuses classifier, cross-reference, and engagement signals
// into a single deterministic score and orders candidates by it.
package ranking
