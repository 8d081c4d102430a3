// Package pipeline sequences the full curation run: collect, prefilter,
// classify, cross-reference, gate, rank, export.
package pipeline
