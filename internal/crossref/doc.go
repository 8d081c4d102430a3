// Package crossref verifies candidates against the TMDB movie database,
// scoring title similarity, era, studio provenance, and runtime agreement
// into a structured verification record.
package crossref
