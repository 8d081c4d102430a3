// Package collector runs the configured query set against a video searcher
// and produces a deduplicated, feature-length candidate list.
package collector
