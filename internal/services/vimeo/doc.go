// Package vimeo provides video search against the Vimeo API, with a
// page-scraping fallback for tokenless runs. Both searchers implement the
// same Searcher interface consumed by the collector.
package vimeo
