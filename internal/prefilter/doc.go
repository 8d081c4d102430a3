// Package prefilter rejects candidates whose text fields contain known
// non-feature-film markers, before any classification call is spent on them.
package prefilter
