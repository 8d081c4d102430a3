// Package export serializes the final ranked list to a flat CSV table and a
// lossless JSON document.
package export
