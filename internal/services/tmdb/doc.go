// Package tmdb provides a minimal TMDB v3 API client covering movie search
// and detail lookups used by the cross-reference verifier.
package tmdb
