// Command reelfinder searches Vimeo for candidate videos and curates a
// ranked list of genuine pre-1965 feature films through staged language
// model classification and TMDB cross-reference verification.
package main
