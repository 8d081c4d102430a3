// Package llm provides an OpenRouter-compatible chat client used by the
// staged classifier.
//
// The client sends system/user prompts with a JSON-only response format and
// returns the raw JSON payload. DecodeJSON tolerates the usual model
// formatting quirks (code fences, surrounding prose) before giving up.
//
// # Retry behaviour
//
// Requests retry on HTTP 408/429/5xx and network timeouts with exponential
// backoff (base 1s, max 10s, up to 5 attempts by default), honouring
// Retry-After when present. Context cancellation aborts retries immediately.
// Array-shaped batch semantics (one verdict per input, in order) are the
// classifier's responsibility, not this package's.
package llm
