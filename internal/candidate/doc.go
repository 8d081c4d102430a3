// Package candidate defines the record that flows through the curation
// pipeline.
//
// A Candidate starts with the metadata returned by video search and grows an
// optional block per stage: content verdict, narrative verdict, era verdict,
// cross-reference verification, and finally a fusion score. Blocks are only
// ever added, never removed, and a nil block means the producing stage has
// not run for that candidate.
package candidate
