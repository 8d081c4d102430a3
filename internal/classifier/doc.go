// Package classifier narrows the candidate set through three dependent
// language-model passes: content type, narrative-feature verification, and
// era/studio verification.
package classifier
