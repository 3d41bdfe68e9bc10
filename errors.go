package ristorante

import "errors"

var (
	// ErrDocumentNotFound means an index references a document id the store
	// does not hold; the snapshot is out of sync with its corpus.
	ErrDocumentNotFound = errors.New("document not found")
	ErrIndexCorrupted   = errors.New("index corrupted")
	ErrInvalidLimit     = errors.New("invalid result limit")
	// ErrTermNotFound is returned by explicit term lookups. Searches skip
	// unknown terms instead.
	ErrTermNotFound = errors.New("term not found")
)
