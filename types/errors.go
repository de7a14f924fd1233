package types

import (
	"errors"
	"fmt"
)

// ErrNoData signals a query against an index that has never been
// populated. Distinct from an initialized index with no matches, which
// is an empty result, not an error.
var ErrNoData = errors.New("no data indexed yet")

// ValidationError marks bad caller input. Nothing has been mutated when
// it is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// LoadError means a content source was unreadable or unreachable.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string { return fmt.Sprintf("load %s: %v", e.Source, e.Err) }

func (e *LoadError) Unwrap() error { return e.Err }

// IngestError wraps a failure anywhere in the load-split-index chain.
type IngestError struct {
	Stage string
	Err   error
}

func (e *IngestError) Error() string { return fmt.Sprintf("ingest: %s: %v", e.Stage, e.Err) }

func (e *IngestError) Unwrap() error { return e.Err }

// GenerationError is a text-generation capability failure. Never
// retried.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string { return fmt.Sprintf("generate: %v", e.Err) }

func (e *GenerationError) Unwrap() error { return e.Err }
