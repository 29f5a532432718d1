package core

import "errors"

// Sentinel errors shared by the pipeline stages.
var (
	ErrEmptySource       = errors.New("source is empty")
	ErrUnsupportedSource = errors.New("unsupported source")
	ErrNoContainer       = errors.New("no post container found in HTML")
)
