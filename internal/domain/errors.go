package domain

import "github.com/m-mizutani/goerr/v2"

// Error kinds surfaced by the pipeline. Match them with errors.Is.
var (
	// ErrMissingInput is raised by the host before the pipeline starts.
	ErrMissingInput = goerr.New("missing input")
	// ErrInvalidRepositoryFormat is raised when a repository string is not "owner/name".
	ErrInvalidRepositoryFormat = goerr.New("invalid repository format")
	// ErrTransport wraps any failure reported by the issue tracker.
	ErrTransport = goerr.New("transport failure")
)
