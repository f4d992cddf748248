package entities

import (
	"errors"
	"fmt"
)

// Exit codes returned to calling build pipelines
const (
	ExitSuccess       = 0
	ExitValidation    = 1
	ExitConfiguration = 2
	ExitExecution     = 3
)

// ConfigurationError reports a misconfigured source, such as a directory
// path that does not exist or is not a directory
type ConfigurationError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := e.Reason
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Reason, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// NewNotADirectoryError reports a configured directory that is not a directory
func NewNotADirectoryError(path string, err error) *ConfigurationError {
	return &ConfigurationError{
		Path:   path,
		Reason: "configured directory is not a directory",
		Err:    err,
	}
}

// NoArtifactsFoundError reports that the directory sources yielded nothing
type NoArtifactsFoundError struct{}

func (e *NoArtifactsFoundError) Error() string {
	return "found 0 dependencies (from configured sources) to verify"
}

// IOError reports a distribution that could not be opened or read
type IOError struct {
	Distribution string
	Err          error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read distribution %s: %v", e.Distribution, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ValidationFailure carries every invalid identity, sorted
type ValidationFailure struct {
	Invalid []ArtifactIdentity
}

func (e *ValidationFailure) Error() string {
	return "Invalid dependencies found: \n" + SerializeIdentities(e.Invalid)
}

// ExecutionError wraps any unexpected failure during a run
type ExecutionError struct {
	Err error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("cannot verify dependencies: %v", e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// ExitCode maps an error from a verification run to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		validation *ValidationFailure
		config     *ConfigurationError
		noArtifact *NoArtifactsFoundError
	)
	switch {
	case errors.As(err, &validation):
		return ExitValidation
	case errors.As(err, &config), errors.As(err, &noArtifact):
		return ExitConfiguration
	default:
		return ExitExecution
	}
}
