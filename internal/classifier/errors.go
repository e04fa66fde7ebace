package classifier

import (
	"errors"
	"fmt"
)

// tooBusyError signals queue timeout/overflow for 429 mapping.
type tooBusyError struct{}

func (tooBusyError) Error() string { return "too busy: inference queue full" }

// IsTooBusy reports whether err indicates backpressure (return 429).
func IsTooBusy(err error) bool {
	var e tooBusyError
	return errors.As(err, &e)
}

// modelUnavailableError is returned by Predict when the model failed to load.
type modelUnavailableError struct{ cause string }

func (e modelUnavailableError) Error() string {
	if e.cause == "" {
		return "model unavailable"
	}
	return "model unavailable: " + e.cause
}

// ErrModelUnavailable constructs a modelUnavailableError.
func ErrModelUnavailable(cause string) error { return modelUnavailableError{cause: cause} }

// IsModelUnavailable reports whether err indicates that no usable model is loaded.
func IsModelUnavailable(err error) bool {
	var e modelUnavailableError
	return errors.As(err, &e)
}

// dependencyUnavailableError signals a missing runtime (e.g. onnxruntime not
// built in) so the HTTP layer can return 503 instead of 500.
type dependencyUnavailableError struct{ msg string }

func (e dependencyUnavailableError) Error() string { return e.msg }

// ErrDependencyUnavailable constructs a dependencyUnavailableError.
func ErrDependencyUnavailable(msg string) error { return dependencyUnavailableError{msg: msg} }

// IsDependencyUnavailable reports whether err indicates a missing/failed runtime dependency.
func IsDependencyUnavailable(err error) bool {
	var e dependencyUnavailableError
	return errors.As(err, &e)
}

// shapeMismatchError means the model output length differs from the label count.
type shapeMismatchError struct{ labels, outputs int }

func (e shapeMismatchError) Error() string {
	return fmt.Sprintf("model produced %d scores for %d labels", e.outputs, e.labels)
}

// IsShapeMismatch reports whether err is a label/output length mismatch.
func IsShapeMismatch(err error) bool {
	var e shapeMismatchError
	return errors.As(err, &e)
}
