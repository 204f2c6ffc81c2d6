package jdk

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for resolution failures. Test with errors.Is.
var (
	// ErrHintResolution marks an explicit hint whose path does not exist or
	// cannot be canonicalized. It aborts the whole resolution.
	ErrHintResolution = errors.New("explicit JDK hint could not be resolved")

	// ErrMandatoryMissing marks a resolution that lacks a mandatory bucket.
	ErrMandatoryMissing = errors.New("mandatory JDK missing")
)

// MissingError lists the mandatory buckets a resolution did not fill.
type MissingError struct {
	Buckets []Bucket
}

func (e *MissingError) Error() string {
	names := make([]string, len(e.Buckets))
	for i, b := range e.Buckets {
		names[i] = b.String()
	}
	return "mandatory JDKs not found: " + strings.Join(names, ", ")
}

func hintResolutionError(cause error, name, path string) error {
	err := errors.Wrapf(cause, "resolving %s=%s", name, path)
	err = errors.Mark(err, ErrHintResolution)
	return errors.WithHintf(err, "point %s at an existing JDK home directory or remove it", name)
}

func missingError(missing []Bucket) error {
	err := errors.Mark(&MissingError{Buckets: missing}, ErrMandatoryMissing)
	return errors.WithHintf(err, "install the JDK or set %s=<path> (flag, environment, or gradle.properties)", missing[0].HintNames()[0])
}
