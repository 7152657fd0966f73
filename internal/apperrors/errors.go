package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// Named batch failures. A fetch error is fatal for the whole reconstruction
// pass: it propagates to the caller, which is expected to offer a retry and
// re-invoke the pipeline. Nothing retries automatically.
var (
	ErrEntryFetch   = errors.New("failed to fetch journal entries")
	ErrLineFetch    = errors.New("failed to fetch journal entry lines")
	ErrAccountFetch = errors.New("failed to fetch accounts")
)

// IsFetchFailure reports whether err is one of the fatal snapshot-fetch
// failures, wrapped or not.
func IsFetchFailure(err error) bool {
	return errors.Is(err, ErrEntryFetch) ||
		errors.Is(err, ErrLineFetch) ||
		errors.Is(err, ErrAccountFetch)
}
