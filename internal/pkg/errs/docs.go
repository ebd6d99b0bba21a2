// Package errs provides standardized error types for the courierhub service.
// Every error type pairs a sentinel (for errors.Is) with a struct carrying details.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails validation
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//   - ObjectNotFoundError: an aggregate cannot be found
//   - VersionIsInvalidError: an optimistic version check failed
//   - StorageError: the storage layer failed transiently; callers may retry
//
// Each error type follows the same pattern: a sentinel variable, a struct with
// the details, constructors with and without a cause, Error() and Unwrap().
package errs
