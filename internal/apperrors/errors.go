package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the authenticated caller is not allowed to perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrNotInitialized indicates that a read was attempted against the rate store
// before it completed its initial fetch.
var ErrNotInitialized = errors.New("rate store not initialized")

// ErrUnavailable indicates that the backing store could not be reached.
// Callers may retry; any cached state is left untouched.
var ErrUnavailable = errors.New("backend unavailable")
