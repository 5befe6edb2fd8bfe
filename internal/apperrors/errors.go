package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidState indicates that an action was attempted against a resource
// that is not in the state the action expects.
var ErrInvalidState = errors.New("invalid state")

// ErrParse indicates that an uploaded file could not be read in its expected format.
var ErrParse = errors.New("parse error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")
