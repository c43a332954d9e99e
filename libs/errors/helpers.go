package errors

import "errors"

// IsErrNotFound is a helper method for determining if an error indicates a missing resource
func IsErrNotFound(err error) bool {
	type notFound interface {
		NotFoundError() bool
	}
	var te notFound
	return errors.As(err, &te) && te.NotFoundError()
}

// IsErrConflict is a helper method for determining if an error indicates a request racing
// or replaying one that already happened
func IsErrConflict(err error) bool {
	type conflict interface {
		ConflictError() bool
	}
	var te conflict
	return errors.As(err, &te) && te.ConflictError()
}

// IsErrUpstream is a helper method for determining if an error was caused by a third party
func IsErrUpstream(err error) bool {
	type upstream interface {
		UpstreamError() bool
	}
	var te upstream
	return errors.As(err, &te) && te.UpstreamError()
}
