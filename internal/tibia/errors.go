package tibia

import "errors"

// The extraction error taxonomy. Every failure an extractor can produce
// wraps exactly one of these sentinels, so callers map them to a response
// status with errors.Is and nothing else.
var (
	// ErrMaintenance means the site-wide maintenance sentinel page was
	// served. Retryable; never a parsing bug.
	ErrMaintenance = errors.New("tibia.com is undergoing maintenance")

	// ErrNotFound means the page's structural shape or stated subject does
	// not match the request: the upstream site silently substitutes a
	// fallback page instead of returning a 404.
	ErrNotFound = errors.New("requested resource not found")

	// ErrUnexpectedContent means the page format has drifted from what the
	// extractor expects: an unrecognized header, a failed numeric or date
	// conversion, or enum text outside its closed vocabulary.
	ErrUnexpectedContent = errors.New("unexpected page content")
)
