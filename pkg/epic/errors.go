package epic

import "fmt"

// FetchError indicates the metadata endpoint could not be reached or
// returned an unusable transport-level result.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching EPIC metadata from %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError indicates the metadata response decoded but did not have
// the expected shape or fields.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing EPIC metadata: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parsing EPIC metadata: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }
