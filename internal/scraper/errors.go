package scraper

import "fmt"

// FetchError reports a failure to retrieve a source page: network failure,
// timeout, or a non-success status after the retry budget is spent. Fatal
// for the run; no output is written.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError reports that the page's top-level schedule structure was not
// recognized by any extraction strategy. Fatal for the run, in contrast to
// field-level gaps, which degrade to unresolved values.
type ParseError struct {
	URL    string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing %s: %s: %v", e.URL, e.Reason, e.Err)
	}
	return fmt.Sprintf("parsing %s: %s", e.URL, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
