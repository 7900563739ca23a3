package nori

import "fmt"

// SessionInitError reports that the segmentation engine could not be opened
// for a (configuration, input) pair, e.g. a malformed user dictionary.
type SessionInitError struct {
	Err error
}

func (e *SessionInitError) Error() string {
	return fmt.Sprintf("open segmentation session: %v", e.Err)
}

func (e *SessionInitError) Unwrap() error { return e.Err }

// StreamReadError reports a failure while consuming an open token stream.
// Terms accumulated before the failure are discarded, never returned.
type StreamReadError struct {
	Err error
}

func (e *StreamReadError) Error() string {
	return fmt.Sprintf("read token stream: %v", e.Err)
}

func (e *StreamReadError) Unwrap() error { return e.Err }
