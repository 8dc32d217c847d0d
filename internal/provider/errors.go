package provider

import (
	"fmt"
)

// ErrKind classifies how fetching a provider payload failed.
type ErrKind string

const (
	ErrTransport ErrKind = "transport"
	ErrStatus    ErrKind = "http_status"
	ErrDecode    ErrKind = "decode"
	ErrSchema    ErrKind = "schema"
)

// FetchError is the failure surface of one adapter call. Any of the
// four kinds aborts the adapter that raised it and nothing else; the
// aggregator catches them all.
type FetchError struct {
	Kind   ErrKind
	URL    string
	Status int
	Msg    string
	Err    error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case ErrStatus:
		return fmt.Sprintf("HTTP error %d from %s", e.Status, e.URL)
	case ErrDecode:
		return fmt.Sprintf("invalid JSON payload from %s: %v", e.URL, e.Err)
	case ErrSchema:
		return e.Msg
	default:
		return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

func TransportErr(url string, err error) *FetchError {
	return &FetchError{Kind: ErrTransport, URL: url, Err: err}
}

func StatusErr(url string, status int) *FetchError {
	return &FetchError{Kind: ErrStatus, URL: url, Status: status}
}

func DecodeErr(url string, err error) *FetchError {
	return &FetchError{Kind: ErrDecode, URL: url, Err: err}
}

func SchemaErr(url, format string, args ...any) *FetchError {
	return &FetchError{Kind: ErrSchema, URL: url, Msg: fmt.Sprintf(format, args...)}
}
