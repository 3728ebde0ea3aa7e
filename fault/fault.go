// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fault

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"syscall"
)

// A Category describes who terminated a failed transport exchange, as
// reported by function Categorize().
//
// The category determines the human-readable message carried by a
// ConnectionError, so that a client-initiated abort, a server-initiated
// abort, and any other connection failure remain distinguishable to the
// caller.
type Category int

const (
	// Other indicates a connection failure that is neither a client
	// abort nor a server abort, for example a DNS resolution failure
	// or a refused connection. The underlying cause carries the
	// detail.
	Other Category = iota
	// ClientAbort indicates the exchange was terminated locally,
	// before the server produced a terminal event.
	//
	// Function Categorize() returns ClientAbort if the error or any of
	// its wrapped causes is context.Canceled.
	ClientAbort
	// ServerAbort indicates the remote host terminated the exchange,
	// either by resetting the connection (POSIX ECONNRESET) or by
	// closing it before the response was fully written.
	ServerAbort
)

// Categorize returns the abort category of the given transport error.
// A nil error produces Other.
//
// In assessing the category, Categorize looks at wrapped cause errors
// contained within err, not just err itself, so errors wrapped by
// url.Error or pkg/errors are classified by their root cause.
func Categorize(err error) Category {
	if err == nil {
		return Other
	}

	if errors.Is(err, context.Canceled) {
		return ClientAbort
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && errno == syscall.ECONNRESET {
		return ServerAbort
	}

	if errors.Is(err, io.ErrUnexpectedEOF) {
		return ServerAbort
	}

	return Other
}

// A ValidationError reports malformed request input: a URL without a
// supported protocol, an unrecognized method, or an option whose shape
// does not match its contract. It is always raised synchronously, at
// request construction time, before any network activity.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "reqx: invalid request: " + e.Reason
}

// Validationf constructs a ValidationError from a format string.
func Validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// A ConnectionError reports a transport-level failure: the exchange
// ended with an abort or socket error instead of a response. The
// Category field tells the caller which side terminated the exchange.
type ConnectionError struct {
	Category Category
	Cause    error
}

func (e *ConnectionError) Error() string {
	switch e.Category {
	case ClientAbort:
		return "reqx: connection error: client aborted request"
	case ServerAbort:
		return "reqx: connection error: server aborted connection"
	default:
		if e.Cause == nil {
			return "reqx: connection error"
		}
		return "reqx: connection error: " + e.Cause.Error()
	}
}

// Unwrap returns the underlying transport error.
func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// Connection wraps a raw transport error into a ConnectionError,
// categorizing it via Categorize.
func Connection(err error) *ConnectionError {
	return &ConnectionError{Category: Categorize(err), Cause: err}
}

// An HTTPError reports a final (post-redirect) response whose status
// code falls in the 4xx-5xx range. It carries the full response context
// so the caller can decide whether to retry at a higher level.
type HTTPError struct {
	StatusCode int
	Header     http.Header
	// Body is the response body after decompression but before any
	// JSON decoding.
	Body []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("reqx: http error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// A ParseError reports a response body that does not match its declared
// content model: malformed JSON when JSON decoding was requested, or a
// payload that cannot be decompressed per its Content-Encoding header.
// Body carries the raw bytes that failed to decode.
type ParseError struct {
	Body  []byte
	Cause error
}

func (e *ParseError) Error() string {
	if e.Cause == nil {
		return "reqx: parse error"
	}
	return "reqx: parse error: " + e.Cause.Error()
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error {
	return e.Cause
}
