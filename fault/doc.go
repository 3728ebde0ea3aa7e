// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package fault defines the error taxonomy of the reqx client.
//
// Every failed request settles with exactly one of four error kinds:
// ValidationError (malformed input, raised synchronously at construction
// time), ConnectionError (transport-level failure), HTTPError (a final
// response status in the 4xx-5xx range), or ParseError (a response body
// that does not match its declared content model). Callers branch on the
// kind with errors.As:
//
//	_, err := reqx.Get(ctx, "https://example.com", opts)
//	var httpErr *fault.HTTPError
//	if errors.As(err, &httpErr) {
//		log.Printf("remote failure: %d", httpErr.StatusCode)
//	}
//
// Package fault also categorizes raw transport errors (function Categorize)
// so that client-initiated aborts, server-initiated aborts, and other
// connection failures remain textually distinguishable.
package fault
