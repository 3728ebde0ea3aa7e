// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package redirect provides policies controlling how the client follows
// redirect responses.
package redirect

import "net/http"

// A Policy controls how the client reacts to a redirect response. It
// decides which status codes request a redirect at all, and which
// method the next hop should use.
//
// The redirect budget itself (the maxRedirects option) is part of the
// request configuration, not the policy: the policy only shapes how an
// in-budget hop is made.
//
// Implementations of Policy must be safe for concurrent use by multiple
// goroutines.
type Policy interface {
	// Follow reports whether a response with the given status code
	// requests a redirect that the client should follow.
	Follow(statusCode int) bool
	// Method returns the method for the next hop, given the redirect
	// status code and the method of the current hop.
	Method(statusCode int, method string) string
}

// SubstituteGet follows 301, 302 and 303 responses, switching to GET on
// a 303 (the widely expected client behavior for See Other) and
// preserving the original method on 301 and 302. When the method
// changes to GET, the client drops the request body for the next hop.
var SubstituteGet Policy = policy{substituteGet: true}

// PreserveMethod follows 301, 302 and 303 responses, reusing the
// original method and body on every hop. Use it against servers whose
// 303 contract expects the method to be preserved.
var PreserveMethod Policy = policy{substituteGet: false}

// DefaultPolicy is the redirect policy used when none is set on the
// client.
var DefaultPolicy = SubstituteGet

// IsRedirect reports whether the status code is one the client treats
// as requesting a redirect (301, 302, or 303).
func IsRedirect(statusCode int) bool {
	switch statusCode {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther:
		return true
	default:
		return false
	}
}

type policy struct {
	substituteGet bool
}

func (p policy) Follow(statusCode int) bool {
	return IsRedirect(statusCode)
}

func (p policy) Method(statusCode int, method string) string {
	if p.substituteGet && statusCode == http.StatusSeeOther {
		return http.MethodGet
	}
	return method
}
