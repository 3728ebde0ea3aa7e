// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"github.com/bellwood/reqx/verbose"
)

// Options is the loosely-typed external representation of request
// options. It is the shape callers pass to reqx.New, the shape of the
// static defaults layer, and the shape decoded from the JSON defaults
// blob carried by the environment.
//
// Fields with dynamic contracts (QS, Form, Headers, Auth, Body) are
// deliberately interface-typed: their shape is checked exactly once, in
// Normalize, which converts the whole Options value into a fully-typed
// Config or fails with a *fault.ValidationError.
//
// Boolean and integer fields are pointers so that defaults layering can
// distinguish "unset" from an explicit zero value.
type Options struct {
	// JSON selects JSON handling: a non-nil, non-string Body is
	// serialized as JSON, and the response body is decoded as JSON.
	JSON *bool `json:"json,omitempty"`
	// Form, when present, must be a mapping. It is serialized as a
	// percent-encoded form body and takes precedence over Body.
	Form interface{} `json:"form,omitempty"`
	// Body is the outgoing body: a string, []byte, io.Reader or
	// io.ReadCloser in raw mode, or any JSON-encodable value when JSON
	// is set.
	Body interface{} `json:"body,omitempty"`
	// QS, when present, must be a mapping of query parameters to merge
	// into the URL's query string.
	QS interface{} `json:"qs,omitempty"`
	// Headers, when present, must be a mapping of header names to
	// string values.
	Headers interface{} `json:"headers,omitempty"`
	// Auth, when present, must carry user and password fields, either
	// as an Auth value or as a mapping with "user" and "password"
	// string keys.
	Auth interface{} `json:"auth,omitempty"`
	// Compression lists the content encodings to request from the
	// server, drawn from "gzip" and "deflate".
	Compression []string `json:"compression,omitempty"`
	// MaxRedirects bounds the number of redirect hops followed within
	// one exchange. It must be non-negative. Unset means
	// DefaultMaxRedirects.
	MaxRedirects *int `json:"maxRedirects,omitempty"`
	// ResolveWithFullResponse makes Run return the full Result (status
	// code, headers, body) instead of the body alone.
	ResolveWithFullResponse *bool `json:"resolveWithFullResponse,omitempty"`
	// Verbose enables diagnostic checkpoints through Logger.
	Verbose *bool `json:"verbose,omitempty"`
	// Logger is the diagnostic sink used when Verbose is set. Nil
	// means the default sink.
	Logger verbose.Logger `json:"-"`
}

// Auth carries credentials for HTTP basic authentication.
type Auth struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// Bool returns a pointer to b, for use in Options literals.
func Bool(b bool) *bool {
	return &b
}

// Int returns a pointer to i, for use in Options literals.
func Int(i int) *int {
	return &i
}

// Merge overlays the given option layers field by field, later layers
// taking precedence, and returns the merged result. A field overrides
// the layers beneath it only when it is set (non-nil); nil layers are
// skipped. The inputs are not modified.
func Merge(layers ...*Options) *Options {
	merged := &Options{}
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		if layer.JSON != nil {
			merged.JSON = layer.JSON
		}
		if layer.Form != nil {
			merged.Form = layer.Form
		}
		if layer.Body != nil {
			merged.Body = layer.Body
		}
		if layer.QS != nil {
			merged.QS = layer.QS
		}
		if layer.Headers != nil {
			merged.Headers = layer.Headers
		}
		if layer.Auth != nil {
			merged.Auth = layer.Auth
		}
		if layer.Compression != nil {
			merged.Compression = layer.Compression
		}
		if layer.MaxRedirects != nil {
			merged.MaxRedirects = layer.MaxRedirects
		}
		if layer.ResolveWithFullResponse != nil {
			merged.ResolveWithFullResponse = layer.ResolveWithFullResponse
		}
		if layer.Verbose != nil {
			merged.Verbose = layer.Verbose
		}
		if layer.Logger != nil {
			merged.Logger = layer.Logger
		}
	}
	return merged
}
