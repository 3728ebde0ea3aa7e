// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqx

import (
	"context"
	"net/http"

	"github.com/bellwood/reqx/request"
)

// Get constructs a GET request against DefaultClient and runs it. See
// New and Request.Run for the construction and settlement contracts.
func Get(ctx context.Context, url string, opts *request.Options) (interface{}, error) {
	return run(ctx, http.MethodGet, url, opts)
}

// Head constructs a HEAD request against DefaultClient and runs it. A
// HEAD exchange never yields a decoded body.
func Head(ctx context.Context, url string, opts *request.Options) (interface{}, error) {
	return run(ctx, http.MethodHead, url, opts)
}

// Post constructs a POST request against DefaultClient and runs it.
// Supply the body through the body, json, or form options.
func Post(ctx context.Context, url string, opts *request.Options) (interface{}, error) {
	return run(ctx, http.MethodPost, url, opts)
}

// Put constructs a PUT request against DefaultClient and runs it.
func Put(ctx context.Context, url string, opts *request.Options) (interface{}, error) {
	return run(ctx, http.MethodPut, url, opts)
}

// Patch constructs a PATCH request against DefaultClient and runs it.
func Patch(ctx context.Context, url string, opts *request.Options) (interface{}, error) {
	return run(ctx, http.MethodPatch, url, opts)
}

// Delete constructs a DELETE request against DefaultClient and runs it.
func Delete(ctx context.Context, url string, opts *request.Options) (interface{}, error) {
	return run(ctx, http.MethodDelete, url, opts)
}

func run(ctx context.Context, method, url string, opts *request.Options) (interface{}, error) {
	r, err := New(method, url, opts)
	if err != nil {
		return nil, err
	}
	return r.Run(ctx)
}
