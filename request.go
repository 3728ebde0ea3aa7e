// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqx

import (
	"context"

	"github.com/bellwood/reqx/request"
)

// A Request is one constructed, validated exchange, ready to run. It
// is created by New (or Client.New) and is immutable: the same Request
// may be run multiple times, each Run being an independent exchange.
type Request struct {
	client *Client
	cfg    *request.Config
}

// New constructs a Request against DefaultClient.
//
// The options are merged over the effective defaults (built-in,
// environment, and static layers, in that order of precedence) and
// validated; malformed input returns a *fault.ValidationError here,
// synchronously, before any network activity.
func New(method, url string, opts *request.Options) (*Request, error) {
	return DefaultClient.New(method, url, opts)
}

// New constructs a Request bound to this client. See the package-level
// New for the validation contract.
func (c *Client) New(method, url string, opts *request.Options) (*Request, error) {
	defaults, err := Defaults()
	if err != nil {
		return nil, err
	}
	cfg, err := request.Normalize(method, url, request.Merge(defaults, opts))
	if err != nil {
		return nil, err
	}
	return &Request{client: c, cfg: cfg}, nil
}

// Config returns the request's normalized configuration. Treat it as
// read-only.
func (r *Request) Config() *request.Config {
	return r.cfg
}

// Run executes the exchange and settles exactly once.
//
// On success the return value depends on the request's options: the
// full *Result when resolveWithFullResponse is set, the decoded body
// value under JSON mode (nil for an empty body or a HEAD response), or
// the raw body bytes otherwise. On failure the error is exactly one of
// *fault.ConnectionError, *fault.HTTPError, or *fault.ParseError.
//
// Cancelling ctx surfaces as a connection error with the client-abort
// category. Parameter ctx may be nil, in which case the background
// context is used.
func (r *Request) Run(ctx context.Context) (interface{}, error) {
	res, err := r.client.Do(ctx, r.cfg)
	if err != nil {
		return nil, err
	}
	if r.cfg.FullResponse {
		return res, nil
	}
	if r.cfg.JSON {
		return res.Body, nil
	}
	return res.Raw, nil
}
