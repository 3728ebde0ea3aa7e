// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqx

import (
	"encoding/json"
	"os"

	"github.com/bellwood/reqx/fault"
	"github.com/bellwood/reqx/request"
)

// DefaultsEnv is the environment variable carrying a JSON-encoded
// object of default option overrides, for example:
//
//	REQX_DEFAULTS='{"json":true,"maxRedirects":3}'
//
// The variable is read each time a Request is constructed.
const DefaultsEnv = "REQX_DEFAULTS"

// staticDefaults is the process-wide static defaults layer. It is not
// protected by a lock: set it before starting concurrent exchanges and
// reset it when done.
var staticDefaults *request.Options

// SetDefaults replaces the static defaults layer, the highest-
// precedence layer of the defaults chain. Passing nil (or a zero
// Options value) clears only the static layer: fields supplied by the
// environment layer beneath it remain in effect.
func SetDefaults(opts *request.Options) {
	if opts == nil {
		staticDefaults = nil
		return
	}
	cp := *opts
	staticDefaults = &cp
}

// StaticDefaults returns the current static defaults layer, or nil if
// it was never set or has been cleared.
func StaticDefaults() *request.Options {
	return staticDefaults
}

// Defaults returns the merged effective defaults: built-in defaults,
// overlaid by the environment layer (DefaultsEnv), overlaid by the
// static layer. A malformed environment blob is reported as a
// *fault.ValidationError.
func Defaults() (*request.Options, error) {
	env, err := envDefaults()
	if err != nil {
		return nil, err
	}
	return request.Merge(builtinDefaults(), env, staticDefaults), nil
}

func builtinDefaults() *request.Options {
	return &request.Options{
		MaxRedirects: request.Int(request.DefaultMaxRedirects),
	}
}

func envDefaults() (*request.Options, error) {
	blob := os.Getenv(DefaultsEnv)
	if blob == "" {
		return nil, nil
	}
	var opts request.Options
	if err := json.Unmarshal([]byte(blob), &opts); err != nil {
		return nil, fault.Validationf("malformed %s: %v", DefaultsEnv, err)
	}
	return &opts, nil
}
