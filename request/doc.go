// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package request models the request side of a reqx exchange.
//
// The package converts a loosely-typed external representation of the
// caller's wishes (Options, which can also be decoded from the JSON
// defaults blob in the environment) into a fully-typed, validated,
// immutable Config via the single conversion point Normalize. All
// option shape validation happens there: a malformed URL, an
// unrecognized method, a qs or form value that is not a mapping, an
// auth value without user and password fields, or an unsupported
// compression encoding each produce a *fault.ValidationError before any
// network activity takes place.
//
// A Config describes exactly one hop. The client derives the Config for
// a redirect hop from the previous one with Config.Redirect.
package request
