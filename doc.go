// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package reqx provides a promise-like, one-shot HTTP(S) request client:
construct a request from a method, URL and high-level options, run it,
and receive exactly one settlement, either a normalized result or one
of four typed error kinds.

Construct and run a request:

	r, err := reqx.New("GET", "https://api.example.com/things", &request.Options{
		JSON: request.Bool(true),
		QS:   map[string]interface{}{"page": 2},
	})
	if err != nil {
		// *fault.ValidationError: malformed input, raised before any
		// network activity.
	}
	body, err := r.Run(ctx)

Or use a verb helper:

	body, err := reqx.Get(ctx, "https://api.example.com/things", opts)

Failures classify into the taxonomy of package fault: ValidationError
(synchronous, construction time), ConnectionError (transport failure,
with client-abort, server-abort and other categories kept textually
distinct), HTTPError (final status in 4xx-5xx, full response context
attached), and ParseError (body does not match its declared content
model). Branch with errors.As.

Options merge over a three-layer defaults chain: built-in defaults,
then a JSON blob from the REQX_DEFAULTS environment variable, then the
process-wide static layer managed by SetDefaults. Clearing the static
layer leaves the environment layer in effect.

Redirects (301, 302, 303) are followed within the maxRedirects budget;
303 substitutes GET by default. For control over redirect behavior, set
a policy from package redirect on a Client:

	client := &reqx.Client{RedirectPolicy: redirect.PreserveMethod}
	r, err := client.New("POST", url, opts)

Set the verbose option to receive diagnostic checkpoints through a
pluggable sink (package verbose), and attach a MetricsCollector to a
Client to export Prometheus metrics for the request lifecycle.
*/
package reqx
