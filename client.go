// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqx

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"code.cloudfoundry.org/bytefmt"

	"github.com/bellwood/reqx/fault"
	"github.com/bellwood/reqx/redirect"
	"github.com/bellwood/reqx/request"
	"github.com/bellwood/reqx/verbose"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package. It is the
// transport collaborator of the client: DNS resolution, TLS handshakes
// and socket lifecycle all live behind it.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

// defaultDoer does not follow redirects itself: redirect coordination
// belongs to Client, which must see every 3xx to apply its own policy
// and budget.
var defaultDoer = &http.Client{
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

// A Client executes one-shot HTTP exchanges: it sends the request
// described by a request.Config, follows redirects within the
// configured budget, decodes the response, and classifies every
// failure into exactly one fault kind. Its zero value is a valid
// configuration.
//
// The zero value client uses a redirect-disabled http.Client as the
// HTTPDoer and redirect.DefaultPolicy as the redirect policy, and
// collects no metrics.
//
// Client is safe for concurrent use by multiple goroutines: concurrent
// exchanges share no mutable state.
type Client struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If HTTPDoer is nil, a shared http.Client with redirect following
	// disabled is used. A custom HTTPDoer must not follow redirects
	// itself (set CheckRedirect to return http.ErrUseLastResponse on
	// an http.Client), or the redirect budget and policy configured
	// here will never be consulted.
	HTTPDoer HTTPDoer
	// RedirectPolicy decides which statuses to follow and how the
	// method carries over to the next hop.
	//
	// If RedirectPolicy is nil, redirect.DefaultPolicy is used.
	RedirectPolicy redirect.Policy
	// Metrics, when non-nil, records request counts, durations,
	// redirect hops, and error kinds.
	Metrics *MetricsCollector
}

// DefaultClient is the client used by New and the package-level verb
// helpers.
var DefaultClient = &Client{}

// Do executes one exchange described by cfg: it sends the request,
// follows redirects within cfg.MaxRedirects per the client's redirect
// policy, and settles exactly once with either a Result or one of the
// fault error kinds (never both).
//
// Cancelling ctx surfaces as a *fault.ConnectionError with the
// client-abort category. Parameter ctx may be nil, in which case the
// background context is used.
func (c *Client) Do(ctx context.Context, cfg *request.Config) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	res, err := c.exchange(ctx, cfg)
	if c.Metrics != nil {
		c.Metrics.record(cfg.Method, res, err, time.Since(start))
	}
	return res, err
}

// exchange runs the hop loop. Hop N+1 never begins before hop N's
// response is fully read.
func (c *Client) exchange(ctx context.Context, cfg *request.Config) (*Result, error) {
	policy := c.RedirectPolicy
	if policy == nil {
		policy = redirect.DefaultPolicy
	}

	hops := 0
	for {
		resp, body, err := c.sendAndReceive(ctx, cfg)
		if err != nil {
			return nil, err
		}

		if !policy.Follow(resp.StatusCode) {
			return finish(cfg, resp, body)
		}

		if hops >= cfg.MaxRedirects {
			return nil, &fault.ConnectionError{
				Category: fault.Other,
				Cause:    errMaxRedirects,
			}
		}
		hops++

		location := resp.Header.Get("Location")
		if location == "" {
			return nil, &fault.ConnectionError{
				Category: fault.Other,
				Cause:    errNoLocation,
			}
		}
		target, err := cfg.URL.Parse(location)
		if err != nil {
			return nil, fault.Connection(err)
		}

		cfg = cfg.Redirect(target, policy.Method(resp.StatusCode, cfg.Method))
		if c.Metrics != nil {
			c.Metrics.recordRedirect()
		}
		c.debug(cfg, "redirect", cfg.Method+" "+cfg.URL.String())
	}
}

// outcome is one terminal transport event: a response, or an error.
type outcome struct {
	resp *http.Response
	err  error
}

// A settler funnels the transport's terminal events into a single
// settlement point. Whichever event arrives first wins; any later
// resolve is a no-op.
type settler struct {
	once sync.Once
	ch   chan outcome
}

func newSettler() *settler {
	return &settler{ch: make(chan outcome, 1)}
}

// resolve records the terminal event if none has been recorded yet and
// reports whether this call won.
func (s *settler) resolve(o outcome) bool {
	won := false
	s.once.Do(func() {
		won = true
		s.ch <- o
	})
	return won
}

// sendAndReceive makes one hop: it writes the request, awaits exactly
// one terminal transport event, and buffers the response body to the
// end. The returned response's body is already closed.
func (c *Client) sendAndReceive(ctx context.Context, cfg *request.Config) (*http.Response, []byte, error) {
	req := cfg.ToRequest(ctx)

	c.debug(cfg, "request", cfg.Method+" "+cfg.URL.String())
	c.debug(cfg, "request.headers", cfg.Header)
	if len(cfg.Body) > 0 {
		c.debug(cfg, "request.body", string(cfg.Body))
	}

	s := newSettler()
	go func() {
		resp, err := c.doer().Do(req)
		if !s.resolve(outcome{resp: resp, err: err}) && resp != nil {
			// The exchange settled without us; nobody else will
			// release this response.
			_ = resp.Body.Close()
		}
	}()
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			s.resolve(outcome{err: ctx.Err()})
		case <-done:
		}
	}()

	o := <-s.ch
	close(done)
	if o.err != nil {
		return nil, nil, fault.Connection(o.err)
	}

	resp := o.resp
	defer func() {
		_ = resp.Body.Close()
	}()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		// The connection ended before the announced body did.
		return nil, nil, fault.Connection(err)
	}

	c.debug(cfg, "response.status", resp.StatusCode)
	c.debug(cfg, "response.headers", resp.Header)
	c.debug(cfg, "response.size", bytefmt.ByteSize(uint64(len(body))))

	return resp, body, nil
}

// finish turns the final hop's buffered response into the exchange's
// single outcome: decompress, classify 4xx-5xx statuses, then decode
// JSON when asked to.
func finish(cfg *request.Config, resp *http.Response, body []byte) (*Result, error) {
	raw, err := decodeContent(resp.Header.Get("Content-Encoding"), body)
	if err != nil {
		return nil, &fault.ParseError{Body: body, Cause: err}
	}

	if resp.StatusCode >= 400 && resp.StatusCode <= 599 {
		return nil, &fault.HTTPError{
			StatusCode: resp.StatusCode,
			Header:     resp.Header,
			Body:       raw,
		}
	}

	result := &Result{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Raw:        raw,
	}
	// A HEAD response never has a decodable body, and an empty body
	// under JSON mode decodes to nil rather than failing.
	if cfg.JSON && cfg.Method != http.MethodHead && len(raw) > 0 {
		if err := decodeJSON(raw, &result.Body); err != nil {
			return nil, &fault.ParseError{Body: raw, Cause: err}
		}
	}
	return result, nil
}

func (c *Client) doer() HTTPDoer {
	if c.HTTPDoer == nil {
		return defaultDoer
	}
	return c.HTTPDoer
}

func (c *Client) debug(cfg *request.Config, key string, value interface{}) {
	if !cfg.Verbose {
		return
	}
	logger := cfg.Logger
	if logger == nil {
		logger = verbose.Default
	}
	logger.Debug(key, value)
}
