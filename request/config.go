// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"net/http"
	urlpkg "net/url"
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/bellwood/reqx/fault"
	"github.com/bellwood/reqx/verbose"
)

// DefaultMaxRedirects is the redirect budget applied when the
// maxRedirects option is unset.
const DefaultMaxRedirects = 10

var template, _ = http.NewRequest("GET", "", nil)

// verbs is the fixed set of recognized HTTP methods.
var verbs = map[string]bool{
	http.MethodGet:     true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodHead:    true,
	http.MethodOptions: true,
	http.MethodTrace:   true,
}

// A Config is a validated, fully-typed request configuration for one
// hop of an exchange. It is produced once by Normalize and is immutable
// thereafter; a redirect hop derives a fresh Config via Redirect.
type Config struct {
	// Method is the HTTP method, one of the fixed recognized set.
	Method string

	// URL is the validated target, query parameters already merged in.
	URL *urlpkg.URL

	// Header contains the outgoing header fields, including any
	// computed Content-Type, Authorization and Accept-Encoding
	// entries. Instance-supplied headers win over computed ones.
	Header http.Header

	// Body is the encoded request body, or nil for no body.
	Body []byte

	// JSON indicates the response body should be decoded as JSON.
	JSON bool

	// MaxRedirects is the remaining redirect budget for the exchange.
	MaxRedirects int

	// FullResponse indicates Run should settle with the full Result
	// rather than the body alone.
	FullResponse bool

	// Verbose enables diagnostic checkpoints.
	Verbose bool

	// Logger is the diagnostic sink, or nil for the default sink.
	Logger verbose.Logger
}

// Normalize converts a method, URL, and merged options into a Config.
// It is the single conversion point from the loosely-typed external
// representation to the typed internal one: every shape rule is checked
// here, and any violation returns a *fault.ValidationError before any
// network activity.
//
// An empty method means GET. Parameter opts may be nil.
func Normalize(method, rawurl string, opts *Options) (*Config, error) {
	if opts == nil {
		opts = &Options{}
	}

	method = strings.ToUpper(strings.TrimSpace(method))
	if method == "" {
		method = http.MethodGet
	}
	if !verbs[method] {
		return nil, fault.Validationf("unrecognized method %q", method)
	}

	u, err := urlpkg.Parse(rawurl)
	if err != nil {
		return nil, fault.Validationf("malformed URL %q: %v", rawurl, err)
	}
	if u.Scheme == "" {
		return nil, fault.Validationf("URL %q has no protocol", rawurl)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fault.Validationf("unsupported protocol %q (only http and https are supported)", u.Scheme)
	}
	if u.Host == "" {
		return nil, fault.Validationf("URL %q has no host", rawurl)
	}
	u.Host = removeEmptyPort(u.Host)

	if opts.QS != nil {
		m, ok := asMapping(opts.QS)
		if !ok {
			return nil, fault.Validationf("qs must be a mapping, got %T", opts.QS)
		}
		if err := appendQuery(u, m); err != nil {
			return nil, err
		}
	}

	header := make(http.Header)
	if opts.Headers != nil {
		m, ok := asMapping(opts.Headers)
		if !ok {
			return nil, fault.Validationf("headers must be a mapping, got %T", opts.Headers)
		}
		for name, value := range m {
			s, ok := value.(string)
			if !ok {
				return nil, fault.Validationf("header %q must have a string value, got %T", name, value)
			}
			if !httpguts.ValidHeaderFieldName(name) {
				return nil, fault.Validationf("invalid header name %q", name)
			}
			if !httpguts.ValidHeaderFieldValue(s) {
				return nil, fault.Validationf("invalid value for header %q", name)
			}
			header.Set(name, s)
		}
	}

	jsonMode := opts.JSON != nil && *opts.JSON

	body, contentType, err := encodeBody(opts.Body, jsonMode, opts.Form)
	if err != nil {
		return nil, err
	}
	if contentType != "" && header.Get("Content-Type") == "" {
		header.Set("Content-Type", contentType)
	}
	if jsonMode && header.Get("Accept") == "" {
		header.Set("Accept", "application/json")
	}

	if opts.Auth != nil {
		auth, err := asAuth(opts.Auth)
		if err != nil {
			return nil, err
		}
		if header.Get("Authorization") == "" {
			header.Set("Authorization", "Basic "+basicAuth(auth.User, auth.Password))
		}
	}

	if opts.Compression != nil {
		for _, encoding := range opts.Compression {
			if encoding != "gzip" && encoding != "deflate" {
				return nil, fault.Validationf("unsupported compression %q (supported: gzip, deflate)", encoding)
			}
		}
		if header.Get("Accept-Encoding") == "" {
			header.Set("Accept-Encoding", strings.Join(opts.Compression, ", "))
		}
	}

	maxRedirects := DefaultMaxRedirects
	if opts.MaxRedirects != nil {
		if *opts.MaxRedirects < 0 {
			return nil, fault.Validationf("maxRedirects must be non-negative, got %d", *opts.MaxRedirects)
		}
		maxRedirects = *opts.MaxRedirects
	}

	return &Config{
		Method:       method,
		URL:          u,
		Header:       header,
		Body:         body,
		JSON:         jsonMode,
		MaxRedirects: maxRedirects,
		FullResponse: opts.ResolveWithFullResponse != nil && *opts.ResolveWithFullResponse,
		Verbose:      opts.Verbose != nil && *opts.Verbose,
		Logger:       opts.Logger,
	}, nil
}

// ToRequest creates the HTTP request for one hop of the exchange. The
// context of the new request is set to ctx, which must not be nil.
func (c *Config) ToRequest(ctx context.Context) *http.Request {
	r := template.WithContext(ctx)
	r.Method = c.Method
	r.URL = c.URL
	r.Header = c.Header
	if len(c.Body) > 0 {
		r.Body = io.NopCloser(bytes.NewReader(c.Body))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(c.Body)), nil
		}
		r.ContentLength = int64(len(c.Body))
	}
	r.Host = c.URL.Host
	return r
}

// Redirect derives the Config for the next hop of the exchange: same
// options, new target and method. When the method changes to GET (303
// substitution) the body and its content headers are dropped, per
// common client convention for See Other.
func (c *Config) Redirect(target *urlpkg.URL, method string) *Config {
	c2 := new(Config)
	*c2 = *c
	c2.URL = target
	c2.Method = method
	c2.Header = c.Header.Clone()
	if method != c.Method && method == http.MethodGet {
		c2.Body = nil
		c2.Header.Del("Content-Type")
		c2.Header.Del("Content-Length")
	}
	return c2
}

// asMapping converts a dynamically-typed option value to a string-keyed
// mapping, reporting false when the value is not a mapping at all.
func asMapping(v interface{}) (map[string]interface{}, bool) {
	switch x := v.(type) {
	case map[string]interface{}:
		return x, true
	case map[string]string:
		m := make(map[string]interface{}, len(x))
		for k, s := range x {
			m[k] = s
		}
		return m, true
	default:
		return nil, false
	}
}

func asAuth(v interface{}) (*Auth, error) {
	switch x := v.(type) {
	case *Auth:
		return x, nil
	case Auth:
		return &x, nil
	default:
		m, ok := asMapping(v)
		if !ok {
			return nil, fault.Validationf("auth must be an object with user and password fields, got %T", v)
		}
		user, uok := m["user"].(string)
		password, pok := m["password"].(string)
		if !uok || !pok {
			return nil, fault.Validationf("auth must be an object with user and password string fields")
		}
		return &Auth{User: user, Password: password}, nil
	}
}

// basicAuth is lifted verbatim from net/http/client.go.
//
// See 2 (end of page 4) https://www.ietf.org/rfc/rfc2617.txt
// "To receive authorization, the client sends the userid and password,
// separated by a single colon (":") character, within a base64
// encoded string in the credentials."
// It is not meant to be urlencoded.
func basicAuth(username, password string) string {
	auth := username + ":" + password
	return base64.StdEncoding.EncodeToString([]byte(auth))
}

// hasPort is lifted verbatim from net/http/http.go
//
// Given a string of the form "host", "host:port", or "[ipv6::address]:port",
// return true if the string includes a port.
func hasPort(s string) bool { return strings.LastIndex(s, ":") > strings.LastIndex(s, "]") }

// removeEmptyPort is lifted verbatim from net/http/http.go
//
// removeEmptyPort strips the empty port in ":port" to ""
// as mandated by RFC 3986 Section 6.2.3.
func removeEmptyPort(host string) string {
	if hasPort(host) {
		return strings.TrimSuffix(host, ":")
	}
	return host
}
