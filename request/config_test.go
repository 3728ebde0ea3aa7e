// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"io"
	"testing"

	"github.com/bellwood/reqx/fault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeValidation(t *testing.T) {
	testCases := []struct {
		name   string
		method string
		url    string
		opts   *Options
		reason string
	}{
		{
			name:   "no protocol",
			method: "GET",
			url:    "example.com/foo",
			reason: "no protocol",
		},
		{
			name:   "relative URL",
			method: "GET",
			url:    "/foo/bar",
			reason: "no protocol",
		},
		{
			name:   "unsupported protocol",
			method: "GET",
			url:    "ftp://example.com/foo",
			reason: "unsupported protocol",
		},
		{
			name:   "no host",
			method: "GET",
			url:    "http:///foo",
			reason: "no host",
		},
		{
			name:   "malformed authority",
			method: "GET",
			url:    "http://exa mple.com/",
			reason: "malformed URL",
		},
		{
			name:   "unrecognized method",
			method: "FROB",
			url:    "http://example.com/",
			reason: "unrecognized method",
		},
		{
			name:   "qs is a bare string",
			method: "GET",
			url:    "http://example.com/",
			opts:   &Options{QS: "a=b"},
			reason: "qs must be a mapping",
		},
		{
			name:   "form is a bare string",
			method: "POST",
			url:    "http://example.com/",
			opts:   &Options{Form: "a=b"},
			reason: "form must be a mapping",
		},
		{
			name:   "auth is a string",
			method: "GET",
			url:    "http://example.com/",
			opts:   &Options{Auth: "alice:sesame"},
			reason: "auth must be an object",
		},
		{
			name:   "auth missing password",
			method: "GET",
			url:    "http://example.com/",
			opts:   &Options{Auth: map[string]interface{}{"user": "alice"}},
			reason: "auth must be an object",
		},
		{
			name:   "auth with non-string fields",
			method: "GET",
			url:    "http://example.com/",
			opts:   &Options{Auth: map[string]interface{}{"user": "alice", "password": 42}},
			reason: "auth must be an object",
		},
		{
			name:   "unsupported compression",
			method: "GET",
			url:    "http://example.com/",
			opts:   &Options{Compression: []string{"gzip", "br"}},
			reason: "unsupported compression",
		},
		{
			name:   "negative maxRedirects",
			method: "GET",
			url:    "http://example.com/",
			opts:   &Options{MaxRedirects: Int(-1)},
			reason: "maxRedirects must be non-negative",
		},
		{
			name:   "headers is a bare string",
			method: "GET",
			url:    "http://example.com/",
			opts:   &Options{Headers: "X-Foo: bar"},
			reason: "headers must be a mapping",
		},
		{
			name:   "header with non-string value",
			method: "GET",
			url:    "http://example.com/",
			opts:   &Options{Headers: map[string]interface{}{"X-Foo": 1}},
			reason: "string value",
		},
		{
			name:   "invalid header name",
			method: "GET",
			url:    "http://example.com/",
			opts:   &Options{Headers: map[string]string{"X Foo": "bar"}},
			reason: "invalid header name",
		},
		{
			name:   "body of unsupported type",
			method: "POST",
			url:    "http://example.com/",
			opts:   &Options{Body: 42},
			reason: "raw body",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			cfg, err := Normalize(testCase.method, testCase.url, testCase.opts)
			assert.Nil(t, cfg)
			var validationErr *fault.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Error(), testCase.reason)
		})
	}
}

func TestNormalizeMethod(t *testing.T) {
	cfg, err := Normalize("", "http://example.com/", nil)
	require.NoError(t, err)
	assert.Equal(t, "GET", cfg.Method)

	cfg, err = Normalize("delete", "http://example.com/", nil)
	require.NoError(t, err)
	assert.Equal(t, "DELETE", cfg.Method)
}

func TestNormalizeDefaults(t *testing.T) {
	cfg, err := Normalize("GET", "http://example.com:/", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxRedirects, cfg.MaxRedirects)
	assert.False(t, cfg.JSON)
	assert.False(t, cfg.FullResponse)
	assert.False(t, cfg.Verbose)
	assert.Nil(t, cfg.Body)
	assert.Equal(t, "example.com", cfg.URL.Host, "empty port must be stripped")
}

func TestNormalizeHeaders(t *testing.T) {
	cfg, err := Normalize("POST", "http://example.com/", &Options{
		JSON:    Bool(true),
		Body:    map[string]interface{}{"ham": "eggs"},
		Headers: map[string]string{"Content-Type": "application/vnd.api+json", "X-Trace": "abc"},
	})
	require.NoError(t, err)

	// Instance-supplied headers win over computed ones.
	assert.Equal(t, "application/vnd.api+json", cfg.Header.Get("Content-Type"))
	assert.Equal(t, "abc", cfg.Header.Get("X-Trace"))
	assert.Equal(t, "application/json", cfg.Header.Get("Accept"))
}

func TestNormalizeAuth(t *testing.T) {
	testCases := []struct {
		name string
		auth interface{}
	}{
		{name: "struct", auth: Auth{User: "alice", Password: "open sesame"}},
		{name: "pointer", auth: &Auth{User: "alice", Password: "open sesame"}},
		{name: "mapping", auth: map[string]interface{}{"user": "alice", "password": "open sesame"}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			cfg, err := Normalize("GET", "http://example.com/", &Options{Auth: testCase.auth})
			require.NoError(t, err)
			assert.Equal(t, "Basic YWxpY2U6b3BlbiBzZXNhbWU=", cfg.Header.Get("Authorization"))
		})
	}
}

func TestNormalizeCompression(t *testing.T) {
	cfg, err := Normalize("GET", "http://example.com/", &Options{
		Compression: []string{"gzip", "deflate"},
	})
	require.NoError(t, err)
	assert.Equal(t, "gzip, deflate", cfg.Header.Get("Accept-Encoding"))
}

func TestToRequest(t *testing.T) {
	cfg, err := Normalize("POST", "http://example.com/upload", &Options{
		JSON: Bool(true),
		Body: map[string]interface{}{"ham": "eggs"},
	})
	require.NoError(t, err)

	r := cfg.ToRequest(context.Background())
	assert.Equal(t, "POST", r.Method)
	assert.Equal(t, "http://example.com/upload", r.URL.String())
	assert.Equal(t, int64(len(cfg.Body)), r.ContentLength)
	require.NotNil(t, r.GetBody)
	rc, err := r.GetBody()
	require.NoError(t, err)
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, `{"ham":"eggs"}`, string(b))
}

func TestConfigRedirect(t *testing.T) {
	cfg, err := Normalize("POST", "http://example.com/form", &Options{
		Form: map[string]string{"ham": "eggs"},
	})
	require.NoError(t, err)

	t.Run("method preserved", func(t *testing.T) {
		target, _ := cfg.URL.Parse("/elsewhere")
		next := cfg.Redirect(target, "POST")
		assert.Equal(t, "POST", next.Method)
		assert.Equal(t, "http://example.com/elsewhere", next.URL.String())
		assert.Equal(t, cfg.Body, next.Body)
		assert.Equal(t, "application/x-www-form-urlencoded", next.Header.Get("Content-Type"))
	})

	t.Run("get substitution drops body", func(t *testing.T) {
		target, _ := cfg.URL.Parse("http://other.example.com/view")
		next := cfg.Redirect(target, "GET")
		assert.Equal(t, "GET", next.Method)
		assert.Nil(t, next.Body)
		assert.Empty(t, next.Header.Get("Content-Type"))
		// The original hop's configuration is untouched.
		assert.NotNil(t, cfg.Body)
		assert.Equal(t, "application/x-www-form-urlencoded", cfg.Header.Get("Content-Type"))
	})
}
