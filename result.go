// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

var (
	errMaxRedirects = errors.New("maximum redirects exceeded")
	errNoLocation   = errors.New("redirect response has no Location header")
)

// A Result is the normalized outcome of one successful exchange, after
// any redirects have been followed.
type Result struct {
	// StatusCode is the status code of the final response.
	StatusCode int

	// Header contains the final response's header fields.
	Header http.Header

	// Body is the decoded response value under JSON mode, or nil for
	// an empty body, a HEAD response, or a non-JSON request.
	Body interface{}

	// Raw is the response body after decompression but before JSON
	// decoding.
	Raw []byte
}

// decodeContent applies the decompression named by the response's
// Content-Encoding header. Unknown encodings, and an empty body, pass
// through untouched.
func decodeContent(encoding string, body []byte) ([]byte, error) {
	if len(body) == 0 {
		return body, nil
	}

	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "identity":
		return body, nil
	case "gzip":
		zr, err := gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return nil, errors.Wrap(err, "opening gzip stream")
		}
		defer func() {
			_ = zr.Close()
		}()
		b, err := io.ReadAll(zr)
		if err != nil {
			return nil, errors.Wrap(err, "decompressing gzip body")
		}
		return b, nil
	case "deflate":
		// HTTP deflate is the zlib format, but some servers send raw
		// flate streams; accept both.
		zr, err := zlib.NewReader(bytes.NewReader(body))
		if err != nil {
			fr := flate.NewReader(bytes.NewReader(body))
			defer func() {
				_ = fr.Close()
			}()
			b, ferr := io.ReadAll(fr)
			if ferr != nil {
				return nil, errors.Wrap(err, "decompressing deflate body")
			}
			return b, nil
		}
		defer func() {
			_ = zr.Close()
		}()
		b, err := io.ReadAll(zr)
		if err != nil {
			return nil, errors.Wrap(err, "decompressing deflate body")
		}
		return b, nil
	default:
		return body, nil
	}
}

func decodeJSON(raw []byte, v *interface{}) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.Wrap(err, "decoding JSON response")
	}
	return nil
}
