// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"encoding/json"
	"errors"
	"io"
	urlpkg "net/url"

	"github.com/bellwood/reqx/fault"
)

const badBodyTypeMsg = "for a raw body use nil, string, []byte, " +
	"io.Reader or io.ReadCloser (or set json to encode a value)"

// encodeBody produces the outgoing byte payload and the matching
// content type. Exactly one encoding governs the body: a form mapping
// takes precedence, then JSON serialization of Body when jsonMode is
// set, then raw pass-through.
func encodeBody(body interface{}, jsonMode bool, form interface{}) ([]byte, string, error) {
	if form != nil {
		m, ok := asMapping(form)
		if !ok {
			return nil, "", fault.Validationf("form must be a mapping, got %T", form)
		}
		values := urlpkg.Values{}
		for field, value := range m {
			strs, err := queryStrings(value)
			if err != nil {
				return nil, "", fault.Validationf("form field %q: %v", field, err)
			}
			values[field] = append(values[field], strs...)
		}
		return []byte(values.Encode()), "application/x-www-form-urlencoded", nil
	}

	if jsonMode {
		if body == nil {
			return nil, "", nil
		}
		b, err := json.Marshal(body)
		if err != nil {
			return nil, "", fault.Validationf("body is not JSON-encodable: %v", err)
		}
		return b, "application/json", nil
	}

	b, err := BodyBytes(body)
	if err != nil {
		return nil, "", fault.Validationf("%v", err)
	}
	return b, "", nil
}

// BodyBytes converts a generic raw body value to a byte slice.
//
// The body parameter may be nil, or it may be a string, []byte,
// io.Reader, or io.ReadCloser. The conversion logic is:
//
// • If body is nil, a nil byte slice and no error is returned.
//
// • If body is a []byte, body itself and no error is returned.
//
// • If body is a string, the built-in conversion from string to byte
// slice, and no error, is returned.
//
// • If body is an io.Reader or io.ReadCloser, the result of reading
// the whole contents of the reader (and closing it if it implements
// Closer) is returned.
//
// • If body is any other type than those listed above, a nil byte slice
// and an error is returned.
func BodyBytes(body interface{}) ([]byte, error) {
	switch x := body.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(x), nil
	case []byte:
		return x, nil
	case io.ReadCloser:
		b, err := io.ReadAll(x)
		if err != nil {
			return nil, err
		}
		err = x.Close()
		if err != nil {
			return nil, err
		}
		return b, nil
	case io.Reader:
		return BodyBytes(io.NopCloser(x))
	default:
		return nil, errors.New(badBodyTypeMsg)
	}
}
