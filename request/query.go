// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"encoding/json"
	"fmt"
	urlpkg "net/url"
	"reflect"
	"strconv"

	"github.com/bellwood/reqx/fault"
)

// appendQuery serializes the qs mapping and appends it to the URL's
// existing query component. The existing raw query is preserved
// verbatim, so valueless keys like "?baz" survive untouched. Added
// parameters are percent-encoded in sorted key order.
func appendQuery(u *urlpkg.URL, qs map[string]interface{}) error {
	values := urlpkg.Values{}
	for key, value := range qs {
		strs, err := queryStrings(value)
		if err != nil {
			return fault.Validationf("query parameter %q: %v", key, err)
		}
		values[key] = append(values[key], strs...)
	}

	encoded := values.Encode()
	if encoded == "" {
		return nil
	}
	if u.RawQuery != "" {
		u.RawQuery += "&" + encoded
	} else {
		u.RawQuery = encoded
	}

	if _, err := urlpkg.Parse(u.String()); err != nil {
		return fault.Validationf("query parameters produce an invalid URL: %v", err)
	}
	return nil
}

// queryStrings coerces one query parameter value to its serialized
// form(s). Booleans and numbers stringify canonically ("false", "-1").
// A nil value still yields one entry with an empty value, so the key
// stays present in the output. Slices expand positionally into one
// entry per element, in element order.
func queryStrings(v interface{}) ([]string, error) {
	switch x := v.(type) {
	case nil:
		return []string{""}, nil
	case string:
		return []string{x}, nil
	case []byte:
		return []string{string(x)}, nil
	case bool:
		return []string{strconv.FormatBool(x)}, nil
	case int:
		return []string{strconv.Itoa(x)}, nil
	case int8:
		return []string{strconv.FormatInt(int64(x), 10)}, nil
	case int16:
		return []string{strconv.FormatInt(int64(x), 10)}, nil
	case int32:
		return []string{strconv.FormatInt(int64(x), 10)}, nil
	case int64:
		return []string{strconv.FormatInt(x, 10)}, nil
	case uint:
		return []string{strconv.FormatUint(uint64(x), 10)}, nil
	case uint8:
		return []string{strconv.FormatUint(uint64(x), 10)}, nil
	case uint16:
		return []string{strconv.FormatUint(uint64(x), 10)}, nil
	case uint32:
		return []string{strconv.FormatUint(uint64(x), 10)}, nil
	case uint64:
		return []string{strconv.FormatUint(x, 10)}, nil
	case float32:
		return []string{strconv.FormatFloat(float64(x), 'g', -1, 32)}, nil
	case float64:
		return []string{strconv.FormatFloat(x, 'g', -1, 64)}, nil
	case json.Number:
		return []string{x.String()}, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			strs, err := queryStrings(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			if len(strs) != 1 {
				return nil, fmt.Errorf("nested arrays are not supported")
			}
			out = append(out, strs[0])
		}
		return out, nil
	}

	return nil, fmt.Errorf("unsupported value of type %T", v)
}
