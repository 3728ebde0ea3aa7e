// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package verbose

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf)

	l.Debug("request", "GET http://example.com/")
	l.Debug("response.status", 200)

	assert.Equal(t, "request: GET http://example.com/\nresponse.status: 200\n", buf.String())
}

func TestWriterLoggerConcurrent(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Debug("k", "v")
		}()
	}
	wg.Wait()

	assert.Equal(t, bytes.Repeat([]byte("k: v\n"), 16), buf.Bytes())
}

func TestLoggerFunc(t *testing.T) {
	var gotKey string
	var gotValue interface{}
	l := LoggerFunc(func(key string, value interface{}) {
		gotKey, gotValue = key, value
	})

	l.Debug("request.body", []byte("ham=eggs"))

	assert.Equal(t, "request.body", gotKey)
	assert.Equal(t, []byte("ham=eggs"), gotValue)
}

func TestDefault(t *testing.T) {
	assert.NotNil(t, Default)
}
