// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package verbose provides the diagnostic sink invoked at defined
// checkpoints during request execution.
//
// When the verbose option is set on a request, the client calls
// Logger.Debug with the outgoing method and URL, the request headers
// and body, and the response status, headers, and size. Inject a custom
// Logger via the logger option to capture these checkpoints; absent an
// injected logger, output goes to Default, which writes to standard
// error.
package verbose

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
)

// A Logger receives diagnostic checkpoints during request execution.
//
// Implementations of Logger must be safe for concurrent use by multiple
// goroutines, since concurrent exchanges may share one sink.
type Logger interface {
	// Debug records one diagnostic checkpoint as a key/value pair.
	Debug(key string, value interface{})
}

// The LoggerFunc type is an adapter to allow the use of ordinary
// functions as diagnostic sinks. If f is a function with the
// appropriate signature, LoggerFunc(f) is a Logger that calls f.
type LoggerFunc func(key string, value interface{})

// Debug calls f(key, value).
func (f LoggerFunc) Debug(key string, value interface{}) {
	f(key, value)
}

// Default is the fallback diagnostic sink used when the verbose option
// is set but no logger was injected. It writes one "key: value" line
// per checkpoint to standard error, colorized when standard error is a
// terminal.
var Default Logger = NewWriterLogger(os.Stderr)

// NewWriterLogger returns a Logger that writes one "key: value" line
// per checkpoint to w. If w is a terminal, the key is colorized.
func NewWriterLogger(w io.Writer) Logger {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd())
	}
	return &writerLogger{w: w, color: color}
}

type writerLogger struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
}

func (l *writerLogger) Debug(key string, value interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.color {
		_, _ = fmt.Fprintf(l.w, "%s %v\n", aurora.Cyan(key+":"), value)
	} else {
		_, _ = fmt.Fprintf(l.w, "%s: %v\n", key, value)
	}
}
