// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellwood/reqx/request"
)

func TestMetricsSuccess(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/hop", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/final", 302)
	})
	mux.HandleFunc("/final", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	registry := prometheus.NewRegistry()
	client := &Client{Metrics: NewMetricsCollectorWithRegistry(registry)}

	r, err := client.New("GET", server.URL+"/hop", nil)
	require.NoError(t, err)
	_, err = r.Run(context.Background())
	require.NoError(t, err)

	m := client.Metrics
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.redirectsTotal))
	assert.Equal(t, 1, testutil.CollectAndCount(m.requestDuration))
}

func TestMetricsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer server.Close()

	registry := prometheus.NewRegistry()
	client := &Client{Metrics: NewMetricsCollectorWithRegistry(registry)}

	r, err := client.New("GET", server.URL, nil)
	require.NoError(t, err)
	_, err = r.Run(context.Background())
	require.Error(t, err)

	m := client.Metrics
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "500")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errorsTotal.WithLabelValues("http")))
}

func TestMetricsConnectionError(t *testing.T) {
	registry := prometheus.NewRegistry()
	client := &Client{Metrics: NewMetricsCollectorWithRegistry(registry)}

	r, err := client.New("GET", "http://127.0.0.1:1/", &request.Options{})
	require.NoError(t, err)
	_, err = r.Run(context.Background())
	require.Error(t, err)

	m := client.Metrics
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errorsTotal.WithLabelValues("connection")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "error")))
}
