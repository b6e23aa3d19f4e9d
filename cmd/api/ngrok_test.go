package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectNgrokURL(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tunnels", r.URL.Path)
		if calls.Add(1) == 1 {
			_, _ = w.Write([]byte(`{"tunnels":[]}`))
			return
		}
		_, _ = w.Write([]byte(`{"tunnels":[
			{"public_url":"http://abc.ngrok.io","proto":"http"},
			{"public_url":"https://abc.ngrok.io","proto":"https"}]}`))
	}))
	defer srv.Close()

	got, err := detectNgrokURL(context.Background(), srv.URL, 3, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, "https://abc.ngrok.io", got)
	assert.Equal(t, int32(2), calls.Load())
}

func TestDetectNgrokURL_NoTunnel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tunnels":[]}`))
	}))
	defer srv.Close()

	_, err := detectNgrokURL(context.Background(), srv.URL, 2, time.Millisecond)
	assert.ErrorContains(t, err, "no tunnel after 2 attempts")
}

func TestDetectNgrokURL_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := detectNgrokURL(ctx, "http://127.0.0.1:1", 3, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
}
