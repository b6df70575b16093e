package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/handler"
	httphandler "github.com/MKhiriev/go-travel-journal/internal/handler/http"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoHTTPHandler)

	_, err = NewServer(nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoHTTPHandler)
}

func TestNewServer_NoAddress(t *testing.T) {
	handlers := &handler.Handlers{HTTP: &httphandler.Handler{}}

	_, err := NewServer(handlers, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoHTTPAddress)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	addr := freeAddress(t)
	s := &server{
		httpServer: newHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}), config.Server{HTTPAddress: addr}, logger.Nop()),
		logger: logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusTeapot
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunReportsListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: l.Addr().String()}, logger.Nop()),
		logger:     logger.Nop(),
	}

	err = s.Run(context.Background())
	assert.ErrorIs(t, err, errListen)
	assert.Contains(t, err.Error(), l.Addr().String())
}
