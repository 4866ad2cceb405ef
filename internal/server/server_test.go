package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-wine-cellar/internal/config"
	"github.com/MKhiriev/go-wine-cellar/internal/handler"
	myGRPC "github.com/MKhiriev/go-wine-cellar/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/go-wine-cellar/internal/handler/http"
	"github.com/MKhiriev/go-wine-cellar/internal/logger"
	"github.com/MKhiriev/go-wine-cellar/internal/metrics"
	"github.com/MKhiriev/go-wine-cellar/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitReturn(t *testing.T, run func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		run()
		close(done)
	}()
	t.Cleanup(func() {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Error("server did not stop")
		}
	})
}

func TestNewServer_NoServers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, &workers.Workers{}, config.Server{}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_GRPCListenError(t *testing.T) {
	cfg := config.Server{GRPCAddress: "256.0.0.1:bad"}
	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(nil, metrics.New(), config.StructuredConfig{}, logger.Nop())}

	s, err := NewServer(handlers, nil, cfg, logger.Nop())

	assert.Nil(t, s)
	assert.Error(t, err)
}

func TestHTTPServer_RunAndShutdown(t *testing.T) {
	mux := http.NewServeMux()
	srv := newHTTPServer(mux, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	waitReturn(t, srv.RunServer)
	time.Sleep(50 * time.Millisecond)
	srv.Shutdown()
}

func TestGRPCServer_RunAndShutdown(t *testing.T) {
	h := myGRPC.NewHandler(nil, metrics.New(), config.StructuredConfig{}, logger.Nop())
	srv, err := newGRPCServer(h, config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	waitReturn(t, srv.RunServer)
	time.Sleep(50 * time.Millisecond)
	srv.Shutdown()
}

func TestNewServer_BothTransports(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}}
	handlers := &handler.Handlers{
		HTTP: myHTTP.NewHandler(nil, metrics.New(), cfg, logger.Nop()),
		GRPC: myGRPC.NewHandler(nil, metrics.New(), cfg, logger.Nop()),
	}

	s, err := NewServer(handlers, &workers.Workers{}, cfg.Server, logger.Nop())
	require.NoError(t, err)

	impl := s.(*server)
	assert.NotNil(t, impl.httpServer)
	assert.NotNil(t, impl.gRPCServer)
	impl.Shutdown()
}
