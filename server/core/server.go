package core

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"

	"github.com/automoto/doomerang-ai/shared/messages"
)

// shutdownTimeout bounds how long Serve waits for the transport to return
// after it was asked to stop.
const shutdownTimeout = 2 * time.Second

// transport is the listening side of the connection. Stop, when the
// implementation has one, must make Start return.
type transport interface {
	Start() error
}

func newWsTransport(port uint) transport {
	return transports.NewWsServerTransport(port, "", nil)
}

// Server connects websocket clients to an arena. Each joined client drives
// one avatar.
type Server struct {
	arena     *Arena
	version   string
	listen    func(port uint) transport
	transport transport

	// Track which network client has joined
	clients map[*router.NetworkClient]string
	mu      sync.RWMutex
}

// NewServer registers the router callbacks for arena. version, when not
// empty, must match the version a client joins with.
func NewServer(arena *Arena, version string) *Server {
	s := &Server{
		arena:   arena,
		version: version,
		listen:  newWsTransport,
		clients: make(map[*router.NetworkClient]string),
	}

	// Register router callbacks
	s.setupRouterCallbacks()

	return s
}

// Serve listens on port until ctx is cancelled or the transport fails. On
// cancellation the transport is stopped before Serve returns.
func (s *Server) Serve(ctx context.Context, port uint) error {
	s.transport = s.listen(port)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.transport.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	if err := stopTransport(s.transport); err != nil {
		slog.Warn("stopping transport", "err", err)
	}
	select {
	case <-errCh:
	case <-time.After(shutdownTimeout):
		slog.Warn("transport did not stop in time", "timeout", shutdownTimeout)
	}
	return nil
}

func stopTransport(t transport) error {
	switch c := t.(type) {
	case interface{ Stop() error }:
		return c.Stop()
	case interface{ Stop() }:
		c.Stop()
	case interface{ Close() error }:
		return c.Close()
	}
	return nil
}

func (s *Server) setupRouterCallbacks() {
	// Handle new connections
	router.OnConnect(func(client *router.NetworkClient) {
		slog.Info("client connected", "client", client.Id())
	})

	// Handle disconnections
	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.onJoin(client, req)
	})

	// Handle player input messages
	router.On(func(client *router.NetworkClient, input messages.PlayerInput) {
		s.onPlayerInput(client, input)
	})

	// Handle errors
	router.OnError(func(client *router.NetworkClient, err error) {
		slog.Warn("client error", "err", err)
	})
}

func (s *Server) onJoin(client *router.NetworkClient, req messages.JoinRequest) {
	if s.version != "" && req.Version != s.version {
		slog.Warn("join rejected: version mismatch", "client", client.Id(), "version", req.Version, "want", s.version)
		return
	}

	s.mu.Lock()
	_, joined := s.clients[client]
	if !joined {
		s.clients[client] = client.Id()
	}
	s.mu.Unlock()

	if !joined {
		s.arena.Join(client.Id(), req.PlayerName)
	}
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		slog.Info("client disconnected", "client", client.Id(), "err", err)
	} else {
		slog.Info("client disconnected", "client", client.Id())
	}

	s.mu.Lock()
	id, exists := s.clients[client]
	if exists {
		delete(s.clients, client)
	}
	s.mu.Unlock()

	if exists {
		s.arena.Leave(id)
	}
}

func (s *Server) onPlayerInput(client *router.NetworkClient, input messages.PlayerInput) {
	s.mu.RLock()
	id, exists := s.clients[client]
	s.mu.RUnlock()

	if !exists {
		return
	}
	s.arena.SetInput(id, input.Sequence, input.Actions)
}

// PlayerCount returns the number of joined clients
func (s *Server) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}
