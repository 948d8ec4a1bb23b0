package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingTransport serves until Stop is called.
type blockingTransport struct {
	started chan struct{}
	stopped chan struct{}
}

func newBlockingTransport() *blockingTransport {
	return &blockingTransport{
		started: make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

func (b *blockingTransport) Start() error {
	close(b.started)
	<-b.stopped
	return nil
}

func (b *blockingTransport) Stop() error {
	close(b.stopped)
	return nil
}

type failingTransport struct{ err error }

func (f failingTransport) Start() error { return f.err }

func TestServer_ServeStopsTransportOnCancel(t *testing.T) {
	tr := newBlockingTransport()
	s := &Server{listen: func(uint) transport { return tr }}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, 0) }()

	<-tr.started
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancel")
	}

	select {
	case <-tr.stopped:
	default:
		t.Fatal("transport was not stopped")
	}
}

func TestServer_ServeReturnsTransportError(t *testing.T) {
	boom := errors.New("address in use")
	s := &Server{listen: func(uint) transport { return failingTransport{err: boom} }}

	err := s.Serve(context.Background(), 0)
	assert.ErrorIs(t, err, boom)
}
