package main

import (
	"net"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_ReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	srv := &http.Server{Addr: busy.Addr().String(), Handler: http.NotFoundHandler()}

	done := make(chan error, 1)
	go func() { done <- serve(srv, make(chan os.Signal), time.Second) }()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return on a listen failure")
	}
}

func TestServe_StopsOnSignal(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	stop := make(chan os.Signal, 1)

	done := make(chan error, 1)
	go func() { done <- serve(srv, stop, time.Second) }()
	stop <- syscall.SIGTERM

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}
