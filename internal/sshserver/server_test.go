// SPDX-License-Identifier: MPL-2.0

package sshserver

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"radix-cli/internal/convert"
)

func newTestLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := New(Config{}, convert.BigEngine{}, newTestLogger())
	if !errors.Is(err, ErrInvalidServerConfig) {
		t.Fatalf("New() with empty config error = %v, want ErrInvalidServerConfig", err)
	}
}

func TestNew_InitialState(t *testing.T) {
	t.Parallel()

	srv, err := New(validConfig(t), convert.BigEngine{}, newTestLogger())
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if got := srv.State(); got != StateCreated {
		t.Errorf("State() = %v, want created", got)
	}
	if srv.Addr() != "" {
		t.Errorf("Addr() before Start = %q, want empty", srv.Addr())
	}
}

func TestServer_StartStop(t *testing.T) {
	t.Parallel()

	srv, err := New(validConfig(t), convert.BigEngine{}, newTestLogger())
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Start(ctx); err != nil {
		t.Fatalf("Start() returned error: %v", err)
	}
	t.Cleanup(func() { _ = srv.Stop() })

	if got := srv.State(); got != StateRunning {
		t.Errorf("State() after Start = %v, want running", got)
	}
	if !strings.Contains(srv.Addr(), ":") {
		t.Errorf("Addr() = %q, want host:port", srv.Addr())
	}

	if err := srv.Stop(); err != nil {
		t.Errorf("Stop() returned error: %v", err)
	}
	if got := srv.State(); got != StateStopped {
		t.Errorf("State() after Stop = %v, want stopped", got)
	}

	// Stop on a stopped server is a no-op.
	if err := srv.Stop(); err != nil {
		t.Errorf("second Stop() returned error: %v", err)
	}
}

func TestServer_StartIsSingleUse(t *testing.T) {
	t.Parallel()

	srv, err := New(validConfig(t), convert.BigEngine{}, newTestLogger())
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Start(ctx); err != nil {
		t.Fatalf("Start() returned error: %v", err)
	}
	t.Cleanup(func() { _ = srv.Stop() })

	if err := srv.Start(ctx); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Start() error = %v, want ErrAlreadyStarted", err)
	}
}

func TestServer_StartFailsOnBusyPort(t *testing.T) {
	t.Parallel()

	first, err := New(validConfig(t), convert.BigEngine{}, newTestLogger())
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := first.Start(ctx); err != nil {
		t.Fatalf("Start() returned error: %v", err)
	}
	t.Cleanup(func() { _ = first.Stop() })

	// Bind a second server to the exact port the first one took.
	addr := first.Addr()
	port := addr[strings.LastIndex(addr, ":")+1:]

	cfg := validConfig(t)
	var parsed int
	for _, r := range port {
		parsed = parsed*10 + int(r-'0')
	}
	cfg.Port = ListenPort(parsed)

	second, err := New(cfg, convert.BigEngine{}, newTestLogger())
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if err := second.Start(ctx); err == nil {
		t.Cleanup(func() { _ = second.Stop() })
		t.Fatal("Start() on busy port succeeded, want error")
	}
	if got := second.State(); got != StateFailed {
		t.Errorf("State() after failed Start = %v, want failed", got)
	}
	if second.Err() == nil {
		t.Error("Err() after failed Start = nil, want the failure")
	}
}
