// SPDX-License-Identifier: MPL-2.0

package sshserver

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidHostAddress is the sentinel error wrapped by InvalidHostAddressError.
	ErrInvalidHostAddress = errors.New("invalid host address")
	// ErrInvalidListenPort is the sentinel error wrapped by InvalidListenPortError.
	ErrInvalidListenPort = errors.New("invalid listen port")
	// ErrInvalidServerConfig is the sentinel error wrapped by InvalidServerConfigError.
	ErrInvalidServerConfig = errors.New("invalid SSH server config")
)

type (
	// HostAddress represents a network host address (IP or hostname) for
	// server binding. A valid address must be non-empty and not
	// whitespace-only.
	HostAddress string

	// ListenPort is a TCP port. Zero asks the kernel for an ephemeral port.
	ListenPort int

	// InvalidHostAddressError is returned when a HostAddress value is
	// empty or whitespace-only.
	InvalidHostAddressError struct {
		Value HostAddress
	}

	// InvalidListenPortError is returned when a ListenPort value is
	// outside [0, 65535].
	InvalidListenPortError struct {
		Value ListenPort
	}

	// InvalidServerConfigError is returned when a Config has invalid
	// fields. It wraps ErrInvalidServerConfig for errors.Is()
	// compatibility and collects field-level validation errors.
	InvalidServerConfigError struct {
		FieldErrors []error
	}

	// Config holds the SSH server's immutable configuration.
	Config struct {
		// Host is the address to bind to.
		Host HostAddress
		// Port is the TCP port to listen on (0 for ephemeral).
		Port ListenPort
		// HostKeyPath is where the host key lives; a missing key is
		// generated there on first start.
		HostKeyPath string
		// StartupTimeout bounds how long Start() waits for the listener.
		StartupTimeout time.Duration
		// ShutdownTimeout bounds how long Stop() waits for connections
		// to drain.
		ShutdownTimeout time.Duration
		// NativeWordBits is the word width passed to the overflow
		// advisory (0 = host width).
		NativeWordBits int
	}
)

// String returns the string representation of the HostAddress.
func (h HostAddress) String() string { return string(h) }

// Validate returns nil if the HostAddress is non-empty and not
// whitespace-only.
func (h HostAddress) Validate() error {
	if strings.TrimSpace(string(h)) == "" {
		return &InvalidHostAddressError{Value: h}
	}
	return nil
}

// Validate returns nil if the ListenPort is within [0, 65535].
func (p ListenPort) Validate() error {
	if p < 0 || p > 65535 {
		return &InvalidListenPortError{Value: p}
	}
	return nil
}

// Validate checks every field and collects failures.
func (c Config) Validate() error {
	var fieldErrs []error
	if err := c.Host.Validate(); err != nil {
		fieldErrs = append(fieldErrs, err)
	}
	if err := c.Port.Validate(); err != nil {
		fieldErrs = append(fieldErrs, err)
	}
	if strings.TrimSpace(c.HostKeyPath) == "" {
		fieldErrs = append(fieldErrs, fmt.Errorf("%w: host key path must be non-empty", ErrInvalidServerConfig))
	}
	if len(fieldErrs) > 0 {
		return &InvalidServerConfigError{FieldErrors: fieldErrs}
	}
	return nil
}

// withDefaults fills in zero-valued timeouts.
func (c Config) withDefaults() Config {
	if c.StartupTimeout <= 0 {
		c.StartupTimeout = 10 * time.Second
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	return c
}

// Error implements the error interface for InvalidHostAddressError.
func (e *InvalidHostAddressError) Error() string {
	return fmt.Sprintf("invalid host address %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidHostAddress for errors.Is() compatibility.
func (e *InvalidHostAddressError) Unwrap() error { return ErrInvalidHostAddress }

// Error implements the error interface for InvalidListenPortError.
func (e *InvalidListenPortError) Error() string {
	return fmt.Sprintf("invalid listen port %d: want 0-65535", int(e.Value))
}

// Unwrap returns ErrInvalidListenPort for errors.Is() compatibility.
func (e *InvalidListenPortError) Unwrap() error { return ErrInvalidListenPort }

// Error implements the error interface for InvalidServerConfigError.
func (e *InvalidServerConfigError) Error() string {
	return fmt.Sprintf("invalid SSH server config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidServerConfig for errors.Is() compatibility.
func (e *InvalidServerConfigError) Unwrap() error { return ErrInvalidServerConfig }
