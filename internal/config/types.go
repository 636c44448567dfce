// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// EngineChoiceAuto lets the conversion layer pick its default engine.
	EngineChoiceAuto EngineChoice = "auto"
	// EngineChoiceBig selects the math/big backed engine.
	EngineChoiceBig EngineChoice = "big"
	// EngineChoiceManual selects the digit-by-digit engine.
	EngineChoiceManual EngineChoice = "manual"
)

var (
	// ErrInvalidColorScheme is the sentinel error wrapped by InvalidColorSchemeError.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidEngineChoice is the sentinel error wrapped by InvalidEngineChoiceError.
	ErrInvalidEngineChoice = errors.New("invalid engine choice")
	// ErrInvalidWordBits is the sentinel error wrapped by InvalidWordBitsError.
	ErrInvalidWordBits = errors.New("invalid native word bits")
	// ErrInvalidListenPort is the sentinel error wrapped by InvalidListenPortError.
	ErrInvalidListenPort = errors.New("invalid listen port")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not
	// recognized. It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// EngineChoice names a conversion engine. Defined locally to avoid
	// coupling config to internal/convert; the CLI layer casts at the
	// boundary.
	EngineChoice string

	// InvalidEngineChoiceError is returned when an EngineChoice value is not
	// recognized. It wraps ErrInvalidEngineChoice for errors.Is() compatibility.
	InvalidEngineChoiceError struct {
		Value EngineChoice
	}

	// WordBits is the native integer width used by the overflow advisory.
	// Zero means "use the host's actual width"; non-zero values must be
	// 32 or 64.
	WordBits int

	// InvalidWordBitsError is returned when a WordBits value is not 0, 32,
	// or 64. It wraps ErrInvalidWordBits for errors.Is() compatibility.
	InvalidWordBitsError struct {
		Value WordBits
	}

	// ListenPort is a TCP port for the SSH service. Zero asks the kernel
	// for an ephemeral port.
	ListenPort int

	// InvalidListenPortError is returned when a ListenPort value is outside
	// [0, 65535]. It wraps ErrInvalidListenPort for errors.Is() compatibility.
	InvalidListenPortError struct {
		Value ListenPort
	}

	// InvalidConfigError collects field-level validation errors.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// UIConfig groups presentation settings.
	UIConfig struct {
		// ColorScheme selects auto, dark, or light rendering.
		ColorScheme ColorScheme `mapstructure:"color_scheme" toml:"color_scheme"`
		// Accessible disables animated prompts for screen readers.
		Accessible bool `mapstructure:"accessible" toml:"accessible"`
		// Verbose enables verbose diagnostic output.
		Verbose bool `mapstructure:"verbose" toml:"verbose"`
	}

	// ConvertConfig groups conversion settings.
	ConvertConfig struct {
		// Engine selects the conversion engine (auto, big, manual).
		Engine EngineChoice `mapstructure:"engine" toml:"engine"`
		// NativeWordBits overrides the host word width seen by the
		// overflow advisory (0 = host width).
		NativeWordBits WordBits `mapstructure:"native_word_bits" toml:"native_word_bits"`
	}

	// ServeConfig groups SSH service settings.
	ServeConfig struct {
		// Host is the address the SSH server binds to.
		Host string `mapstructure:"host" toml:"host"`
		// Port is the TCP port the SSH server listens on.
		Port ListenPort `mapstructure:"port" toml:"port"`
		// HostKeyPath is the SSH host key location. Empty generates a
		// key under the config directory on first start.
		HostKeyPath string `mapstructure:"host_key_path" toml:"host_key_path"`
	}

	// Config is the root configuration.
	Config struct {
		UI      UIConfig      `mapstructure:"ui" toml:"ui"`
		Convert ConvertConfig `mapstructure:"convert" toml:"convert"`
		Serve   ServeConfig   `mapstructure:"serve" toml:"serve"`
	}
)

// Validate returns nil if the ColorScheme is one of the known values.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: c}
	}
}

// Validate returns nil if the EngineChoice is one of the known values.
func (e EngineChoice) Validate() error {
	switch e {
	case EngineChoiceAuto, EngineChoiceBig, EngineChoiceManual:
		return nil
	default:
		return &InvalidEngineChoiceError{Value: e}
	}
}

// Validate returns nil if the WordBits value is 0, 32, or 64.
func (w WordBits) Validate() error {
	switch w {
	case 0, 32, 64:
		return nil
	default:
		return &InvalidWordBitsError{Value: w}
	}
}

// Validate returns nil if the ListenPort is within [0, 65535].
func (p ListenPort) Validate() error {
	if p < 0 || p > 65535 {
		return &InvalidListenPortError{Value: p}
	}
	return nil
}

// Validate checks every field and collects all failures into a single
// InvalidConfigError so the user sees everything wrong at once.
func (c *Config) Validate() error {
	var fieldErrs []error
	if err := c.UI.ColorScheme.Validate(); err != nil {
		fieldErrs = append(fieldErrs, err)
	}
	if err := c.Convert.Engine.Validate(); err != nil {
		fieldErrs = append(fieldErrs, err)
	}
	if err := c.Convert.NativeWordBits.Validate(); err != nil {
		fieldErrs = append(fieldErrs, err)
	}
	if err := c.Serve.Port.Validate(); err != nil {
		fieldErrs = append(fieldErrs, err)
	}
	if strings.TrimSpace(c.Serve.Host) == "" {
		fieldErrs = append(fieldErrs, fmt.Errorf("%w: serve.host must be non-empty", ErrInvalidConfig))
	}
	if len(fieldErrs) > 0 {
		return &InvalidConfigError{FieldErrors: fieldErrs}
	}
	return nil
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q: want auto, dark, or light", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Error implements the error interface for InvalidEngineChoiceError.
func (e *InvalidEngineChoiceError) Error() string {
	return fmt.Sprintf("invalid engine choice %q: want auto, big, or manual", e.Value)
}

// Unwrap returns ErrInvalidEngineChoice for errors.Is() compatibility.
func (e *InvalidEngineChoiceError) Unwrap() error { return ErrInvalidEngineChoice }

// Error implements the error interface for InvalidWordBitsError.
func (e *InvalidWordBitsError) Error() string {
	return fmt.Sprintf("invalid native word bits %d: want 0, 32, or 64", int(e.Value))
}

// Unwrap returns ErrInvalidWordBits for errors.Is() compatibility.
func (e *InvalidWordBitsError) Unwrap() error { return ErrInvalidWordBits }

// Error implements the error interface for InvalidListenPortError.
func (e *InvalidListenPortError) Error() string {
	return fmt.Sprintf("invalid listen port %d: want 0-65535", int(e.Value))
}

// Unwrap returns ErrInvalidListenPort for errors.Is() compatibility.
func (e *InvalidListenPortError) Unwrap() error { return ErrInvalidListenPort }

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
