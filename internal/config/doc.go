// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates the radix configuration file.
//
// Configuration lives in a TOML file under the platform config directory
// (XDG config home on Linux, Application Support on macOS, APPDATA on
// Windows). Every setting can also be supplied through the environment
// with the RADIX_ prefix, e.g. RADIX_UI_COLOR_SCHEME=dark.
package config
