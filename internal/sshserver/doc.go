// SPDX-License-Identifier: MPL-2.0

// Package sshserver serves the radix conversion session over SSH using
// the Wish library. Each connection gets an independent session: no state
// is shared between connections and nothing outlives one.
package sshserver
