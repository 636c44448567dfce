// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// This package defines error types that include remediation steps and
// Markdown-formatted advisories, improving the user experience when
// validation fails or a conversion deserves a caveat.
package issue
