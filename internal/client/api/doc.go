// Package api contains the client-side building blocks for talking to the
// Wiki Web backend.
//
// # Overview
//
// The package provides:
//  1. A thin JSON-over-HTTP wrapper (see Client) that attaches the standard
//     headers, injects the bearer credential when one is stored, and
//     normalizes non-2xx responses into *RequestError values.
//  2. Endpoint facades grouped the way the backend groups its routes:
//     AuthAPI (register/login/me), DocumentsAPI (CRUD plus revision
//     restore), and UsersAPI (roster listing and search).
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable when the backend cannot be reached, and
// ErrUnauthorized when it rejects the credential. Application-level
// rejections keep the backend-supplied message so forms can surface it
// verbatim.
//
// The wrapper never retries, caches, or times out on its own; callers own
// those policies.
package api
