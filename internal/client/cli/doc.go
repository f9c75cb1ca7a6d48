// Package cli provides the interactive wikictl command-line client.
//
// It wires configuration, the local SQLite store, the REST API services, and
// an interactive REPL. Typical flow: restore the stored session (or prompt
// for credentials), then execute user commands until exit.
//
// Key features:
//   - Register / Login / Logout against the wiki backend
//   - Browse, create, edit, delete, and restore documents
//   - Admin user directory with local avatar overrides
//   - Offline identity fallback when the server is unreachable
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
