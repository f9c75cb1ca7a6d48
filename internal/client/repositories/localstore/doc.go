// Package localstore implements the client-side persistent key-value store.
//
// The browser front end this client replaces kept its token and avatar
// overrides in localStorage; here the same slots live in a small SQLite
// database next to the binary. The schema is managed by embedded goose
// migrations applied on Open.
package localstore
