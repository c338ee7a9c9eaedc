// Package cli provides the interactive CMSKeeper admin console.
//
// It wires configuration, the local profile database, the API gateway, and an
// interactive REPL with one sub-screen per managed resource. Typical flow:
// restore the persisted session, validate it lazily on first screen entry,
// and execute operator commands.
//
// Key features:
//   - Login / Logout with a token persisted across restarts
//   - Articles and pages: list, create, edit, delete
//   - Media: list, upload, delete
//   - Session-expiry handling: any 401 drops the operator back to guest state
//
// The REPL is started via App.Root(ctx), which blocks until the operator
// exits. See App, guard, and runREPL for details.
package cli
