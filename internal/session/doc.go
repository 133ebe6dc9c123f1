// Package session runs children on pseudo-terminals and keeps them
// addressable by integer handles.
//
// A Session owns one PTY pair. Reads never block: the session keeps its own
// non-blocking duplicate of the master descriptor and drains whatever is
// buffered in a single call. Writes are all-or-error. Each session has one
// exit watcher goroutine that waits for the child and publishes its exit
// code, then its liveness, in that order.
//
// The Registry hands out handles from a monotonic counter. Removing a
// handle drops the registry's reference; the watcher keeps its own so the
// exit status is still captured when a handle is closed early.
//
// The package relies on Unix PTY semantics.
package session
