// Package session provides durable persistence and lifecycle tracking for the
// authenticated back-office session: the bearer token plus the identity of the
// signed-in staff member.
//
// # Binary encoding
//
// Identities are persisted as a compact binary format with a leading schema
// version byte. The encoder is append-only: new versions add fields but never
// reinterpret old ones, so blobs written by older releases still decode.
//
// # Storage backends
//
// [Storage] abstracts where the token/identity pair lives: in-process memory,
// two files on disk, or Redis. All backends write and clear the pair together
// so a token is never persisted without its identity.
//
// # Architecture boundaries
//
// This package owns the [Manager] state machine and the [Identity] model. It
// does NOT talk to the remote API, evaluate permissions, or decide when a
// session is expired. Those responsibilities belong to the Client.
//
// # What this package must NOT do
//
//   - Import clubadmin or permission (no upward imports).
//   - Issue HTTP requests of any kind.
//   - Interpret or validate token contents.
package session
