// Package middleware exposes HTTP middleware adapters that enforce the club
// permission model on locally served admin routes.
//
// # Guards
//
//   - [RequirePermission] — rejects requests whose role lacks a named permission.
//   - [RequireRoute] — applies the route table to the request path.
//
// Each guard resolves the acting role from a [RoleSource], evaluates it against
// a [permission.Evaluator], and injects the role into the request context.
//
// # Architecture boundaries
//
// This package translates HTTP semantics into evaluator calls. It does NOT
// implement authorization logic itself; all decisions are delegated to the
// evaluator, which fails closed.
//
// # What this package must NOT do
//
//   - Talk to the remote API.
//   - Mutate session state.
//   - Make authorization decisions beyond pass/reject from the evaluator.
package middleware
