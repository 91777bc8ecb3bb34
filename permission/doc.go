// Package permission declares the back-office capability table and answers
// authorization queries against it.
//
// # Model
//
// Every capability (e.g. "payments.create") is registered once and assigned a
// stable bit position in a 64-bit mask. Each role is granted a mask composed
// from the capability bits it may exercise. Both structures are frozen after
// construction; queries afterwards are pure, lock-free reads.
//
// # Fail-closed contract
//
// Lookups never error and never panic. An unknown permission name, an
// unknown role name, or an empty role all evaluate to "not allowed". Routes
// are the one open-by-default surface: a path with no registered binding is
// accessible to anyone (see [RouteTable]).
//
// # What this package must NOT do
//
//   - Perform I/O or touch the session.
//   - Import the clubadmin root package (the root imports this one).
//   - Accept new registrations after Freeze.
package permission
