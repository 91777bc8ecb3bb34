// Package internal contains helper packages that are intentionally private
// to the clubadmin module.
//
// # Sub-packages
//
//   - audit — async event dispatch (Dispatcher + Sink implementations)
//   - token — local JWT claim inspection without signature verification
//
// # What this package must NOT do
//
//   - Export types that appear in the public clubadmin API.
//   - Be imported by any package outside the clubadmin module.
package internal
