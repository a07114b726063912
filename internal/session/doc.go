// Package session owns the client's authenticated identity.
//
// Key Implementations:
//   - [Store] : Concurrency-safe holder of the current session, backed by a [Repository]
//   - [Repository] : Persistence contract for the single session slot
//
// The store is the only writer of the current session. Login and Register
// install a (token, user) pair atomically; Logout clears both; a failed
// attempt leaves the previous session untouched. Restore never fails the
// caller: any persistence problem degrades to the anonymous session.
package session
