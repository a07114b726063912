// Package repositories implements SQLite persistence for client-side state.
//
// The only persisted state is the session slot: a single-row table holding
// the authentication token and the serialized user record as a pair.
//
// Key Implementations:
//   - [SessionRepository] : Single-slot session persistence with atomic pair replacement
//
// The slot is always written and cleared as a whole inside a transaction so a
// token can never be observed without its user (or vice versa).
package repositories
