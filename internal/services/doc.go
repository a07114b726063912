// Package services defines the [Gateway] interface over the election backend and implements it with [ElectionService].
//
// # Gateway Interface
//
// The client never talks HTTP directly; every remote operation (auth,
// candidate/campaign/program collections, AI generation, dashboard stats)
// goes through Gateway, so the CLI, the TUI, and tests share one abstraction.
//
// # Election Implementation
//
// [ElectionService] speaks JSON over HTTP to the FastAPI backend. Every
// response uses the envelope {"success": bool, ...}; the payload field varies
// per endpoint. Generation calls are throttled with a [rate.Limiter] since the
// backend fans out to a paid LLM.
//
// # Error Handling
//
// Remote failures map onto two sentinel errors from the shared package:
//   - [shared.ErrConnection] : no response was received (transport failure)
//   - [shared.ErrRemoteRejected] : the server answered with success=false or a non-2xx status
//
// Callers distinguish the two with errors.Is and never retry automatically;
// every failure leaves client state untouched.
package services
