// Package models defines domain entities for the elx election client.
//
// The package contains two categories of types:
//
// 1. Remote records owned by the election backend:
//   - [User] : Accounts with one of four roles
//   - [Candidate] : Candidate profiles shown on the public landing page
//   - [Campaign] : Electoral campaigns with a draft/active/completed status
//   - [Program] : Electoral programs, possibly AI-generated
//   - [Stats] : Aggregate dashboard counters
//
// 2. Client-side state:
//   - [Session] : The (token, user) pair installed after login or register
//   - [ProgramRequest] : The structured preferences sent to the generator
//
// [Role] carries the capability table gating dashboard tabs and actions.
// Every gating decision in the client consults [Role.Capabilities]; no view
// compares role strings inline.
package models
