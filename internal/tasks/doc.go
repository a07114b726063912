// Package tasks orchestrates the client-side workflows of the election dashboard.
//
// # Program Generation Wizard
//
// The [Wizard] drives the multi-step AI program flow as a closed state
// machine over [Step]:
//
//  1. [StepBasics] : Candidate name and class year
//     - Advancing requires a non-empty class year
//
//  2. [StepPreferences] : Structured preferences
//     - Main issues and personal values are toggled from fixed catalogs
//     - Generation requires at least three of each, checked before any
//       network call
//
//  3. [StepResult] : The generated program text
//     - Restart returns to the first step and discards the result
//
// Every transition is an explicit method that validates its guard before
// moving; there is no way to skip a step or land in an unnamed state. A
// failed generation keeps the wizard on the preferences step so the inputs
// can be corrected and resubmitted.
//
// # Acting Candidate
//
// [ResolveActingCandidate] maps the signed-in user to the candidate whose
// campaigns and programs the dashboard operates on. Candidates act for
// themselves; admins act for the first registered candidate.
package tasks
