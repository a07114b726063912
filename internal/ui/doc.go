// Package ui implements the interactive election dashboard using bubbletea's Elm architecture.
//
// Navigation is tab based and role gated: the [Controller] derives the
// authorized tab set from the signed-in role and rejects any selection outside
// it, so unauthorized sections can be neither rendered nor reached.
//
//  1. [TabOverview] : Aggregate stats, loaded eagerly at startup
//  2. [TabAIProgram] : The multi-step program generation wizard
//  3. [TabCampaigns] : The acting candidate's campaigns, loaded on first entry
//  4. [TabPrograms] : The acting candidate's programs, loaded on first entry
//  5. [TabCandidates] : The public candidate directory
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving typed messages from tea.Cmd closures.
// Overview data is fetched concurrently via tea.Batch and may arrive in either order.
//
// Keyboard navigation uses vim-style bindings (j/k, tab, enter, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
