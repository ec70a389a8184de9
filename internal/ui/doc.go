// Package ui contains the Bubble Tea program that powers the recipe search
// screen. The Model type focuses on message orchestration while dedicated
// helpers own input, grid rendering, and the detail panel.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are
//     routed through a typed handler registry so each tea.Msg is handled by
//     a focused function (key presses, window resizes, search results).
//   - Committing the query prompt asks the search state for a sequenced
//     request and returns a tea.Cmd that performs the HTTP fetch off the
//     event loop. The searchResultMsg handler feeds the outcome back through
//     search.State.Resolve, which discards responses that no longer match
//     the latest commit.
//
// State ownership:
//   - Query and fetch state live in internal/search.State: draft text,
//     committed query, fetch status, results, and the selected recipe.
//   - Grid browsing state (cursor, refine filter, viewport) lives in
//     internal/ui/state.Grid; the query edit buffer is an
//     internal/ui/state.Input.
//
// The view is a pure function of those two state holders: View only reads
// them (plus viewport clamping) and renders the prompt, the card grid, the
// loading/error/empty affordances, or the detail panel.
package ui
