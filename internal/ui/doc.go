// Package ui contains the Bubble Tea program that renders the menu browser.
// The package is structured so the Model type focuses on message orchestration,
// while dedicated helpers own navigation, search input, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Update routes each
//     tea.Msg through a typed handler registry so key presses, resizes, and
//     catalog load results are handled by focused functions.
//   - Key handling (navigation.go) first offers the key to the search input
//     (input.go); keys the search does not consume move the cursor, change
//     pages, or toggle categories.
//
// State ownership:
//   - Browsing state lives in internal/ui/state.View. The visible page is
//     never stored; View derives it from the catalog with state.Derive each
//     time it renders or needs the visible slice.
//   - The catalog itself is held by an internal/state.CatalogStore, which the
//     dispatcher updates when a load completes.
//
// Backend interactions:
//   - A backend.Loader reads the configured catalog source once. Init waits for
//     its single event, and the handler for loadEventMsg applies it to the
//     store. A failed load leaves an empty catalog and an error on the status
//     line.
package ui
