// Package tui implements the full-screen terminal wizard.
//
// The package is built on Bubble Tea but layers a page stack on top of the
// Elm loop: Engine is the single tea.Model, and it owns a stack of Page
// values plus the one shared selection.State. Every key event goes to the
// top page, which answers with a Signal:
//
//   - Continue:  stay on this page
//   - Push:      open a sub-page (the page constructs it in place)
//   - Pop:       return to the page underneath; popping the root exits
//   - PopToRoot: collapse the stack back to the main menu
//   - Quit:      abort without writing anything
//   - Finish:    complete the wizard and hand off to synthesis
//
// Pages never talk to each other and never see the stack. All durable
// choices live in selection.State; pages keep only widget state (cursor
// positions, partially typed text).
//
// # Screen Flow
//
// The root page is a section menu; every section can be visited in any
// order and revisited to change an answer:
//
//  1. Hostname, locale & keyboard, timezone
//  2. Drives: pick detected block devices, lay out partitions per drive
//  3. Users: root password, regular users with hashed passwords
//  4. Desktop, system settings, extra packages, optional flake
//  5. Review: requirements checklist, a read-only preview of the generated
//     files, and the install confirmation
//
// Finishing returns control to the caller, which runs the synthesis engine
// exactly once over the final state.
//
// All screens render inside RenderApplicationContainer for a consistent
// bordered layout with a header and a context-sensitive footer.
package tui
