// Package widget provides the reusable input components pages are built
// from: text inputs, single- and multi-select lists, checkboxes, button rows,
// modal overlays and render-only info boxes.
//
// Every widget implements the same small contract: View renders within the
// width the page assigns, HandleKey returns an Outcome telling the page
// whether the event was consumed, ignored, or committed a value. Widgets
// hold only transient UI state (cursor position, scroll offset, selection
// index) - the page copies confirmed values into the selection state.
package widget
