// Package widgets holds stateless render primitives: panels, stat cards
// and the overlay compositor used for modals and chart tooltips.
//
// Nothing here handles keys or owns application state.
package widgets
