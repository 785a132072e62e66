// Package tui collects form values from a terminal. Every answer is driven
// through a masked field so the user sees the same formatting and messages a
// graphical input would produce; invalid answers are re-prompted.
package tui
