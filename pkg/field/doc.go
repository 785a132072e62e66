// Package field sequences a fieldtype.Type through keystrokes and focus
// changes. A Field owns the mutable text, template, state and finalized flag
// of one input; the pure helpers (ComputeState, ProcessFocusLoss,
// ApplyDynamicTemplate, DisplayText) expose each step on its own.
//
// Validity is pushed to an optional Aggregator keyed by group and field id
// after every recomputation, and removed again on Close.
package field
