// Package mask implements the placeholder template language used by masked
// fields. A template mixes literal formatting characters with placeholder
// characters; the placeholder alphabet decides which template positions carry
// data. Reconstruct lays filtered data over a template while deferring
// trailing literals, FinalReconstruct does the same but completes trailing
// literals once the data runs out.
package mask
