// Package usstates holds the US state and territory reference tables used by
// the state field types, lookup and search helpers over them, and a small
// net/http handler that returns JSON options for state pickers.
//
// The tables are immutable package-level values: 56 postal codes (50 states,
// DC and five territories), uppercase full names with common aliases, legacy
// abbreviations keyed without periods, directional spellings mapped to their
// full names, and dotted legacy codes.
//
// Search and Handler accept any spelling Resolve understands, so a picker
// queried with "Calif." or "N.C." lands on the right state first.
package usstates
