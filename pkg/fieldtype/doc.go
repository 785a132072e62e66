// Package fieldtype defines the closed set of masked field types. Each Type
// knows its display template and placeholder alphabet and supplies the
// filter, live validation, result validation, dynamic template and final
// formatting steps that the field state machine sequences.
//
// Types are immutable values and safe to share across field instances.
// Parameterized types are built with DataLength and Age; everything else is a
// package-level value such as Phone or StateCode.
package fieldtype
