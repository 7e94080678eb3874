// Package emit renders the assembled model into the generated C header and
// source pair: one switch-based to-string function per enumeration type,
// plus a numeric #define per extension.
//
// The switch in each generated function covers exactly the declared values,
// not the backing integer's range; anything else falls through to a fatal
// unreachable default at runtime.
package emit
