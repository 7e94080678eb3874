// Package model holds the resolved, format-agnostic representation of the
// registry: enumeration types with their value tables, and the extensions
// that contribute offset-based enumerators to them.
//
// The model is built incrementally by the assembler and is mutable until
// assembly completes; after that the emitter reads it as-is. Two policies
// make resolution deterministic for a fixed input order: the name-to-value
// table is last-writer-wins per name, and the value-to-name table keeps the
// shortest name seen for each integer (first seen wins on equal length).
package model
