// Package symbol provides the named get-or-create caches that guarantee at
// most one model object per distinct enum-type name and per distinct
// extension name across all loaded registry documents.
//
// The caches are plain maps with no intrinsic order; emission order comes
// from the explicit Sorted accessors.
package symbol
