// Package assemble walks parsed registry documents and feeds every
// declaration through the symbol factories and the model's value resolver.
//
// Each document is processed in three fixed passes: base enum blocks first,
// then feature-level requirements extending existing types, then supported
// extension blocks. Documents are assembled in the order given on the
// command line; together with the model's resolution policies this makes the
// whole run deterministic.
package assemble
