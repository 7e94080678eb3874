// Package config defines the generator's configuration: output file names,
// the emitted copyright block, the foreign-enumerator denylist, and the set
// of supported API names.
//
// Configuration defaults match the Vulkan registry; an optional HCL file can
// override any field. Attribute expressions are evaluated against the run's
// variables, so a config can reference e.g. the output directory.
package config
