package config

// Config holds the generator settings consumed by the emitter and the
// assembler.
type Config struct {
	// HeaderFile and SourceFile are the artifact names written to outdir.
	HeaderFile string
	SourceFile string

	// Copyright is rendered into the generated-file banner when non-empty.
	Copyright string

	// ForeignValues lists enumerators declared outside their logical enum
	// block; their switch cases are wrapped in -Wswitch pragma guards.
	ForeignValues []string

	// SupportedAPIs selects which extension blocks are processed, matched
	// against the blocks' supported attribute.
	SupportedAPIs []string
}

// Default returns the Vulkan registry defaults.
func Default() *Config {
	return &Config{
		HeaderFile:    "vk_enum_to_str.h",
		SourceFile:    "vk_enum_to_str.c",
		ForeignValues: []string{"VK_STRUCTURE_TYPE_NATIVE_BUFFER_ANDROID"},
		SupportedAPIs: []string{"vulkan"},
	}
}
