package integrationtests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/enumgen/internal/testutil"
)

const baseRegistry = `<?xml version="1.0" encoding="UTF-8"?>
<registry>
    <enums name="VkResult" type="enum">
        <enum value="0" name="VK_SUCCESS"/>
        <enum value="1" name="VK_NOT_READY"/>
    </enums>
    <extensions>
        <extension name="VK_KHR_example" number="3" supported="vulkan">
            <require>
                <enum extends="VkResult" offset="0" dir="-" name="VK_ERROR_EXAMPLE_KHR"/>
            </require>
        </extension>
    </extensions>
</registry>
`

func TestGenerateExtensionErrorValue(t *testing.T) {
	t.Parallel()

	result := testutil.Generate(t, testutil.Input{
		Files:   map[string]string{"vk.xml": baseRegistry},
		XMLArgs: []string{"vk.xml"},
	})
	require.NoError(t, result.Err)

	source := result.Source(t)
	assert.Contains(t, source, "const char *\nvk_Result_to_str(VkResult input)")
	assert.Contains(t, source, "    case -1000002000:\n        return \"VK_ERROR_EXAMPLE_KHR\";")
	assert.Contains(t, source, "    case 0:\n        return \"VK_SUCCESS\";")
	assert.Contains(t, source, "unreachable(\"Undefined enum value.\");")

	header := result.Header(t)
	assert.Contains(t, header, "#define _VK_KHR_example_number (3)")
	assert.Contains(t, header, "const char * vk_Result_to_str(VkResult input);")
}

func TestGenerateIgnoresUnsupportedExtension(t *testing.T) {
	t.Parallel()

	const registry = `<registry>
        <enums name="VkResult" type="enum">
            <enum value="0" name="VK_SUCCESS"/>
        </enums>
        <extensions>
            <extension name="VK_OTHER_platform" number="5" supported="otherapi">
                <require>
                    <enum extends="VkResult" offset="0" name="VK_UNSUPPORTED_VALUE"/>
                </require>
            </extension>
        </extensions>
    </registry>`

	result := testutil.Generate(t, testutil.Input{
		Files:   map[string]string{"vk.xml": registry},
		XMLArgs: []string{"vk.xml"},
	})
	require.NoError(t, result.Err)

	source := result.Source(t)
	assert.NotContains(t, source, "VK_UNSUPPORTED_VALUE")
	header := result.Header(t)
	assert.NotContains(t, header, "VK_OTHER_platform")
}

func TestGenerateShortestNameWins(t *testing.T) {
	t.Parallel()

	const declaredShortFirst = `<registry>
        <enums name="VkFoo" type="enum">
            <enum value="7" name="VK_FOO"/>
            <enum value="7" name="VK_FOO_EXT"/>
        </enums>
    </registry>`
	const declaredShortLast = `<registry>
        <enums name="VkFoo" type="enum">
            <enum value="7" name="VK_FOO_EXT"/>
            <enum value="7" name="VK_FOO"/>
        </enums>
    </registry>`

	for name, registry := range map[string]string{
		"short first": declaredShortFirst,
		"short last":  declaredShortLast,
	} {
		t.Run(name, func(t *testing.T) {
			result := testutil.Generate(t, testutil.Input{
				Files:   map[string]string{"vk.xml": registry},
				XMLArgs: []string{"vk.xml"},
			})
			require.NoError(t, result.Err)

			source := result.Source(t)
			assert.Contains(t, source, "    case 7:\n        return \"VK_FOO\";")
			assert.NotContains(t, source, "VK_FOO_EXT")
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	files := map[string]string{"vk.xml": baseRegistry}
	first := testutil.Generate(t, testutil.Input{Files: files, XMLArgs: []string{"vk.xml"}})
	require.NoError(t, first.Err)
	second := testutil.Generate(t, testutil.Input{Files: files, XMLArgs: []string{"vk.xml"}})
	require.NoError(t, second.Err)

	assert.Equal(t, first.Header(t), second.Header(t))
	assert.Equal(t, first.Source(t), second.Source(t))
}

func TestGenerateMultipleDocuments(t *testing.T) {
	t.Parallel()

	const extraRegistry = `<registry>
        <extensions>
            <extension name="VK_EXT_extra" number="12" supported="vulkan">
                <require>
                    <enum extends="VkResult" offset="1" name="VK_EXTRA_EXT"/>
                </require>
            </extension>
        </extensions>
    </registry>`

	result := testutil.Generate(t, testutil.Input{
		Files: map[string]string{
			"vk.xml":    baseRegistry,
			"extra.xml": extraRegistry,
		},
		XMLArgs: []string{"vk.xml", "extra.xml"},
	})
	require.NoError(t, result.Err)

	// The second document's extension lands on the type declared in the
	// first: 1000000000 + 11*1000 + 1.
	source := result.Source(t)
	assert.Contains(t, source, "    case 1000011001:\n        return \"VK_EXTRA_EXT\";")

	header := result.Header(t)
	assert.Contains(t, header, "#define _VK_EXT_extra_number (12)")
	assert.Contains(t, header, "#define _VK_KHR_example_number (3)")
}

func TestGenerateDirectoryInput(t *testing.T) {
	t.Parallel()

	result := testutil.Generate(t, testutil.Input{
		Files:   map[string]string{"registry/vk.xml": baseRegistry},
		XMLArgs: []string{"registry"},
	})
	require.NoError(t, result.Err)
	assert.Contains(t, result.Source(t), "VK_ERROR_EXAMPLE_KHR")
}

func TestGenerateWithConfigFile(t *testing.T) {
	t.Parallel()

	const configFile = `
header_file    = "api_strings.h"
source_file    = "api_strings.c"
copyright      = "Test copyright"
foreign_values = ["VK_NOT_READY"]
`

	result := testutil.Generate(t, testutil.Input{
		Files: map[string]string{
			"vk.xml":      baseRegistry,
			"enumgen.hcl": configFile,
		},
		XMLArgs:   []string{"vk.xml"},
		ConfigArg: "enumgen.hcl",
	})
	require.NoError(t, result.Err)

	header := result.Artifact(t, "api_strings.h")
	assert.Contains(t, header, "#ifndef API_STRINGS_H")
	assert.Contains(t, header, " * Test copyright")

	source := result.Artifact(t, "api_strings.c")
	assert.Contains(t, source, `#include "api_strings.h"`)
	assert.Contains(t, source,
		"#pragma GCC diagnostic ignored \"-Wswitch\"\n    case 1:\n        return \"VK_NOT_READY\";")
}

func TestGenerateMalformedDeclarationFailsRun(t *testing.T) {
	t.Parallel()

	const registry = `<registry>
        <enums name="VkResult" type="enum">
            <enum name="VK_NOTHING_DECLARED"/>
        </enums>
    </registry>`

	result := testutil.Generate(t, testutil.Input{
		Files:   map[string]string{"vk.xml": registry},
		XMLArgs: []string{"vk.xml"},
	})
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "none of value, alias, or offset")
}

func TestGenerateBadConfigPanicsAtStartup(t *testing.T) {
	t.Parallel()

	result := testutil.Generate(t, testutil.Input{
		Files: map[string]string{
			"vk.xml":      baseRegistry,
			"enumgen.hcl": `nonsense_attribute = 1`,
		},
		XMLArgs:   []string{"vk.xml"},
		ConfigArg: "enumgen.hcl",
	})
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "startup panicked")
}
