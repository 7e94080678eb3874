package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnumType(t *testing.T) {
	e := NewEnumType("VkResult")
	require.NotNil(t, e)
	assert.Equal(t, "VkResult", e.Name)
	assert.Zero(t, e.Len())
}

func TestAddValueLiteral(t *testing.T) {
	e := NewEnumType("VkResult")

	require.NoError(t, e.AddValue("VK_SUCCESS", Literal(0)))
	require.NoError(t, e.AddValue("VK_NOT_READY", Literal(1)))

	v, ok := e.ValueOf("VK_SUCCESS")
	require.True(t, ok)
	assert.Equal(t, int64(0), v)

	name, err := e.CanonicalName(1)
	require.NoError(t, err)
	assert.Equal(t, "VK_NOT_READY", name)
}

func TestAddValueAlias(t *testing.T) {
	t.Run("resolves to the target's current value", func(t *testing.T) {
		e := NewEnumType("VkFormat")
		require.NoError(t, e.AddValue("VK_FORMAT_R8_UNORM", Literal(9)))
		require.NoError(t, e.AddValue("VK_FORMAT_R8_UNORM_ALIAS", Alias("VK_FORMAT_R8_UNORM")))

		v, ok := e.ValueOf("VK_FORMAT_R8_UNORM_ALIAS")
		require.True(t, ok)
		assert.Equal(t, int64(9), v)
	})

	t.Run("is a snapshot, not a live reference", func(t *testing.T) {
		e := NewEnumType("VkFormat")
		require.NoError(t, e.AddValue("VK_A", Literal(1)))
		require.NoError(t, e.AddValue("VK_B", Alias("VK_A")))

		// Re-declaring the target must not retroactively move the alias.
		require.NoError(t, e.AddValue("VK_A", Literal(2)))

		v, ok := e.ValueOf("VK_B")
		require.True(t, ok)
		assert.Equal(t, int64(1), v)
	})

	t.Run("unknown target fails", func(t *testing.T) {
		e := NewEnumType("VkFormat")
		err := e.AddValue("VK_B", Alias("VK_NEVER_DECLARED"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownAlias)
	})
}

func TestAddValueOffset(t *testing.T) {
	tests := []struct {
		name      string
		extNumber int64
		offset    int64
		isError   bool
		want      int64
	}{
		{name: "first extension, first slot", extNumber: 1, offset: 0, want: 1000000000},
		{name: "first extension, third slot", extNumber: 1, offset: 2, want: 1000000002},
		{name: "later extension", extNumber: 3, offset: 0, want: 1000002000},
		{name: "error direction negates", extNumber: 3, offset: 0, isError: true, want: -1000002000},
		{name: "error with offset", extNumber: 11, offset: 7, isError: true, want: -1000010007},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEnumType("VkResult")
			require.NoError(t, e.AddValue("VK_X", OffsetValue(tt.extNumber, tt.offset, tt.isError)))

			v, ok := e.ValueOf("VK_X")
			require.True(t, ok)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestAddValueContract(t *testing.T) {
	e := NewEnumType("VkResult")

	assert.Panics(t, func() {
		_ = e.AddValue("VK_NONE", ValueSpec{})
	})
	assert.Panics(t, func() {
		v := int64(1)
		target := "VK_SUCCESS"
		_ = e.AddValue("VK_BOTH", ValueSpec{Literal: &v, Alias: &target})
	})
}

func TestCanonicalNameTieBreak(t *testing.T) {
	t.Run("shorter name wins regardless of order", func(t *testing.T) {
		first := NewEnumType("VkResult")
		require.NoError(t, first.AddValue("VK_FOO_EXT", Literal(5)))
		require.NoError(t, first.AddValue("VK_FOO", Literal(5)))

		second := NewEnumType("VkResult")
		require.NoError(t, second.AddValue("VK_FOO", Literal(5)))
		require.NoError(t, second.AddValue("VK_FOO_EXT", Literal(5)))

		for _, e := range []*EnumType{first, second} {
			name, err := e.CanonicalName(5)
			require.NoError(t, err)
			assert.Equal(t, "VK_FOO", name)
		}
	})

	t.Run("equal length keeps the first seen", func(t *testing.T) {
		e := NewEnumType("VkResult")
		require.NoError(t, e.AddValue("VK_AAA", Literal(5)))
		require.NoError(t, e.AddValue("VK_BBB", Literal(5)))

		name, err := e.CanonicalName(5)
		require.NoError(t, err)
		assert.Equal(t, "VK_AAA", name)
	})

	t.Run("every declared name stays resolvable", func(t *testing.T) {
		e := NewEnumType("VkResult")
		require.NoError(t, e.AddValue("VK_FOO_EXT", Literal(5)))
		require.NoError(t, e.AddValue("VK_FOO", Literal(5)))

		v, ok := e.ValueOf("VK_FOO_EXT")
		require.True(t, ok)
		assert.Equal(t, int64(5), v)
		assert.Equal(t, 1, e.Len())
	})
}

func TestCanonicalNameUnrecognized(t *testing.T) {
	e := NewEnumType("VkResult")
	require.NoError(t, e.AddValue("VK_SUCCESS", Literal(0)))

	_, err := e.CanonicalName(42)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnrecognizedEnumerator)
}

func TestEntriesSortedAscending(t *testing.T) {
	e := NewEnumType("VkResult")
	require.NoError(t, e.AddValue("VK_ERROR_X", OffsetValue(3, 0, true)))
	require.NoError(t, e.AddValue("VK_SUCCESS", Literal(0)))
	require.NoError(t, e.AddValue("VK_NOT_READY", Literal(1)))

	entries := e.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, Entry{Value: -1000002000, Name: "VK_ERROR_X"}, entries[0])
	assert.Equal(t, Entry{Value: 0, Name: "VK_SUCCESS"}, entries[1])
	assert.Equal(t, Entry{Value: 1, Name: "VK_NOT_READY"}, entries[2])
}
