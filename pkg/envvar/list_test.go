package envvar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/envkit/pkg/envvar"
)

func TestAccessor_ListRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		sep    string
		values []string
	}{
		{name: "single", sep: ";", values: []string{"one"}},
		{name: "several", sep: ";", values: []string{"a", "b", "c"}},
		{name: "comma", sep: ",", values: []string{"1", "2", "3"}},
		{name: "multi-byte separator", sep: "::", values: []string{"x:y", "z"}},
		{name: "empty elements", sep: ";", values: []string{"", "a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			acc := newAccessor(nil)
			require.NoError(t, acc.SetListWithSeparator("LIST", tt.values, tt.sep))

			got, ok := acc.GetListWithSeparator("LIST", tt.sep)
			require.True(t, ok)
			assert.Equal(t, tt.values, got)
		})
	}
}

func TestAccessor_SetList_DefaultSeparator(t *testing.T) {
	t.Parallel()

	acc := newAccessor(nil)
	require.NoError(t, acc.SetList("LIST", []string{"a", "b"}))

	assert.True(t, acc.IsEqual("LIST", "a;b"))

	got, ok := acc.GetList("LIST")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestAccessor_SetList_CustomDefaultSeparator(t *testing.T) {
	t.Parallel()

	acc := newAccessor(nil, envvar.WithSeparator("|"))
	require.NoError(t, acc.SetList("LIST", []string{"a", "b"}))

	assert.True(t, acc.IsEqual("LIST", "a|b"))
}

func TestAccessor_ListEmptySeparator(t *testing.T) {
	t.Parallel()

	acc := newAccessor(map[string]string{"LIST": "a;b"})
	got, ok := acc.GetListWithSeparator("LIST", "")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)

	custom := newAccessor(nil, envvar.WithSeparator(","))
	require.NoError(t, custom.SetListWithSeparator("LIST", []string{"x", "y"}, ""))
	assert.True(t, custom.IsEqual("LIST", "x,y"))

	got, ok = custom.GetListWithSeparator("LIST", "")
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, got)
}

func TestAccessor_SetList_EmptyIsNoop(t *testing.T) {
	t.Parallel()

	t.Run("keeps existing binding", func(t *testing.T) {
		t.Parallel()

		acc := newAccessor(map[string]string{"LIST": "keep"})
		require.NoError(t, acc.SetList("LIST", []string{}))
		require.NoError(t, acc.SetListWithSeparator("LIST", nil, ","))

		assert.Equal(t, "keep", acc.GetOr("LIST", ""))
	})

	t.Run("does not bind unbound key", func(t *testing.T) {
		t.Parallel()

		acc := newAccessor(nil)
		require.NoError(t, acc.SetList("LIST", nil))
		assert.False(t, acc.Exists("LIST"))
	})
}

func TestAccessor_GetList(t *testing.T) {
	t.Parallel()

	acc := newAccessor(map[string]string{
		"EMPTY":    "",
		"FEATURES": "1,2,3",
		"TRAILING": "a;b;",
	})

	got, ok := acc.GetListWithSeparator("EMPTY", ",")
	require.True(t, ok)
	assert.Equal(t, []string{""}, got)

	got, ok = acc.GetListWithSeparator("FEATURES", ",")
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2", "3"}, got)

	got, ok = acc.GetList("TRAILING")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", ""}, got)

	got, ok = acc.GetList("MISSING")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestAccessor_ListEndToEnd(t *testing.T) {
	t.Parallel()

	acc := newAccessor(nil)

	require.NoError(t, acc.Set("FEATURE_X", "1,2,3"))
	got, ok := acc.GetListWithSeparator("FEATURE_X", ",")
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2", "3"}, got)

	require.NoError(t, acc.Remove("FEATURE_X"))
	got, ok = acc.GetListWithSeparator("FEATURE_X", ",")
	assert.False(t, ok)
	assert.Nil(t, got)
}
